package storage

import (
	"context"

	"github.com/clipframe/clipframe/pkg/models"
)

// LedgerReader defines the interface for reading the credit audit trail.
// The ledger is reconciliation data only; balances live on the wallet.
type LedgerReader interface {
	// ListLedgerEntries retrieves the most recent ledger entries for an account,
	// newest first.
	ListLedgerEntries(ctx context.Context, accountID string, limit int32) ([]models.LedgerEntry, error)
}
