package storage

import (
	"context"

	"github.com/clipframe/clipframe/pkg/models"
)

// WalletStore defines the interface for managing credit wallets. Spend and
// refund are the only mutation paths for bucket balances; both append exactly
// one ledger entry.
type WalletStore interface {
	// GetWallet retrieves an account's wallet by its account ID.
	GetWallet(ctx context.Context, accountID string) (*models.Wallet, error)

	// CreateWallet creates a new wallet for an account.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// DeleteWallet deletes an account's wallet.
	DeleteWallet(ctx context.Context, accountID string) error

	// ListWallets retrieves all wallets from the storage.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// SpendCredits atomically deducts cost from the wallet's buckets in
	// priority order (monthly, then rollover, then topup) and appends a ledger
	// entry of -cost. It returns ErrInsufficientFunds, with no side effect,
	// when the combined buckets cannot cover the cost.
	SpendCredits(ctx context.Context, accountID string, cost int64, reason, referenceID string) (*models.Wallet, error)

	// RefundCredits adds cost back to the monthly bucket only and appends a
	// ledger entry of +cost. Refunds never reconstruct the original bucket mix.
	RefundCredits(ctx context.Context, accountID string, cost int64, reason, referenceID string) error
}
