// Package api holds the wire types for the HTTP surface. They are kept
// separate from the domain models so storage tags and internal-only fields
// never leak into responses.
package api

import (
	"time"

	"github.com/clipframe/clipframe/pkg/models"
)

// NewJob is the request body for submitting a generation job.
type NewJob struct {
	AccountId string `json:"account_id"`
	SourceUrl string `json:"source_url"`
	MimeType  string `json:"mime_type"`
	StyleHint string `json:"style_hint,omitempty"`
	Cost      int64  `json:"cost,omitempty"`
	Measure   bool   `json:"measure,omitempty"`
	Verify    bool   `json:"verify,omitempty"`
}

// Job is the client-facing view of a generation job.
type Job struct {
	Id           string                   `json:"id"`
	AccountId    string                   `json:"account_id"`
	Status       string                   `json:"status"`
	Progress     int32                    `json:"progress"`
	Message      string                   `json:"message"`
	SourceUrl    string                   `json:"source_url"`
	Cost         int64                    `json:"cost"`
	Result       *models.GenerationResult `json:"result,omitempty"`
	ErrorCode    string                   `json:"error_code,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	Verification *models.Verification     `json:"verification,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
}

// NewWallet is the request body for provisioning a credit wallet.
type NewWallet struct {
	AccountId string `json:"account_id"`
	Monthly   int64  `json:"monthly,omitempty"`
	Rollover  int64  `json:"rollover,omitempty"`
	Topup     int64  `json:"topup,omitempty"`
}

// Wallet is the client-facing view of a credit wallet.
type Wallet struct {
	AccountId string     `json:"account_id"`
	Monthly   int64      `json:"monthly"`
	Rollover  int64      `json:"rollover"`
	Topup     int64      `json:"topup"`
	Balance   int64      `json:"balance"`
	ExpiresAt *time.Time `json:"rollover_expires_at,omitempty"`
	Version   int64      `json:"version"`
}

// LedgerEntry is the client-facing view of one credit audit record.
type LedgerEntry struct {
	EntryId     string    `json:"entry_id"`
	AccountId   string    `json:"account_id"`
	Amount      int64     `json:"amount"`
	Reason      string    `json:"reason"`
	ReferenceId string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Upload is the response body for a stored media artifact.
type Upload struct {
	Url string `json:"url"`
}

// ListLedgerEntriesParams holds the query parameters for the ledger history endpoint.
type ListLedgerEntriesParams struct {
	AccountId string
	Limit     *int
}
