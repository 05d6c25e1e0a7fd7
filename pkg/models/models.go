package models

import (
	"time"
)

// JobStatus defines the possible states of a generation job.
type JobStatus string

const (
	PENDING    JobStatus = "pending"
	PROCESSING JobStatus = "processing"
	COMPLETE   JobStatus = "complete"
	FAILED     JobStatus = "failed"
)

// Terminal reports whether the status is absorbing. Terminal jobs are never
// mutated again except for attaching an advisory verification verdict.
func (s JobStatus) Terminal() bool {
	return s == COMPLETE || s == FAILED
}

// Job error codes surfaced to clients through the job's error fields.
const (
	ErrCodeInsufficientCredits = "InsufficientCredits"
	ErrCodeGenerationFailed    = "GenerationFailed"
	ErrCodeUploadFailed        = "UploadFailed"
	ErrCodeTimeout             = "Timeout"
)

// GenerationResult is the opaque success payload of a completed job.
type GenerationResult struct {
	Code      string `json:"code" dynamodbav:"code"`
	Title     string `json:"title,omitempty" dynamodbav:"title,omitempty"`
	RenderURL string `json:"render_url,omitempty" dynamodbav:"render_url,omitempty"`
}

// Job represents the internal domain model for one asynchronous generation job.
// It includes dynamodbav tags for marshalling.
type Job struct {
	Id           string            `json:"id" dynamodbav:"id"`
	AccountId    string            `json:"account_id" dynamodbav:"account_id"`
	Status       JobStatus         `json:"status" dynamodbav:"status"`
	Progress     int32             `json:"progress" dynamodbav:"progress"`
	Message      string            `json:"message" dynamodbav:"message"`
	SourceURL    string            `json:"source_url" dynamodbav:"source_url"`
	Cost         int64             `json:"cost" dynamodbav:"cost"`
	Result       *GenerationResult `json:"result,omitempty" dynamodbav:"result,omitempty"`
	ErrorCode    string            `json:"error_code,omitempty" dynamodbav:"error_code,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty" dynamodbav:"error_message,omitempty"`
	Verification *Verification     `json:"verification,omitempty" dynamodbav:"verification,omitempty"`
	CreatedAt    time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" dynamodbav:"updated_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	TTL          int64             `json:"-" dynamodbav:"ttl,omitempty"`
}

// Wallet represents the internal domain model for an account's credit wallet.
// The balance is split across three buckets which are always non-negative.
type Wallet struct {
	AccountId         string     `json:"account_id" dynamodbav:"account_id"`
	Monthly           int64      `json:"monthly" dynamodbav:"monthly"`
	Rollover          int64      `json:"rollover" dynamodbav:"rollover"`
	Topup             int64      `json:"topup" dynamodbav:"topup"`
	RolloverExpiresAt *time.Time `json:"rollover_expires_at,omitempty" dynamodbav:"rollover_expires_at,omitempty"`
	Version           int64      `json:"version" dynamodbav:"version"`
	CreatedAt         time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" dynamodbav:"updated_at"`
}

// Balance returns the total spendable credits across all three buckets.
func (w *Wallet) Balance() int64 {
	return w.Monthly + w.Rollover + w.Topup
}

// LedgerEntry represents a single immutable entry in the credit audit trail.
// Negative amounts are spends, positive amounts are grants or refunds.
type LedgerEntry struct {
	EntryID     string    `json:"entry_id" dynamodbav:"entry_id"`
	AccountID   string    `json:"account_id" dynamodbav:"account_id"`
	Amount      int64     `json:"amount" dynamodbav:"amount"`
	Reason      string    `json:"reason" dynamodbav:"reason"`
	ReferenceID string    `json:"reference_id,omitempty" dynamodbav:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}
