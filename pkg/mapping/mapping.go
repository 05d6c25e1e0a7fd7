package mapping

import (
	"github.com/clipframe/clipframe/pkg/api"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/orchestrator"
)

// ToApiJob converts a domain Job model to an API Job model.
func ToApiJob(job *models.Job) *api.Job {
	return &api.Job{
		Id:           job.Id,
		AccountId:    job.AccountId,
		Status:       string(job.Status),
		Progress:     job.Progress,
		Message:      job.Message,
		SourceUrl:    job.SourceURL,
		Cost:         job.Cost,
		Result:       job.Result,
		ErrorCode:    job.ErrorCode,
		ErrorMessage: job.ErrorMessage,
		Verification: job.Verification,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
		CompletedAt:  job.CompletedAt,
	}
}

// ToSubmitRequest converts an API NewJob model to an orchestrator submission.
func ToSubmitRequest(newJob *api.NewJob) *orchestrator.SubmitRequest {
	cost := newJob.Cost
	if cost <= 0 {
		cost = 1 // Every generation costs at least one credit.
	}
	return &orchestrator.SubmitRequest{
		AccountID: newJob.AccountId,
		SourceURL: newJob.SourceUrl,
		MimeType:  newJob.MimeType,
		StyleHint: newJob.StyleHint,
		Cost:      cost,
		Measure:   newJob.Measure,
		Verify:    newJob.Verify,
	}
}

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		AccountId: wallet.AccountId,
		Monthly:   wallet.Monthly,
		Rollover:  wallet.Rollover,
		Topup:     wallet.Topup,
		Balance:   wallet.Balance(),
		ExpiresAt: wallet.RolloverExpiresAt,
		Version:   wallet.Version,
	}
}

// ToDomainNewWallet converts an API NewWallet model to a domain Wallet model.
func ToDomainNewWallet(newWallet *api.NewWallet) *models.Wallet {
	monthly := newWallet.Monthly
	if monthly == 0 && newWallet.Rollover == 0 && newWallet.Topup == 0 {
		monthly = 100 // Seed new wallets with a monthly allowance.
	}
	return &models.Wallet{
		AccountId: newWallet.AccountId,
		Monthly:   monthly,
		Rollover:  newWallet.Rollover,
		Topup:     newWallet.Topup,
		Version:   1,
	}
}

// ToApiLedgerEntry converts a domain LedgerEntry model to an API LedgerEntry model.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	return &api.LedgerEntry{
		EntryId:     entry.EntryID,
		AccountId:   entry.AccountID,
		Amount:      entry.Amount,
		Reason:      entry.Reason,
		ReferenceId: entry.ReferenceID,
		CreatedAt:   entry.CreatedAt,
	}
}
