package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/notify"
	"github.com/clipframe/clipframe/pkg/qa"
	"github.com/clipframe/clipframe/pkg/scheduler"
	"github.com/clipframe/clipframe/pkg/storage"
)

// Execute runs one job to a terminal state. It is safe to deliver the same
// message twice: deterministic ledger ids collapse repeated spends and refunds
// into one entry each, and the guard on the job row decides which delivery
// drives the outcome.
func (o *Orchestrator) Execute(ctx context.Context, msg *scheduler.JobMessage) error {
	logger := o.logger.With("jobId", msg.JobID, "accountId", msg.AccountID)

	// Step 1: Spend credits. Nothing has been spent if this fails, so an
	// insufficient-funds failure terminates the job with no refund. A
	// redelivered message finds its spend already on the ledger and carries
	// on without charging again.
	wallet, err := o.wallets.SpendCredits(ctx, msg.AccountID, msg.Cost, ReasonGeneration, msg.JobID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			logger.Info("Insufficient credits for job")
			o.fail(ctx, msg.JobID, models.ErrCodeInsufficientCredits, "not enough credits to run this job")
			return nil
		case errors.Is(err, storage.ErrDuplicateSpend):
			logger.Info("Spend already recorded for this job")
		default:
			// Transient spend failures are retried by the queue.
			return fmt.Errorf("failed to spend credits for job %s: %w", msg.JobID, err)
		}
	}
	if wallet != nil {
		o.publishWallet(ctx, wallet, -msg.Cost)
	}

	// Step 2: Transition to processing.
	job, err := o.update(ctx, msg.JobID, storage.JobUpdate{
		Status:   statusPtr(models.PROCESSING),
		Progress: i32Ptr(10),
		Message:  strPtr("Starting generation"),
	})
	if err != nil {
		return o.abandon(ctx, msg, "mark processing", err)
	}

	// Step 3: Optional measurement phase. A failure here degrades gracefully;
	// generation proceeds without hints.
	var measurement *models.Measurement
	if msg.Measure {
		if _, err := o.update(ctx, msg.JobID, storage.JobUpdate{
			Progress: i32Ptr(25),
			Message:  strPtr("Measuring layout"),
		}); err != nil {
			return o.abandon(ctx, msg, "update progress", err)
		}
		measurement, err = o.surveyor.Measure(ctx, msg.SourceURL, msg.MimeType)
		if err != nil {
			logger.Warn("Measurement failed, proceeding without hints", "error", err)
			measurement = nil
		}
	}

	// Step 4: The generation call. The single most failure-prone step: any
	// error maps to a failed transition plus a refund of the spent cost.
	if _, err := o.update(ctx, msg.JobID, storage.JobUpdate{
		Progress: i32Ptr(40),
		Message:  strPtr("Generating code"),
	}); err != nil {
		return o.abandon(ctx, msg, "update progress", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	resp, err := o.generator.Generate(genCtx, &modelclient.GenerationRequest{
		SourceURL:    msg.SourceURL,
		StyleHint:    msg.StyleHint,
		Measurements: measurement,
	})
	if err != nil {
		code := models.ErrCodeGenerationFailed
		message := "generation failed"
		if errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			code = models.ErrCodeTimeout
			message = "generation timed out"
		}
		logger.Error("Generation failed", "errorCode", code, "error", err)
		if o.fail(ctx, msg.JobID, code, message) {
			o.refund(ctx, msg)
		} else {
			o.settleTerminal(ctx, msg)
		}
		return nil
	}

	// Step 5: Finalize. Title extraction is best-effort and never blocking.
	result := &models.GenerationResult{
		Code:      resp.Code,
		Title:     resp.Title,
		RenderURL: resp.RenderURL,
	}
	if result.Title == "" {
		result.Title = extractTitle(resp.Code)
	}

	now := time.Now()
	job, err = o.update(ctx, msg.JobID, storage.JobUpdate{
		Status:      statusPtr(models.COMPLETE),
		Progress:    i32Ptr(100),
		Message:     strPtr("Complete"),
		Result:      result,
		CompletedAt: &now,
	})
	if err != nil {
		return o.abandon(ctx, msg, "complete job", err)
	}
	logger.Info("Job complete", "title", result.Title)

	// Step 6: Optional advisory verification. A bad verdict never reverts a
	// complete job; a verification failure only costs us the verdict.
	if msg.Verify && result.RenderURL != "" {
		o.verify(ctx, job, result.RenderURL, msg.MimeType)
	}

	return nil
}

func (o *Orchestrator) verify(ctx context.Context, job *models.Job, renderURL string, mimeType string) {
	verification, err := o.verifier.Verify(ctx, job.SourceURL, renderURL, mimeType, qa.ModeFull)
	if err != nil {
		o.logger.Warn("Verification failed, job stays complete without a verdict", "jobId", job.Id, "error", err)
		return
	}

	if err := o.jobs.AttachVerification(ctx, job.Id, verification); err != nil {
		o.logger.Warn("failed to attach verification", "jobId", job.Id, "error", err)
		return
	}

	job.Verification = verification
	o.mirror(ctx, job)
	o.logger.Info("Verification attached", "jobId", job.Id, "verdict", string(verification.Verdict))
}

// abandon resolves a delivery whose job write was rejected. A terminal row
// hands the outcome to whoever wrote it via settleTerminal; a row another
// delivery has moved further along is left to that delivery. Anything else is
// a transient storage error and goes back to the queue.
func (o *Orchestrator) abandon(ctx context.Context, msg *scheduler.JobMessage, step string, err error) error {
	switch {
	case errors.Is(err, storage.ErrJobTerminal):
		o.settleTerminal(ctx, msg)
		return nil
	case errors.Is(err, storage.ErrJobOutpaced):
		o.logger.Info("Another delivery is further along, abandoning", "jobId", msg.JobID)
		return nil
	default:
		return fmt.Errorf("failed to %s for job %s: %w", step, msg.JobID, err)
	}
}

// settleTerminal reconciles a delivery that lost a write to an already-terminal
// job. A failed job still deserves its refund, and the deterministic ledger id
// makes the attempt a no-op when the terminal writer already made it. A
// complete job keeps its spend.
func (o *Orchestrator) settleTerminal(ctx context.Context, msg *scheduler.JobMessage) {
	job, err := o.jobs.GetJob(ctx, msg.JobID, msg.AccountID)
	if err != nil {
		o.logger.Error("failed to load terminal job", "jobId", msg.JobID, "error", err)
		return
	}
	if job.Status == models.FAILED {
		o.refund(ctx, msg)
	}
}

// fail transitions a job to failed. It reports whether this call won the
// terminal write; the winner owns the refund attempt.
func (o *Orchestrator) fail(ctx context.Context, jobID string, errorCode string, errorMessage string) bool {
	now := time.Now()
	_, err := o.update(ctx, jobID, storage.JobUpdate{
		Status:       statusPtr(models.FAILED),
		Message:      strPtr("Failed"),
		ErrorCode:    &errorCode,
		ErrorMessage: &errorMessage,
		CompletedAt:  &now,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrJobTerminal) {
			o.logger.Error("failed to mark job failed", "jobId", jobID, "error", err)
		}
		return false
	}
	return true
}

// refund gives a job's spend back. Failures are logged, never propagated: a
// failed refund is a reconciliation concern, not a job-outcome concern.
func (o *Orchestrator) refund(ctx context.Context, msg *scheduler.JobMessage) {
	if err := o.wallets.RefundCredits(ctx, msg.AccountID, msg.Cost, ReasonGenerationRefund, msg.JobID); err != nil {
		if errors.Is(err, storage.ErrAlreadyRefunded) {
			o.logger.Info("Refund already recorded", "jobId", msg.JobID)
			return
		}
		o.logger.Error("failed to refund credits", "jobId", msg.JobID, "accountId", msg.AccountID, "error", err)
		return
	}
	if wallet, err := o.wallets.GetWallet(ctx, msg.AccountID); err == nil {
		o.publishWallet(ctx, wallet, msg.Cost)
	}
}

func (o *Orchestrator) update(ctx context.Context, jobID string, update storage.JobUpdate) (*models.Job, error) {
	job, err := o.jobs.UpdateJob(ctx, jobID, update)
	if err != nil {
		return nil, err
	}
	o.mirror(ctx, job)
	return job, nil
}

func (o *Orchestrator) publishWallet(ctx context.Context, wallet *models.Wallet, change int64) {
	if err := o.publisher.Publish(ctx, notify.NewWalletUpdate(wallet, change)); err != nil {
		o.logger.Warn("failed to publish wallet update", "accountId", wallet.AccountId, "error", err)
	}
}

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// extractTitle pulls a short human title out of a generated artifact.
func extractTitle(code string) string {
	match := titlePattern.FindStringSubmatch(code)
	if match == nil {
		return ""
	}
	title := strings.TrimSpace(match[1])
	if len(title) > 80 {
		title = title[:80]
	}
	return title
}

func statusPtr(s models.JobStatus) *models.JobStatus { return &s }
func i32Ptr(v int32) *int32                          { return &v }
func strPtr(s string) *string                        { return &s }
