package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clipframe/clipframe/pkg/jobcache"
	"github.com/clipframe/clipframe/pkg/modelclient"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/notify"
	"github.com/clipframe/clipframe/pkg/qa"
	"github.com/clipframe/clipframe/pkg/scheduler"
	"github.com/clipframe/clipframe/pkg/storage"
)

// Ledger reasons for the spend/refund pair of a generation job. Both carry the
// job id as reference_id so reconciliation can pair them.
const (
	ReasonGeneration       = "generation"
	ReasonGenerationRefund = "generation_refund"
)

// Measurer runs the measurement phase against a source frame.
type Measurer interface {
	Measure(ctx context.Context, imageURL string, mimeType string) (*models.Measurement, error)
}

// Verifier runs the comparison phase against an original/produced image pair.
type Verifier interface {
	Verify(ctx context.Context, originalURL string, producedURL string, mimeType string, mode qa.Mode) (*models.Verification, error)
}

// Orchestrator drives the generation job state machine:
// pending -> processing -> {complete | failed}. Submit runs on the request
// path and only creates and enqueues; Execute runs on the worker and does
// everything else.
type Orchestrator struct {
	jobs      storage.JobStore
	wallets   storage.WalletStore
	cache     jobcache.Cache
	scheduler scheduler.Scheduler
	generator modelclient.Generator
	surveyor  Measurer
	verifier  Verifier
	publisher notify.Publisher

	generationTimeout time.Duration
	logger            *slog.Logger
}

// Config collects the orchestrator's collaborators.
type Config struct {
	Jobs      storage.JobStore
	Wallets   storage.WalletStore
	Cache     jobcache.Cache
	Scheduler scheduler.Scheduler
	Generator modelclient.Generator
	Surveyor  Measurer
	Verifier  Verifier
	Publisher notify.Publisher

	// GenerationTimeout bounds the single generation call. It should sit
	// comfortably inside the worker's maximum request lifetime.
	GenerationTimeout time.Duration

	Logger *slog.Logger
}

func New(cfg Config) *Orchestrator {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = &notify.NoOpPublisher{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.GenerationTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Orchestrator{
		jobs:              cfg.Jobs,
		wallets:           cfg.Wallets,
		cache:             cfg.Cache,
		scheduler:         cfg.Scheduler,
		generator:         cfg.Generator,
		surveyor:          cfg.Surveyor,
		verifier:          cfg.Verifier,
		publisher:         publisher,
		generationTimeout: timeout,
		logger:            logger,
	}
}

// SubmitRequest describes one unit of generation work.
type SubmitRequest struct {
	AccountID string
	SourceURL string
	MimeType  string
	StyleHint string
	Cost      int64
	Measure   bool
	Verify    bool
}

// Submit creates the job row in pending and hands it to the worker queue. It
// returns the created job immediately; all spending and processing happens
// asynchronously in Execute.
func (o *Orchestrator) Submit(ctx context.Context, req *SubmitRequest) (*models.Job, error) {
	job := &models.Job{
		Id:        uuid.New().String(),
		AccountId: req.AccountID,
		Status:    models.PENDING,
		Progress:  0,
		Message:   "Queued",
		SourceURL: req.SourceURL,
		Cost:      req.Cost,
	}

	created, err := o.jobs.CreateJob(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	o.mirror(ctx, created)

	msg := &scheduler.JobMessage{
		JobID:     created.Id,
		AccountID: created.AccountId,
		SourceURL: created.SourceURL,
		MimeType:  req.MimeType,
		StyleHint: req.StyleHint,
		Cost:      created.Cost,
		Measure:   req.Measure,
		Verify:    req.Verify,
	}
	if err := o.scheduler.ScheduleJob(ctx, msg); err != nil {
		// The job row exists but no worker will ever pick it up; fail it now
		// so the poller isn't left watching a pending job forever.
		o.fail(ctx, created.Id, models.ErrCodeGenerationFailed, "failed to enqueue job")
		return nil, fmt.Errorf("failed to schedule job: %w", err)
	}

	return created, nil
}

// mirror updates the fast store and pushes the job state to connected clients.
// Both are best-effort: the durable row is the source of truth.
func (o *Orchestrator) mirror(ctx context.Context, job *models.Job) {
	if err := o.cache.Put(ctx, job); err != nil {
		o.logger.Warn("failed to mirror job to cache", "jobId", job.Id, "error", err)
	}
	if err := o.publisher.Publish(ctx, notify.NewJobUpdate(job)); err != nil {
		o.logger.Warn("failed to publish job update", "jobId", job.Id, "error", err)
	}
}
