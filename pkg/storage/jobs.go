package storage

import (
	"context"
	"time"

	"github.com/clipframe/clipframe/pkg/models"
)

// JobUpdate is a partial update applied to a job record. Nil fields are left
// untouched.
type JobUpdate struct {
	Status       *models.JobStatus
	Progress     *int32
	Message      *string
	Result       *models.GenerationResult
	ErrorCode    *string
	ErrorMessage *string
	CompletedAt  *time.Time
}

// JobReader defines the interface for reading job data.
type JobReader interface {
	// GetJob retrieves a job by its ID, scoped to the owning account. A job
	// belonging to a different account is indistinguishable from a missing one.
	GetJob(ctx context.Context, jobID, accountID string) (*models.Job, error)

	// GetStuckJobs retrieves jobs that have sat in 'processing' for longer than maxAge.
	GetStuckJobs(ctx context.Context, maxAge time.Duration) ([]models.Job, error)
}

// JobManager defines the interface for creating and mutating job records.
type JobManager interface {
	// CreateJob persists a new job record. The job id must be unused.
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)

	// UpdateJob merges the partial update into the job record and returns the
	// updated job. It refuses to mutate a job that is already terminal.
	UpdateJob(ctx context.Context, jobID string, update JobUpdate) (*models.Job, error)

	// AttachVerification stores an advisory QA verdict on a completed job.
	// This is the only write permitted after a job reaches a terminal state.
	AttachVerification(ctx context.Context, jobID string, v *models.Verification) error
}

// JobStore combines the reader and manager interfaces.
type JobStore interface {
	JobReader
	JobManager
}
