package jobcache

import (
	"context"
	"errors"

	"github.com/clipframe/clipframe/pkg/models"
)

// ErrCacheMiss is returned when a job has no entry in the fast mirror.
var ErrCacheMiss = errors.New("job not in cache")

// Cache is the fast, ephemeral mirror of job records used for low-latency
// status polling. The durable store remains the source of truth: readers fall
// back to it on a miss, and a mirror entry is stale for at most one update
// cycle.
type Cache interface {
	// Put stores the current job snapshot, replacing any previous entry.
	Put(ctx context.Context, job *models.Job) error

	// Get retrieves a job snapshot, or ErrCacheMiss if none is cached.
	Get(ctx context.Context, jobID string) (*models.Job, error)
}
