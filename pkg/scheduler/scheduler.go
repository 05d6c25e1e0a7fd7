package scheduler

import (
	"context"
)

// JobMessage is the unit of work handed to the generation worker. It carries
// everything the worker needs so the hot path never re-reads the job row
// before starting.
type JobMessage struct {
	JobID     string `json:"job_id"`
	AccountID string `json:"account_id"`
	SourceURL string `json:"source_url"`
	MimeType  string `json:"mime_type"`
	StyleHint string `json:"style_hint,omitempty"`
	Cost      int64  `json:"cost"`
	Measure   bool   `json:"measure"`
	Verify    bool   `json:"verify"`
}

// Scheduler defines the interface for a component that enqueues a job for
// asynchronous processing.
type Scheduler interface {
	// ScheduleJob enqueues a job for the generation worker.
	ScheduleJob(ctx context.Context, msg *JobMessage) error
}
