package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/clipframe/clipframe/pkg/api"
	"github.com/clipframe/clipframe/pkg/blobstore"
	"github.com/clipframe/clipframe/pkg/jobcache"
	"github.com/clipframe/clipframe/pkg/mapping"
	"github.com/clipframe/clipframe/pkg/models"
	"github.com/clipframe/clipframe/pkg/orchestrator"
	"github.com/clipframe/clipframe/pkg/storage"
)

// maxUploadBytes bounds the source artifact size accepted on the upload endpoint.
const maxUploadBytes = 32 << 20

// Submitter creates a job and hands it to the worker queue.
type Submitter interface {
	Submit(ctx context.Context, req *orchestrator.SubmitRequest) (*models.Job, error)
}

// JobsHandler holds the dependencies for job-related handlers.
type JobsHandler struct {
	Orchestrator Submitter
	Store        storage.JobReader
	Cache        jobcache.Cache
	Uploader     blobstore.Uploader
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(orch Submitter, store storage.JobReader, cache jobcache.Cache, uploader blobstore.Uploader) *JobsHandler {
	return &JobsHandler{
		Orchestrator: orch,
		Store:        store,
		Cache:        cache,
		Uploader:     uploader,
	}
}

// CreateJob handles the logic for submitting a new generation job.
func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	// Decode the request body.
	var newJob api.NewJob
	if err := json.NewDecoder(r.Body).Decode(&newJob); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newJob.AccountId == "" || newJob.SourceUrl == "" {
		http.Error(w, "account_id and source_url are required", http.StatusBadRequest)
		return
	}

	// Create the job row and enqueue it. Credits are spent by the worker, so
	// this responds immediately with a pending job.
	job, err := h.Orchestrator.Submit(r.Context(), mapping.ToSubmitRequest(&newJob))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to submit job: %v", err), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiJob(job))
}

// GetJobById handles the polling read for a job. It prefers the fast mirror
// and falls back to the durable store on a miss.
func (h *JobsHandler) GetJobById(w http.ResponseWriter, r *http.Request, jobId string) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return
	}

	// The ownership check applies to cached reads too: a job owned by a
	// different account is indistinguishable from a missing one.
	if cached, err := h.Cache.Get(r.Context(), jobId); err == nil {
		if cached.AccountId != accountID {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, mapping.ToApiJob(cached))
		return
	}

	job, err := h.Store.GetJob(r.Context(), jobId, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrJobNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve job: %v", err), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiJob(job))
}

// UploadSource handles persisting a source artifact before a job references
// it. Spend only happens after the input is durably stored.
func (h *JobsHandler) UploadSource(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "A 'file' form field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := "uploads/" + uuid.New().String() + path.Ext(header.Filename)
	url, err := h.Uploader.Upload(r.Context(), key, contentType, body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to store upload: %v", err), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, &api.Upload{Url: url})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
