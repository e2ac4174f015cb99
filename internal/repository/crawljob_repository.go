package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
)

// ErrActiveJobExists is returned by Create when another job is already
// PENDING or RUNNING. The store enforces this with a unique constraint so
// concurrent triggers cannot both slip past the existence check.
var ErrActiveJobExists = errors.New("an active crawl job already exists")

type CrawlJobRepository interface {
	// Create inserts a new job record, assigning its UUID and timestamps.
	// Returns ErrActiveJobExists when another job is PENDING or RUNNING.
	Create(ctx context.Context, job *entity.CrawlJob) error
	// Get retrieves a job by ID.
	// Returns (nil, nil) if the record does not exist.
	Get(ctx context.Context, id uuid.UUID) (*entity.CrawlJob, error)
	// ExistsWithStatus reports whether any job currently has the given status.
	// Used by the coordinator for the single-active-job guard.
	ExistsWithStatus(ctx context.Context, status entity.CrawlJobStatus) (bool, error)
	// ListByStatus retrieves all jobs with the given status, newest first.
	ListByStatus(ctx context.Context, status entity.CrawlJobStatus) ([]*entity.CrawlJob, error)
	// Update persists the mutated fields of an existing job (status, result
	// fields, completed_at) and refreshes updated_at.
	Update(ctx context.Context, job *entity.CrawlJob) error
}
