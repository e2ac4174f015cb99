package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CrawlJobStatus represents the lifecycle state of a crawl job.
// Jobs progress forward only: PENDING → RUNNING → COMPLETED | FAILED.
type CrawlJobStatus string

const (
	// CrawlJobPending means the job has been created and is waiting in the queue.
	CrawlJobPending CrawlJobStatus = "PENDING"
	// CrawlJobRunning means the external worker is crawling.
	CrawlJobRunning CrawlJobStatus = "RUNNING"
	// CrawlJobCompleted means the crawl finished successfully.
	CrawlJobCompleted CrawlJobStatus = "COMPLETED"
	// CrawlJobFailed means the crawl ended with an error.
	CrawlJobFailed CrawlJobStatus = "FAILED"
)

// ErrInvalidTransition indicates an attempt to move a crawl job backwards
// or out of a terminal state.
var ErrInvalidTransition = errors.New("invalid crawl job state transition")

// IsValid reports whether the status is one of the known lifecycle states.
func (s CrawlJobStatus) IsValid() bool {
	switch s {
	case CrawlJobPending, CrawlJobRunning, CrawlJobCompleted, CrawlJobFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected.
func (s CrawlJobStatus) IsTerminal() bool {
	return s == CrawlJobCompleted || s == CrawlJobFailed
}

// CrawlJob tracks one crawl request end-to-end. Its ID is the correlation key
// shared with the external worker over the message queue.
type CrawlJob struct {
	ID            uuid.UUID
	Status        CrawlJobStatus
	TotalArticles int
	MediaResults  string
	ErrorMessage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

// NewCrawlJob returns a fresh job in the PENDING state.
// The ID is assigned by the store on insert.
func NewCrawlJob() *CrawlJob {
	return &CrawlJob{Status: CrawlJobPending}
}

// MarkRunning moves the job from PENDING to RUNNING.
func (j *CrawlJob) MarkRunning() error {
	if j.Status != CrawlJobPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.Status, CrawlJobRunning)
	}
	j.Status = CrawlJobRunning
	return nil
}

// MarkCompleted moves the job to the COMPLETED terminal state and records
// the crawl results. CompletedAt is set exactly once, here.
func (j *CrawlJob) MarkCompleted(totalArticles int, mediaResults string) error {
	if j.Status.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.Status, CrawlJobCompleted)
	}
	if totalArticles < 0 {
		return &ValidationError{Field: "totalArticles", Message: "must not be negative"}
	}
	now := time.Now()
	j.Status = CrawlJobCompleted
	j.TotalArticles = totalArticles
	j.MediaResults = mediaResults
	j.CompletedAt = &now
	return nil
}

// MarkFailed moves the job to the FAILED terminal state and records the error.
// Result fields keep their defaults; error message and media results are
// mutually exclusive.
func (j *CrawlJob) MarkFailed(errorMessage string) error {
	if j.Status.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, j.Status, CrawlJobFailed)
	}
	now := time.Now()
	j.Status = CrawlJobFailed
	j.ErrorMessage = errorMessage
	j.CompletedAt = &now
	return nil
}
