package crawljob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/repository"
)

// DefaultMaxArticles is used when a trigger request does not specify a limit.
const DefaultMaxArticles = 50

// Publisher hands a crawl request to the message queue.
type Publisher interface {
	Publish(ctx context.Context, jobID uuid.UUID, maxArticles int) error
}

// Service provides crawl job use cases: triggering crawls, tracking their
// state, and applying progress reports from the external worker.
type Service struct {
	Repo repository.CrawlJobRepository
	Pub  Publisher
}

// Trigger starts a new crawl. It rejects the request while another job is
// pending or running, records a PENDING job, and publishes the request to
// the queue. The job row is kept even when the publish fails, so operators
// can see the stuck job and the crawler can still pick up a late delivery.
func (s *Service) Trigger(ctx context.Context, maxArticles int) (*entity.CrawlJob, error) {
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}

	for _, status := range []entity.CrawlJobStatus{entity.CrawlJobRunning, entity.CrawlJobPending} {
		active, err := s.Repo.ExistsWithStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("check active jobs: %w", err)
		}
		if active {
			return nil, ErrJobAlreadyRunning
		}
	}

	job := entity.NewCrawlJob()
	if err := s.Repo.Create(ctx, job); err != nil {
		// a concurrent trigger won the race between the existence check
		// and the insert
		if errors.Is(err, repository.ErrActiveJobExists) {
			return nil, ErrJobAlreadyRunning
		}
		return nil, fmt.Errorf("create crawl job: %w", err)
	}

	if err := s.Pub.Publish(ctx, job.ID, maxArticles); err != nil {
		return nil, fmt.Errorf("publish crawl request: %w", err)
	}

	slog.Info("crawl job triggered",
		slog.String("job_id", job.ID.String()),
		slog.Int("max_articles", maxArticles))

	return job, nil
}

// Get retrieves a single crawl job by its ID.
// Returns ErrInvalidJobID if the ID is nil.
// Returns ErrJobNotFound if the job does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.CrawlJob, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidJobID
	}

	job, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get crawl job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListByStatus retrieves crawl jobs in the given state, newest first.
// Returns ErrInvalidStatus for unknown status values.
func (s *Service) ListByStatus(ctx context.Context, status entity.CrawlJobStatus) ([]*entity.CrawlJob, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	jobs, err := s.Repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list crawl jobs: %w", err)
	}
	return jobs, nil
}

// MarkRunning transitions a job from PENDING to RUNNING.
// ErrInvalidTransition surfaces from the entity when the job already left
// the PENDING state.
func (s *Service) MarkRunning(ctx context.Context, id uuid.UUID) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := job.MarkRunning(); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return fmt.Errorf("update crawl job: %w", err)
	}

	slog.Info("crawl job running", slog.String("job_id", id.String()))
	return nil
}

// MarkCompleted transitions a job to COMPLETED and records the results.
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID, totalArticles int, mediaResults string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := job.MarkCompleted(totalArticles, mediaResults); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return fmt.Errorf("update crawl job: %w", err)
	}

	slog.Info("crawl job completed",
		slog.String("job_id", id.String()),
		slog.Int("total_articles", totalArticles))
	return nil
}

// MarkFailed transitions a job to FAILED and records the error message.
func (s *Service) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := job.MarkFailed(errorMessage); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return fmt.Errorf("update crawl job: %w", err)
	}

	slog.Warn("crawl job failed",
		slog.String("job_id", id.String()),
		slog.String("reason", errorMessage))
	return nil
}

// FailStale marks PENDING and RUNNING jobs as FAILED when they have not been
// touched within olderThan. A crawler that crashed mid-job would otherwise
// hold the single-active-job guard forever. Returns the number of jobs it
// failed.
func (s *Service) FailStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	failed := 0

	for _, status := range []entity.CrawlJobStatus{entity.CrawlJobPending, entity.CrawlJobRunning} {
		jobs, err := s.Repo.ListByStatus(ctx, status)
		if err != nil {
			return failed, fmt.Errorf("list stale candidates: %w", err)
		}
		for _, job := range jobs {
			if job.UpdatedAt.After(cutoff) {
				continue
			}
			if err := job.MarkFailed("crawl timed out waiting for the crawler"); err != nil {
				return failed, err
			}
			if err := s.Repo.Update(ctx, job); err != nil {
				return failed, fmt.Errorf("update stale job: %w", err)
			}
			failed++
			slog.Warn("stale crawl job failed",
				slog.String("job_id", job.ID.String()),
				slog.String("was", string(status)))
		}
	}
	return failed, nil
}
