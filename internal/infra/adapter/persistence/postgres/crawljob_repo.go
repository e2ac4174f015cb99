package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/repository"
)

// Postgres unique_violation error code, raised by the partial unique index
// over PENDING and RUNNING jobs.
const uniqueViolation = "23505"

const crawlJobColumns = `id, status, total_articles, media_results, error_message, created_at, updated_at, completed_at`

type CrawlJobRepo struct {
	db *sql.DB
}

func NewCrawlJobRepo(db *sql.DB) repository.CrawlJobRepository {
	return &CrawlJobRepo{db: db}
}

func scanCrawlJob(row scanTarget) (*entity.CrawlJob, error) {
	var job entity.CrawlJob
	var mediaResults, errorMessage sql.NullString
	var completedAt sql.NullTime
	if err := row.Scan(&job.ID, &job.Status, &job.TotalArticles, &mediaResults,
		&errorMessage, &job.CreatedAt, &job.UpdatedAt, &completedAt); err != nil {
		return nil, err
	}
	job.MediaResults = mediaResults.String
	job.ErrorMessage = errorMessage.String
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}
	return &job, nil
}

func (repo *CrawlJobRepo) Create(ctx context.Context, job *entity.CrawlJob) error {
	defer observe("crawl_job_create", time.Now())
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	const query = `
INSERT INTO crawl_jobs (id, status, total_articles, media_results, error_message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
RETURNING created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		job.ID, job.Status, job.TotalArticles,
		nullString(job.MediaResults), nullString(job.ErrorMessage)).
		Scan(&job.CreatedAt, &job.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrActiveJobExists
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CrawlJobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.CrawlJob, error) {
	defer observe("crawl_job_get", time.Now())
	const query = `
SELECT ` + crawlJobColumns + `
FROM crawl_jobs
WHERE id = $1
LIMIT 1`
	job, err := scanCrawlJob(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return job, nil
}

func (repo *CrawlJobRepo) ExistsWithStatus(ctx context.Context, status entity.CrawlJobStatus) (bool, error) {
	defer observe("crawl_job_exists_with_status", time.Now())
	const query = `SELECT EXISTS(SELECT 1 FROM crawl_jobs WHERE status = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, status).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsWithStatus: %w", err)
	}
	return exists, nil
}

func (repo *CrawlJobRepo) ListByStatus(ctx context.Context, status entity.CrawlJobStatus) ([]*entity.CrawlJob, error) {
	defer observe("crawl_job_list_by_status", time.Now())
	const query = `
SELECT ` + crawlJobColumns + `
FROM crawl_jobs
WHERE status = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("ListByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]*entity.CrawlJob, 0, 10)
	for rows.Next() {
		job, err := scanCrawlJob(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByStatus: scan: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (repo *CrawlJobRepo) Update(ctx context.Context, job *entity.CrawlJob) error {
	defer observe("crawl_job_update", time.Now())
	const query = `
UPDATE crawl_jobs
SET status = $2, total_articles = $3, media_results = $4, error_message = $5,
    completed_at = $6, updated_at = NOW()
WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query,
		job.ID, job.Status, job.TotalArticles,
		nullString(job.MediaResults), nullString(job.ErrorMessage), job.CompletedAt)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
