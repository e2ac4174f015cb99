package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"lucr-news/internal/domain/entity"
	pg "lucr-news/internal/infra/adapter/persistence/postgres"
	"lucr-news/internal/repository"
)

/* ─────────────────────────── helpers ─────────────────────────── */

var jobCols = []string{
	"id", "status", "total_articles", "media_results", "error_message",
	"created_at", "updated_at", "completed_at",
}

func jobRow(j *entity.CrawlJob) *sqlmock.Rows {
	var completedAt any
	if j.CompletedAt != nil {
		completedAt = *j.CompletedAt
	}
	return sqlmock.NewRows(jobCols).AddRow(
		j.ID, j.Status, j.TotalArticles, j.MediaResults, j.ErrorMessage,
		j.CreatedAt, j.UpdatedAt, completedAt,
	)
}

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestCrawlJobRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO crawl_jobs")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(now, now))

	repo := pg.NewCrawlJobRepo(db)
	job := entity.NewCrawlJob()
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if job.ID == uuid.Nil {
		t.Fatal("Create should assign an ID")
	}
	if job.Status != entity.CrawlJobPending {
		t.Fatalf("Status = %s, want PENDING", job.Status)
	}
}

func TestCrawlJobRepo_Create_ActiveJobConflict(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO crawl_jobs")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_crawl_jobs_single_active"})

	repo := pg.NewCrawlJobRepo(db)
	err := repo.Create(context.Background(), entity.NewCrawlJob())
	if !errors.Is(err, repository.ErrActiveJobExists) {
		t.Fatalf("err=%v, want ErrActiveJobExists", err)
	}
}

/* ─────────────────────────── 2. Get ─────────────────────────── */

func TestCrawlJobRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.CrawlJob{
		ID: uuid.New(), Status: entity.CrawlJobCompleted,
		TotalArticles: 143, MediaResults: `{"Reuters":80}`,
		CreatedAt: now, UpdatedAt: now, CompletedAt: &now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(want.ID).
		WillReturnRows(jobRow(want))

	repo := pg.NewCrawlJobRepo(db)
	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCrawlJobRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(jobCols))

	repo := pg.NewCrawlJobRepo(db)
	got, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get want nil for missing row, got %+v", got)
	}
}

/* ─────────────────────────── 3. ExistsWithStatus ─────────────────────────── */

func TestCrawlJobRepo_ExistsWithStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM crawl_jobs WHERE status = $1)")).
		WithArgs(entity.CrawlJobRunning).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewCrawlJobRepo(db)
	ok, err := repo.ExistsWithStatus(context.Background(), entity.CrawlJobRunning)
	if err != nil || !ok {
		t.Fatalf("ExistsWithStatus err=%v ok=%v", err, ok)
	}
}

/* ─────────────────────────── 4. ListByStatus ─────────────────────────── */

func TestCrawlJobRepo_ListByStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM crawl_jobs").
		WithArgs(entity.CrawlJobPending).
		WillReturnRows(jobRow(&entity.CrawlJob{
			ID: uuid.New(), Status: entity.CrawlJobPending,
			CreatedAt: now, UpdatedAt: now,
		}))

	repo := pg.NewCrawlJobRepo(db)
	got, err := repo.ListByStatus(context.Background(), entity.CrawlJobPending)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByStatus err=%v len=%d", err, len(got))
	}
}

/* ─────────────────────────── 5. Update ─────────────────────────── */

func TestCrawlJobRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE crawl_jobs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCrawlJobRepo(db)
	job := &entity.CrawlJob{ID: uuid.New(), Status: entity.CrawlJobRunning}
	if err := repo.Update(context.Background(), job); err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestCrawlJobRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE crawl_jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCrawlJobRepo(db)
	job := &entity.CrawlJob{ID: uuid.New(), Status: entity.CrawlJobRunning}
	if err := repo.Update(context.Background(), job); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("Update err=%v, want sql.ErrNoRows", err)
	}
}
