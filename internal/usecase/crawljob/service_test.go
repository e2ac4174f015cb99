package crawljob_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/repository"
	jobUC "lucr-news/internal/usecase/crawljob"
)

/* ───────── stub repository and publisher ───────── */

// minimal in-memory CrawlJobRepository
type stubRepo struct {
	data      map[uuid.UUID]*entity.CrawlJob
	err       error // set to force a repository failure
	createErr error // overrides err for Create only
}

func newStub() *stubRepo {
	return &stubRepo{data: map[uuid.UUID]*entity.CrawlJob{}}
}

func (s *stubRepo) Create(_ context.Context, job *entity.CrawlJob) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.err != nil {
		return s.err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	s.data[job.ID] = job
	return nil
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.CrawlJob, error) {
	return s.data[id], s.err
}

func (s *stubRepo) ExistsWithStatus(_ context.Context, status entity.CrawlJobStatus) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, j := range s.data {
		if j.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) ListByStatus(_ context.Context, status entity.CrawlJobStatus) ([]*entity.CrawlJob, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.CrawlJob
	for _, j := range s.data {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(_ context.Context, job *entity.CrawlJob) error {
	if s.err != nil {
		return s.err
	}
	s.data[job.ID] = job
	return nil
}

type stubPublisher struct {
	published   []uuid.UUID
	maxArticles []int
	err         error
}

func (p *stubPublisher) Publish(_ context.Context, jobID uuid.UUID, maxArticles int) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, jobID)
	p.maxArticles = append(p.maxArticles, maxArticles)
	return nil
}

/* ───────── Trigger ───────── */

func TestService_Trigger(t *testing.T) {
	repo := newStub()
	pub := &stubPublisher{}
	svc := jobUC.Service{Repo: repo, Pub: pub}

	job, err := svc.Trigger(context.Background(), 100)
	if err != nil {
		t.Fatalf("Trigger err=%v", err)
	}
	if job.Status != entity.CrawlJobPending {
		t.Errorf("Status=%s, want PENDING", job.Status)
	}
	if len(pub.published) != 1 || pub.published[0] != job.ID {
		t.Fatalf("published=%v, want exactly [%s]", pub.published, job.ID)
	}
	if pub.maxArticles[0] != 100 {
		t.Errorf("maxArticles=%d, want 100", pub.maxArticles[0])
	}
	if len(repo.data) != 1 {
		t.Fatalf("stored %d jobs, want 1", len(repo.data))
	}
}

func TestService_Trigger_DefaultMaxArticles(t *testing.T) {
	pub := &stubPublisher{}
	svc := jobUC.Service{Repo: newStub(), Pub: pub}

	if _, err := svc.Trigger(context.Background(), 0); err != nil {
		t.Fatalf("Trigger err=%v", err)
	}
	if pub.maxArticles[0] != jobUC.DefaultMaxArticles {
		t.Errorf("maxArticles=%d, want %d", pub.maxArticles[0], jobUC.DefaultMaxArticles)
	}
}

func TestService_Trigger_ConflictWhileRunning(t *testing.T) {
	repo := newStub()
	running := entity.NewCrawlJob()
	running.ID = uuid.New()
	_ = running.MarkRunning()
	repo.data[running.ID] = running

	pub := &stubPublisher{}
	svc := jobUC.Service{Repo: repo, Pub: pub}

	_, err := svc.Trigger(context.Background(), 50)
	if !errors.Is(err, jobUC.ErrJobAlreadyRunning) {
		t.Fatalf("err=%v, want ErrJobAlreadyRunning", err)
	}
	// no new job, no publish
	if len(repo.data) != 1 {
		t.Errorf("stored %d jobs, want 1", len(repo.data))
	}
	if len(pub.published) != 0 {
		t.Errorf("published=%v, want none", pub.published)
	}
}

func TestService_Trigger_ConflictWhilePending(t *testing.T) {
	repo := newStub()
	pending := entity.NewCrawlJob()
	pending.ID = uuid.New()
	repo.data[pending.ID] = pending

	pub := &stubPublisher{}
	svc := jobUC.Service{Repo: repo, Pub: pub}

	_, err := svc.Trigger(context.Background(), 50)
	if !errors.Is(err, jobUC.ErrJobAlreadyRunning) {
		t.Fatalf("err=%v, want ErrJobAlreadyRunning", err)
	}
	if len(pub.published) != 0 {
		t.Errorf("published=%v, want none", pub.published)
	}
}

func TestService_Trigger_AllowedAfterTerminal(t *testing.T) {
	repo := newStub()
	done := entity.NewCrawlJob()
	done.ID = uuid.New()
	_ = done.MarkRunning()
	_ = done.MarkCompleted(10, "{}")
	repo.data[done.ID] = done

	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	if _, err := svc.Trigger(context.Background(), 50); err != nil {
		t.Fatalf("Trigger after terminal job err=%v", err)
	}
}

func TestService_Trigger_ConcurrentInsertConflict(t *testing.T) {
	repo := newStub()
	repo.createErr = repository.ErrActiveJobExists

	pub := &stubPublisher{}
	svc := jobUC.Service{Repo: repo, Pub: pub}

	_, err := svc.Trigger(context.Background(), 50)
	if !errors.Is(err, jobUC.ErrJobAlreadyRunning) {
		t.Fatalf("err=%v, want ErrJobAlreadyRunning", err)
	}
	if len(pub.published) != 0 {
		t.Errorf("published=%v, want none", pub.published)
	}
}

func TestService_Trigger_PublishFailureKeepsPendingRow(t *testing.T) {
	repo := newStub()
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := jobUC.Service{Repo: repo, Pub: pub}

	_, err := svc.Trigger(context.Background(), 50)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// the PENDING row stays so operators can inspect the stuck job
	if len(repo.data) != 1 {
		t.Fatalf("stored %d jobs, want 1", len(repo.data))
	}
}

/* ───────── Get / ListByStatus ───────── */

func TestService_Get_NotFound(t *testing.T) {
	svc := jobUC.Service{Repo: newStub(), Pub: &stubPublisher{}}

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, jobUC.ErrJobNotFound) {
		t.Fatalf("err=%v, want ErrJobNotFound", err)
	}
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := jobUC.Service{Repo: newStub(), Pub: &stubPublisher{}}

	_, err := svc.Get(context.Background(), uuid.Nil)
	if !errors.Is(err, jobUC.ErrInvalidJobID) {
		t.Fatalf("err=%v, want ErrInvalidJobID", err)
	}
}

func TestService_ListByStatus(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	job, _ := svc.Trigger(context.Background(), 50)

	jobs, err := svc.ListByStatus(context.Background(), entity.CrawlJobPending)
	if err != nil {
		t.Fatalf("ListByStatus err=%v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != job.ID {
		t.Fatalf("jobs=%v, want the pending job", jobs)
	}
}

func TestService_ListByStatus_InvalidStatus(t *testing.T) {
	svc := jobUC.Service{Repo: newStub(), Pub: &stubPublisher{}}

	_, err := svc.ListByStatus(context.Background(), "PAUSED")
	if !errors.Is(err, jobUC.ErrInvalidStatus) {
		t.Fatalf("err=%v, want ErrInvalidStatus", err)
	}
}

/* ───────── state transitions ───────── */

func TestService_MarkLifecycle(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	job, _ := svc.Trigger(context.Background(), 50)

	if err := svc.MarkRunning(context.Background(), job.ID); err != nil {
		t.Fatalf("MarkRunning err=%v", err)
	}
	if repo.data[job.ID].Status != entity.CrawlJobRunning {
		t.Fatalf("Status=%s, want RUNNING", repo.data[job.ID].Status)
	}

	if err := svc.MarkCompleted(context.Background(), job.ID, 143, `{"Reuters":80}`); err != nil {
		t.Fatalf("MarkCompleted err=%v", err)
	}
	stored := repo.data[job.ID]
	if stored.Status != entity.CrawlJobCompleted {
		t.Fatalf("Status=%s, want COMPLETED", stored.Status)
	}
	if stored.TotalArticles != 143 || stored.CompletedAt == nil {
		t.Fatalf("results not recorded: %+v", stored)
	}
}

func TestService_MarkCompleted_AlreadyTerminal(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	job, _ := svc.Trigger(context.Background(), 50)
	_ = svc.MarkRunning(context.Background(), job.ID)
	_ = svc.MarkCompleted(context.Background(), job.ID, 10, "{}")

	err := svc.MarkCompleted(context.Background(), job.ID, 20, "{}")
	if !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("err=%v, want ErrInvalidTransition", err)
	}
	// first result preserved
	if repo.data[job.ID].TotalArticles != 10 {
		t.Fatalf("TotalArticles=%d, want 10", repo.data[job.ID].TotalArticles)
	}
}

func TestService_MarkRunning_NotPending(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	job, _ := svc.Trigger(context.Background(), 50)
	_ = svc.MarkRunning(context.Background(), job.ID)

	err := svc.MarkRunning(context.Background(), job.ID)
	if !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("err=%v, want ErrInvalidTransition", err)
	}
}

func TestService_MarkFailed_FromPending(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	job, _ := svc.Trigger(context.Background(), 50)

	// the worker may fail before ever reporting RUNNING
	if err := svc.MarkFailed(context.Background(), job.ID, "crawler crashed"); err != nil {
		t.Fatalf("MarkFailed err=%v", err)
	}
	stored := repo.data[job.ID]
	if stored.Status != entity.CrawlJobFailed || stored.ErrorMessage != "crawler crashed" {
		t.Fatalf("unexpected stored job: %+v", stored)
	}
}

func TestService_MarkFailed_JobNotFound(t *testing.T) {
	svc := jobUC.Service{Repo: newStub(), Pub: &stubPublisher{}}

	err := svc.MarkFailed(context.Background(), uuid.New(), "boom")
	if !errors.Is(err, jobUC.ErrJobNotFound) {
		t.Fatalf("err=%v, want ErrJobNotFound", err)
	}
}

/* ───────── FailStale ───────── */

func TestService_FailStale(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	stale := entity.NewCrawlJob()
	stale.ID = uuid.New()
	stale.Status = entity.CrawlJobRunning
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	repo.data[stale.ID] = stale

	fresh := entity.NewCrawlJob()
	fresh.ID = uuid.New()
	fresh.Status = entity.CrawlJobRunning
	fresh.UpdatedAt = time.Now()
	repo.data[fresh.ID] = fresh

	failed, err := svc.FailStale(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("FailStale err=%v", err)
	}
	if failed != 1 {
		t.Fatalf("failed=%d, want 1", failed)
	}
	if repo.data[stale.ID].Status != entity.CrawlJobFailed {
		t.Errorf("stale job status=%s, want FAILED", repo.data[stale.ID].Status)
	}
	if repo.data[stale.ID].ErrorMessage == "" {
		t.Error("stale job has no error message")
	}
	if repo.data[fresh.ID].Status != entity.CrawlJobRunning {
		t.Errorf("fresh job status=%s, want RUNNING", repo.data[fresh.ID].Status)
	}
}

func TestService_FailStale_AbandonedPending(t *testing.T) {
	repo := newStub()
	svc := jobUC.Service{Repo: repo, Pub: &stubPublisher{}}

	stuck := entity.NewCrawlJob()
	stuck.ID = uuid.New()
	stuck.UpdatedAt = time.Now().Add(-3 * time.Hour)
	repo.data[stuck.ID] = stuck

	failed, err := svc.FailStale(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("FailStale err=%v", err)
	}
	if failed != 1 {
		t.Fatalf("failed=%d, want 1", failed)
	}

	// the guard releases once the stuck job is failed
	if _, err := svc.Trigger(context.Background(), 10); err != nil {
		t.Fatalf("Trigger after reap err=%v", err)
	}
}
