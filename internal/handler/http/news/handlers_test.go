package news_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/repository"
)

// stubRepo is an in-memory NewsRepository for handler tests.
type stubRepo struct {
	items []*entity.News
	err   error

	gotSource   string
	gotKeywords []string
	gotFilters  repository.NewsSearchFilters
	updated     *entity.News
	deleted     uuid.UUID
	urlExists   bool
}

func (s *stubRepo) Create(_ context.Context, news *entity.News) error {
	if s.err != nil {
		return s.err
	}
	if news.ID == uuid.Nil {
		news.ID = uuid.New()
	}
	news.CreatedAt = time.Now()
	news.UpdatedAt = news.CreatedAt
	s.items = append(s.items, news)
	return nil
}

func (s *stubRepo) Get(_ context.Context, id uuid.UUID) (*entity.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListPaginated(_ context.Context, offset, limit int) ([]*entity.News, error) {
	return s.page(offset, limit)
}

func (s *stubRepo) ListPopular(_ context.Context, offset, limit int) ([]*entity.News, error) {
	return s.page(offset, limit)
}

func (s *stubRepo) ListBySource(_ context.Context, source string, offset, limit int) ([]*entity.News, error) {
	s.gotSource = source
	return s.page(offset, limit)
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.items)), nil
}

func (s *stubRepo) CountBySource(_ context.Context, source string) (int64, error) {
	return s.Count(context.Background())
}

func (s *stubRepo) SearchByKeyword(_ context.Context, _ string, offset, limit int) ([]*entity.News, error) {
	return s.page(offset, limit)
}

func (s *stubRepo) CountByKeyword(_ context.Context, _ string) (int64, error) {
	return s.Count(context.Background())
}

func (s *stubRepo) SearchWithFilters(_ context.Context, keywords []string, filters repository.NewsSearchFilters, offset, limit int) ([]*entity.News, error) {
	s.gotKeywords = keywords
	s.gotFilters = filters
	return s.page(offset, limit)
}

func (s *stubRepo) CountWithFilters(_ context.Context, _ []string, _ repository.NewsSearchFilters) (int64, error) {
	return s.Count(context.Background())
}

func (s *stubRepo) Update(_ context.Context, news *entity.News) error {
	if s.err != nil {
		return s.err
	}
	s.updated = news
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = id
	return nil
}

func (s *stubRepo) ExistsByURL(_ context.Context, _ string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.urlExists, nil
}

func (s *stubRepo) page(offset, limit int) ([]*entity.News, error) {
	if s.err != nil {
		return nil, s.err
	}
	if offset >= len(s.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}
	return s.items[offset:end], nil
}

func testNews(title, source, url string) *entity.News {
	now := time.Now()
	published := now.Add(-time.Hour)
	return &entity.News{
		ID:          uuid.New(),
		Title:       title,
		Content:     "content of " + title,
		Source:      source,
		URL:         url,
		ViewCount:   10,
		PublishedAt: &published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
