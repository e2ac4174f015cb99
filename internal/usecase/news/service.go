package news

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/domain/entity"
	"lucr-news/internal/repository"
)

// CreateInput represents the input parameters for creating a news entry.
type CreateInput struct {
	Title          string
	Content        string
	Source         string
	URL            string
	PublishedAt    *time.Time
	SentimentScore *float64
}

// UpdateInput represents the input parameters for updating a news entry.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID             uuid.UUID
	Title          *string
	Content        *string
	Source         *string
	URL            *string
	PublishedAt    *time.Time
	SentimentScore *float64
}

// Service provides news management use cases.
// It handles business logic for news operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.NewsRepository
}

// queryStrategy computes offsets and metadata for every list query.
var queryStrategy = pagination.OffsetStrategy{}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.News
	Pagination pagination.Metadata
}

func (s *Service) paginate(data []*entity.News, total int64, params pagination.Params) *PaginatedResult {
	return &PaginatedResult{
		Data:       data,
		Pagination: queryStrategy.BuildMetadata(params, total, false),
	}
}

// Create creates a new news entry with the provided input.
// It validates the entity and rejects URLs that already exist.
// Returns ErrDuplicateURL when the URL is already stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.News, error) {
	news := &entity.News{
		Title:          in.Title,
		Content:        in.Content,
		Source:         in.Source,
		URL:            in.URL,
		PublishedAt:    in.PublishedAt,
		SentimentScore: in.SentimentScore,
	}
	if err := news.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByURL(ctx, in.URL)
	if err != nil {
		return nil, fmt.Errorf("check URL existence: %w", err)
	}
	if exists {
		return nil, ErrDuplicateURL
	}

	if err := s.Repo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return news, nil
}

// Get retrieves a single news entry by its ID.
// Returns ErrInvalidNewsID if the ID is nil.
// Returns ErrNewsNotFound if the entry does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidNewsID
	}

	news, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}
	return news, nil
}

// List retrieves news ordered by creation time, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	q := queryStrategy.CalculateQuery(params)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	items, err := s.Repo.ListPaginated(ctx, q.Offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return s.paginate(items, total, params), nil
}

// ListPopular retrieves news ordered by view count, most viewed first.
func (s *Service) ListPopular(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	q := queryStrategy.CalculateQuery(params)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	items, err := s.Repo.ListPopular(ctx, q.Offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("list popular news: %w", err)
	}

	return s.paginate(items, total, params), nil
}

// ListBySource retrieves news from one source, newest publication first.
func (s *Service) ListBySource(ctx context.Context, source string, params pagination.Params) (*PaginatedResult, error) {
	if source == "" {
		return nil, &entity.ValidationError{Field: "source", Message: "is required"}
	}
	q := queryStrategy.CalculateQuery(params)

	total, err := s.Repo.CountBySource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("count news by source: %w", err)
	}

	items, err := s.Repo.ListBySource(ctx, source, q.Offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("list news by source: %w", err)
	}

	return s.paginate(items, total, params), nil
}

// SearchByKeyword finds news whose title or content matches the keyword.
func (s *Service) SearchByKeyword(ctx context.Context, keyword string, params pagination.Params) (*PaginatedResult, error) {
	if keyword == "" {
		return nil, &entity.ValidationError{Field: "keyword", Message: "is required"}
	}
	q := queryStrategy.CalculateQuery(params)

	total, err := s.Repo.CountByKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("count news by keyword: %w", err)
	}

	items, err := s.Repo.SearchByKeyword(ctx, keyword, q.Offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("search news: %w", err)
	}

	return s.paginate(items, total, params), nil
}

// SearchWithFilters searches news with multi-keyword support and optional
// filters. Keywords use AND logic: every keyword must match title or content.
func (s *Service) SearchWithFilters(ctx context.Context, keywords []string, filters repository.NewsSearchFilters, params pagination.Params) (*PaginatedResult, error) {
	q := queryStrategy.CalculateQuery(params)

	total, err := s.Repo.CountWithFilters(ctx, keywords, filters)
	if err != nil {
		return nil, fmt.Errorf("count news with filters: %w", err)
	}

	items, err := s.Repo.SearchWithFilters(ctx, keywords, filters, q.Offset, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("search news with filters: %w", err)
	}

	return s.paginate(items, total, params), nil
}

// Update modifies an existing news entry with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidNewsID if the ID is nil.
// Returns ErrNewsNotFound if the entry does not exist.
// Returns ErrDuplicateURL when changing the URL to one that already exists.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.News, error) {
	if in.ID == uuid.Nil {
		return nil, ErrInvalidNewsID
	}

	news, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	if in.URL != nil && *in.URL != news.URL {
		exists, err := s.Repo.ExistsByURL(ctx, *in.URL)
		if err != nil {
			return nil, fmt.Errorf("check URL existence: %w", err)
		}
		if exists {
			return nil, ErrDuplicateURL
		}
		news.URL = *in.URL
	}
	if in.Title != nil {
		news.Title = *in.Title
	}
	if in.Content != nil {
		news.Content = *in.Content
	}
	if in.Source != nil {
		news.Source = *in.Source
	}
	if in.PublishedAt != nil {
		news.PublishedAt = in.PublishedAt
	}
	if in.SentimentScore != nil {
		if err := news.SetSentimentScore(*in.SentimentScore); err != nil {
			return nil, err
		}
	}

	if err := news.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, news); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return news, nil
}

// Delete removes a news entry by its ID.
// Returns ErrInvalidNewsID if the ID is nil.
// Returns ErrNewsNotFound if the entry does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidNewsID
	}

	news, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return ErrNewsNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

// IncrementViewCount bumps the view counter of one news entry and persists
// the result. The high-view flag flips automatically at the threshold.
func (s *Service) IncrementViewCount(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidNewsID
	}

	news, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	news.IncrementViewCount()

	if err := s.Repo.Update(ctx, news); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return news, nil
}

// ExistsByURL reports whether a news entry with the given URL is stored.
func (s *Service) ExistsByURL(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, &entity.ValidationError{Field: "url", Message: "is required"}
	}
	exists, err := s.Repo.ExistsByURL(ctx, url)
	if err != nil {
		return false, fmt.Errorf("check URL existence: %w", err)
	}
	return exists, nil
}
