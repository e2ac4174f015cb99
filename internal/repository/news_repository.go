// Package repository defines the persistence interfaces for the domain entities.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
)

// NewsSearchFilters contains optional filters for news search.
type NewsSearchFilters struct {
	Source       *string    // Optional: Filter by news source
	MinViewCount *int       // Optional: Filter news with view_count >= this value
	From         *time.Time // Optional: Filter news published >= this date
	To           *time.Time // Optional: Filter news published <= this date
}

type NewsRepository interface {
	// Create inserts a new record. The store assigns the ID when it is unset
	// and stamps created_at/updated_at.
	Create(ctx context.Context, news *entity.News) error
	// Get retrieves a news item by ID.
	// Returns (nil, nil) if the record does not exist.
	Get(ctx context.Context, id uuid.UUID) (*entity.News, error)
	// ListPaginated retrieves news ordered by created_at DESC.
	// offset is the number of rows to skip, limit the maximum to return.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.News, error)
	// ListPopular retrieves news ordered by view_count DESC.
	ListPopular(ctx context.Context, offset, limit int) ([]*entity.News, error)
	// ListBySource retrieves news from one source ordered by published_at DESC.
	ListBySource(ctx context.Context, source string, offset, limit int) ([]*entity.News, error)
	// Count returns the total number of news records, used for pagination metadata.
	Count(ctx context.Context) (int64, error)
	CountBySource(ctx context.Context, source string) (int64, error)
	// SearchByKeyword finds news whose title or content matches the keyword
	// (case-insensitive substring), ordered by created_at DESC.
	SearchByKeyword(ctx context.Context, keyword string, offset, limit int) ([]*entity.News, error)
	CountByKeyword(ctx context.Context, keyword string) (int64, error)
	// SearchWithFilters searches news with multi-keyword AND logic and optional filters.
	SearchWithFilters(ctx context.Context, keywords []string, filters NewsSearchFilters, offset, limit int) ([]*entity.News, error)
	CountWithFilters(ctx context.Context, keywords []string, filters NewsSearchFilters) (int64, error)
	// Update persists the mutated fields of an existing record and refreshes
	// updated_at. After Update returns, a subsequent Get sees the new values.
	Update(ctx context.Context, news *entity.News) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByURL reports whether any news record uses the given URL.
	// The crawler checks this before saving to avoid duplicates.
	ExistsByURL(ctx context.Context, url string) (bool, error)
}
