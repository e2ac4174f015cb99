// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/pkg/search"
	"lucr-news/internal/repository"
)

const newsColumns = `id, title, content, source, url, view_count, published_at, sentiment_score, is_high_view, created_at, updated_at`

type NewsRepo struct {
	db           *sql.DB
	queryBuilder *NewsQueryBuilder
}

func NewNewsRepo(db *sql.DB) repository.NewsRepository {
	return &NewsRepo{
		db:           db,
		queryBuilder: NewNewsQueryBuilder(),
	}
}

// scanTarget is satisfied by both *sql.Row and *sql.Rows.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanNews(row scanTarget) (*entity.News, error) {
	var news entity.News
	var content sql.NullString
	var publishedAt sql.NullTime
	var sentiment sql.NullFloat64
	if err := row.Scan(&news.ID, &news.Title, &content, &news.Source, &news.URL,
		&news.ViewCount, &publishedAt, &sentiment, &news.IsHighView,
		&news.CreatedAt, &news.UpdatedAt); err != nil {
		return nil, err
	}
	news.Content = content.String
	if publishedAt.Valid {
		news.PublishedAt = &publishedAt.Time
	}
	if sentiment.Valid {
		score := sentiment.Float64
		news.SentimentScore = &score
	}
	return &news, nil
}

func (repo *NewsRepo) queryNews(ctx context.Context, query string, args ...any) ([]*entity.News, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.News, 0, 20)
	for rows.Next() {
		news, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, news)
	}
	return items, rows.Err()
}

func (repo *NewsRepo) Create(ctx context.Context, news *entity.News) error {
	defer observe("news_create", time.Now())
	if news.ID == uuid.Nil {
		news.ID = uuid.New()
	}
	const query = `
INSERT INTO news (id, title, content, source, url, view_count, published_at, sentiment_score, is_high_view, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
RETURNING created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		news.ID, news.Title, nullString(news.Content), news.Source, news.URL,
		news.ViewCount, news.PublishedAt, news.SentimentScore, news.IsHighView).
		Scan(&news.CreatedAt, &news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *NewsRepo) Get(ctx context.Context, id uuid.UUID) (*entity.News, error) {
	defer observe("news_get", time.Now())
	const query = `
SELECT ` + newsColumns + `
FROM news
WHERE id = $1
LIMIT 1`
	news, err := scanNews(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return news, nil
}

func (repo *NewsRepo) ListPaginated(ctx context.Context, offset, limit int) ([]*entity.News, error) {
	defer observe("news_list", time.Now())
	const query = `
SELECT ` + newsColumns + `
FROM news
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	items, err := repo.queryNews(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) ListPopular(ctx context.Context, offset, limit int) ([]*entity.News, error) {
	defer observe("news_list_popular", time.Now())
	const query = `
SELECT ` + newsColumns + `
FROM news
ORDER BY view_count DESC, created_at DESC
LIMIT $1 OFFSET $2`
	items, err := repo.queryNews(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPopular: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) ListBySource(ctx context.Context, source string, offset, limit int) ([]*entity.News, error) {
	defer observe("news_list_by_source", time.Now())
	const query = `
SELECT ` + newsColumns + `
FROM news
WHERE source = $1
ORDER BY published_at DESC NULLS LAST
LIMIT $2 OFFSET $3`
	items, err := repo.queryNews(ctx, query, source, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListBySource: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) Count(ctx context.Context) (int64, error) {
	defer observe("news_count", time.Now())
	const query = `SELECT COUNT(*) FROM news`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) CountBySource(ctx context.Context, source string) (int64, error) {
	defer observe("news_count_by_source", time.Now())
	const query = `SELECT COUNT(*) FROM news WHERE source = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, source).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountBySource: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) SearchByKeyword(ctx context.Context, keyword string, offset, limit int) ([]*entity.News, error) {
	defer observe("news_search", time.Now())
	const query = `
SELECT ` + newsColumns + `
FROM news
WHERE title ILIKE $1
   OR content ILIKE $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	items, err := repo.queryNews(ctx, query, search.EscapeILIKE(keyword), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("SearchByKeyword: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) CountByKeyword(ctx context.Context, keyword string) (int64, error) {
	defer observe("news_count_by_keyword", time.Now())
	const query = `
SELECT COUNT(*)
FROM news
WHERE title ILIKE $1
   OR content ILIKE $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, search.EscapeILIKE(keyword)).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByKeyword: %w", err)
	}
	return count, nil
}

// SearchWithFilters searches news with multi-keyword AND logic and optional filters.
func (repo *NewsRepo) SearchWithFilters(ctx context.Context, keywords []string, filters repository.NewsSearchFilters, offset, limit int) ([]*entity.News, error) {
	defer observe("news_search_filtered", time.Now())
	whereClause, args := repo.queryBuilder.BuildWhereClause(keywords, filters)

	query := `
SELECT ` + newsColumns + `
FROM news
` + whereClause + `
ORDER BY created_at DESC
LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)
	args = append(args, limit, offset)

	items, err := repo.queryNews(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchWithFilters: %w", err)
	}
	return items, nil
}

func (repo *NewsRepo) CountWithFilters(ctx context.Context, keywords []string, filters repository.NewsSearchFilters) (int64, error) {
	defer observe("news_count_filtered", time.Now())
	whereClause, args := repo.queryBuilder.BuildWhereClause(keywords, filters)

	query := `SELECT COUNT(*) FROM news ` + whereClause
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountWithFilters: %w", err)
	}
	return count, nil
}

func (repo *NewsRepo) Update(ctx context.Context, news *entity.News) error {
	defer observe("news_update", time.Now())
	const query = `
UPDATE news
SET title = $2, content = $3, source = $4, url = $5, view_count = $6,
    published_at = $7, sentiment_score = $8, is_high_view = $9, updated_at = NOW()
WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query,
		news.ID, news.Title, nullString(news.Content), news.Source, news.URL,
		news.ViewCount, news.PublishedAt, news.SentimentScore, news.IsHighView)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (repo *NewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer observe("news_delete", time.Now())
	const query = `DELETE FROM news WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (repo *NewsRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	defer observe("news_exists_by_url", time.Now())
	const query = `SELECT EXISTS(SELECT 1 FROM news WHERE url = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, url).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByURL: %w", err)
	}
	return exists, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
