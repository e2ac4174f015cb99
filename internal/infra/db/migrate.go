package db

import "database/sql"

// MigrateUp creates the news and crawl_jobs tables with their indexes.
// All statements are idempotent so the migration can run on every boot.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news (
    id              UUID PRIMARY KEY,
    title           VARCHAR(500) NOT NULL,
    content         TEXT,
    source          TEXT NOT NULL,
    url             TEXT NOT NULL UNIQUE,
    view_count      INTEGER NOT NULL DEFAULT 0,
    published_at    TIMESTAMPTZ,
    sentiment_score DOUBLE PRECISION,
    is_high_view    BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS crawl_jobs (
    id             UUID PRIMARY KEY,
    status         VARCHAR(20) NOT NULL,
    total_articles INTEGER NOT NULL DEFAULT 0,
    media_results  TEXT,
    error_message  TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at   TIMESTAMPTZ
)`); err != nil {
		return err
	}

	indexes := []string{
		// news list order
		`CREATE INDEX IF NOT EXISTS idx_news_created_at ON news(created_at DESC)`,
		// popularity ranking
		`CREATE INDEX IF NOT EXISTS idx_news_view_count ON news(view_count DESC)`,
		// source listing sorts by publication date
		`CREATE INDEX IF NOT EXISTS idx_news_published_at ON news(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_news_source ON news(source)`,
		// active-job guard scans by status
		`CREATE INDEX IF NOT EXISTS idx_crawl_jobs_status ON crawl_jobs(status)`,
		// at most one PENDING or RUNNING job may exist; closes the race
		// between concurrent triggers that both pass the existence check
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_crawl_jobs_single_active
		 ON crawl_jobs ((1)) WHERE status IN ('PENDING', 'RUNNING')`,
		`CREATE INDEX IF NOT EXISTS idx_crawl_jobs_created_at ON crawl_jobs(created_at DESC)`,
	}

	// pg_trgm speeds up ILIKE search; ignore errors when the extension
	// already exists or the role lacks privileges.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_news_title_gin ON news USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_news_content_gin ON news USING gin(content gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// fails without pg_trgm, which is acceptable
		_, _ = db.Exec(idx)
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the crawl_jobs table. The news table is kept: it holds
// the collected articles and dropping it would destroy primary data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_crawl_jobs_single_active`,
		`DROP INDEX IF EXISTS idx_crawl_jobs_status`,
		`DROP INDEX IF EXISTS idx_crawl_jobs_created_at`,
		`DROP TABLE IF EXISTS crawl_jobs CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
