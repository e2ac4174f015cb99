package postgres

import (
	"fmt"
	"strings"

	"lucr-news/internal/pkg/search"
	"lucr-news/internal/repository"
)

// NewsQueryBuilder builds WHERE clauses for news search in PostgreSQL.
// The builder is shared between COUNT and SELECT queries to eliminate duplication.
// PostgreSQL-specific: uses ILIKE and numbered placeholders ($1, $2, ...).
type NewsQueryBuilder struct{}

func NewNewsQueryBuilder() *NewsQueryBuilder {
	return &NewsQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for news search.
// Multi-keyword AND logic: each keyword must match title or content.
// Filters (source, minimum view count, published date range) are optional.
// Returns an empty clause when no conditions apply.
func (qb *NewsQueryBuilder) BuildWhereClause(keywords []string, filters repository.NewsSearchFilters) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	for _, keyword := range keywords {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, search.EscapeILIKE(keyword))
		paramIndex++
	}

	if filters.Source != nil {
		conditions = append(conditions, fmt.Sprintf("source = $%d", paramIndex))
		args = append(args, *filters.Source)
		paramIndex++
	}

	if filters.MinViewCount != nil {
		conditions = append(conditions, fmt.Sprintf("view_count >= $%d", paramIndex))
		args = append(args, *filters.MinViewCount)
		paramIndex++
	}

	if filters.From != nil {
		conditions = append(conditions, fmt.Sprintf("published_at >= $%d", paramIndex))
		args = append(args, *filters.From)
		paramIndex++
	}
	if filters.To != nil {
		conditions = append(conditions, fmt.Sprintf("published_at <= $%d", paramIndex))
		args = append(args, *filters.To)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
