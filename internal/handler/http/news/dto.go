// Package news provides HTTP handlers for the news endpoints.
// It includes handlers for CRUD, search, popularity and source listings,
// view counting, and URL existence checks.
package news

import (
	"time"

	"github.com/google/uuid"

	"lucr-news/internal/domain/entity"
)

// DTO represents the JSON structure for news data transfer.
type DTO struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content,omitempty"`
	Source         string     `json:"source"`
	URL            string     `json:"url"`
	ViewCount      int        `json:"view_count"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	SentimentScore *float64   `json:"sentiment_score,omitempty"`
	IsHighView     bool       `json:"is_high_view"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toDTO(n *entity.News) DTO {
	return DTO{
		ID:             n.ID,
		Title:          n.Title,
		Content:        n.Content,
		Source:         n.Source,
		URL:            n.URL,
		ViewCount:      n.ViewCount,
		PublishedAt:    n.PublishedAt,
		SentimentScore: n.SentimentScore,
		IsHighView:     n.IsHighView,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func toDTOs(items []*entity.News) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	return dtos
}
