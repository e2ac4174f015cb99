// Package admin exposes the crawl orchestration endpoints. Triggering a
// crawl publishes a request to the message broker; job state is updated
// asynchronously by the result consumer and polled through these endpoints.
package admin

import (
	"time"

	"lucr-news/internal/domain/entity"
)

type crawlJobDTO struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	TotalArticles int        `json:"total_articles"`
	MediaResults  string     `json:"media_results,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func toCrawlJobDTO(j *entity.CrawlJob) crawlJobDTO {
	return crawlJobDTO{
		ID:            j.ID.String(),
		Status:        string(j.Status),
		TotalArticles: j.TotalArticles,
		MediaResults:  j.MediaResults,
		ErrorMessage:  j.ErrorMessage,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
		CompletedAt:   j.CompletedAt,
	}
}

func toCrawlJobDTOs(jobs []*entity.CrawlJob) []crawlJobDTO {
	dtos := make([]crawlJobDTO, 0, len(jobs))
	for _, j := range jobs {
		dtos = append(dtos, toCrawlJobDTO(j))
	}
	return dtos
}
