// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as News and CrawlJob, along with
// their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HighViewThreshold is the view count at which a news item is flagged as high-view.
const HighViewThreshold = 1000

// MaxTitleLength is the maximum allowed length for a news title.
const MaxTitleLength = 500

// News represents a financial news article in the system.
// It contains the article's content, source metadata, and engagement counters.
type News struct {
	ID             uuid.UUID
	Title          string
	Content        string
	Source         string
	URL            string
	ViewCount      int
	PublishedAt    *time.Time
	SentimentScore *float64
	IsHighView     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IncrementViewCount increases the view counter by one and refreshes the
// high-view flag once the counter reaches HighViewThreshold.
func (n *News) IncrementViewCount() {
	n.ViewCount++
	n.IsHighView = n.ViewCount >= HighViewThreshold
}

// SetSentimentScore assigns an AI sentiment score to the news item.
// Scores must fall within [-1.0, 1.0]; out-of-range values are rejected.
func (n *News) SetSentimentScore(score float64) error {
	if score < -1.0 || score > 1.0 {
		return &ValidationError{
			Field:   "sentimentScore",
			Message: fmt.Sprintf("must be between -1.0 and 1.0, got %.2f", score),
		}
	}
	n.SentimentScore = &score
	return nil
}

// Validate checks the required fields of a news item before persistence.
func (n *News) Validate() error {
	if n.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(n.Title) > MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", MaxTitleLength),
		}
	}
	if n.Source == "" {
		return &ValidationError{Field: "source", Message: "is required"}
	}
	if err := ValidateURL(n.URL); err != nil {
		return err
	}
	if n.SentimentScore != nil {
		if s := *n.SentimentScore; s < -1.0 || s > 1.0 {
			return &ValidationError{Field: "sentimentScore", Message: "must be between -1.0 and 1.0"}
		}
	}
	return nil
}
