package news

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type CreateHandler struct{ Svc newsUC.Service }

// ServeHTTP creates a news entry from the JSON request body.
// Responds 201 with the stored entry, 400 on validation failure,
// 409 when the URL already exists.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string   `json:"title"`
		Content        string   `json:"content"`
		Source         string   `json:"source"`
		URL            string   `json:"url"`
		PublishedAt    string   `json:"published_at"`
		SentimentScore *float64 `json:"sentiment_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" || req.Source == "" || req.URL == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title, source, url are required"))
		return
	}

	var publishedAt *time.Time
	if req.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("published_at must be in RFC3339 format"))
			return
		}
		publishedAt = &parsed
	}

	created, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		Title:          req.Title,
		Content:        req.Content,
		Source:         req.Source,
		URL:            req.URL,
		PublishedAt:    publishedAt,
		SentimentScore: req.SentimentScore,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, newsUC.ErrDuplicateURL) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
