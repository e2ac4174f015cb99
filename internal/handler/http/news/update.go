package news

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lucr-news/internal/handler/http/pathutil"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type UpdateHandler struct{ Svc newsUC.Service }

// ServeHTTP partially updates a news entry. Absent JSON fields are left
// unchanged. Responds 409 when the new URL collides with another entry.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/news/", "")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title          *string  `json:"title"`
		Content        *string  `json:"content"`
		Source         *string  `json:"source"`
		URL            *string  `json:"url"`
		PublishedAt    *string  `json:"published_at"`
		SentimentScore *float64 `json:"sentiment_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := newsUC.UpdateInput{
		ID:             id,
		Title:          req.Title,
		Content:        req.Content,
		Source:         req.Source,
		URL:            req.URL,
		SentimentScore: req.SentimentScore,
	}
	if req.PublishedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("published_at must be in RFC3339 format"))
			return
		}
		in.PublishedAt = &parsed
	}

	updated, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		code := http.StatusBadRequest
		switch {
		case errors.Is(err, newsUC.ErrNewsNotFound):
			code = http.StatusNotFound
		case errors.Is(err, newsUC.ErrDuplicateURL):
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
