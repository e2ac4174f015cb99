package news

import (
	"errors"
	"net/http"

	httpmetrics "lucr-news/internal/handler/http"
	"lucr-news/internal/handler/http/pathutil"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type ViewHandler struct{ Svc newsUC.Service }

// ServeHTTP increments the view counter of one news entry and returns the
// updated entry. The high-view flag flips automatically at the threshold.
func (h ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/news/", "/view")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.IncrementViewCount(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrInvalidNewsID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, newsUC.ErrNewsNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	httpmetrics.RecordNewsView(updated.Source)
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
