package news

import (
	"errors"
	"net/http"

	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type ExistsHandler struct{ Svc newsUC.Service }

// ServeHTTP reports whether a news entry with the given URL is stored.
// Crawlers use this to skip articles that are already collected.
func (h ExistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("url query parameter is required"))
		return
	}

	exists, err := h.Svc.ExistsByURL(r.Context(), url)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"exists": exists})
}
