package news

import (
	"errors"
	"net/http"

	"lucr-news/internal/handler/http/pathutil"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type DeleteHandler struct{ Svc newsUC.Service }

// ServeHTTP removes a news entry. Responds 204 on success.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/news/", "")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, newsUC.ErrInvalidNewsID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, newsUC.ErrNewsNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
