package admin

import (
	"errors"
	"net/http"

	"lucr-news/internal/handler/http/pathutil"
	"lucr-news/internal/handler/http/respond"
	crawljobUC "lucr-news/internal/usecase/crawljob"
)

type JobGetHandler struct{ Svc *crawljobUC.Service }

// ServeHTTP returns the current state of one crawl job. Clients poll this
// endpoint after triggering a crawl.
func (h JobGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractUUID(r.URL.Path, "/admin/crawl/jobs/", "")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	job, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, crawljobUC.ErrInvalidJobID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, crawljobUC.ErrJobNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCrawlJobDTO(job))
}
