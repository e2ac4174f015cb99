package admin

import (
	"errors"
	"net/http"

	"lucr-news/internal/domain/entity"
	"lucr-news/internal/handler/http/respond"
	crawljobUC "lucr-news/internal/usecase/crawljob"
)

type JobListHandler struct{ Svc *crawljobUC.Service }

// ServeHTTP lists crawl jobs in one lifecycle state, newest first.
// The status query parameter is required: PENDING, RUNNING, COMPLETED or FAILED.
func (h JobListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("status query parameter is required"))
		return
	}

	jobs, err := h.Svc.ListByStatus(r.Context(), entity.CrawlJobStatus(status))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, crawljobUC.ErrInvalidStatus) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCrawlJobDTOs(jobs))
}
