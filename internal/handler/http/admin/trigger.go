package admin

import (
	"errors"
	"net/http"
	"strconv"

	httpmetrics "lucr-news/internal/handler/http"
	"lucr-news/internal/handler/http/respond"
	crawljobUC "lucr-news/internal/usecase/crawljob"
)

type TriggerHandler struct{ Svc *crawljobUC.Service }

// ServeHTTP starts a new crawl. The job is created in the PENDING state and
// a request message is published for the external crawler. Responds 409 when
// a job is already pending or running.
// Optional query parameter max_articles overrides the crawl size.
func (h TriggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	maxArticles := 0
	if raw := r.URL.Query().Get("max_articles"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("max_articles must be a positive integer"))
			return
		}
		maxArticles = val
	}

	job, err := h.Svc.Trigger(r.Context(), maxArticles)
	if err != nil {
		if errors.Is(err, crawljobUC.ErrJobAlreadyRunning) {
			httpmetrics.RecordCrawlTriggered(false)
			// an expected business outcome; the caller must see which job
			// blocked the trigger, not a generic failure
			respond.SafeErrorV2(w, http.StatusConflict,
				respond.NewAppError(http.StatusConflict, err.Error(), nil))
			return
		}
		// publish and storage failures carry broker/db detail that must not
		// reach the caller
		respond.SafeErrorV2(w, http.StatusInternalServerError,
			respond.NewAppError(http.StatusInternalServerError, "failed to start crawl job", err))
		return
	}

	httpmetrics.RecordCrawlTriggered(true)
	respond.JSON(w, http.StatusCreated, toCrawlJobDTO(job))
}
