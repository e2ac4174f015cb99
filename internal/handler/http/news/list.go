package news

import (
	"log/slog"
	"net/http"
	"time"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/handler/http/requestid"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type ListHandler struct {
	Svc           newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns the news collection ordered by creation time, newest
// first, with pagination metadata.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	reqID := requestid.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		h.Logger.Warn("invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pagination.LogRequest(h.Logger, reqID, params)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		pagination.LogError(h.Logger, reqID, params, err, "database")
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	response := pagination.NewResponse(toDTOs(result.Data), result.Pagination)

	duration := time.Since(startTime)
	pagination.LogResponse(h.Logger, reqID, params, len(result.Data), duration, http.StatusOK)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	respond.JSON(w, http.StatusOK, response)
}
