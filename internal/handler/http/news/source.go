package news

import (
	"net/http"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/handler/http/pathutil"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type SourceHandler struct {
	Svc           newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP returns news from one media source, newest publication first.
func (h SourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	source, err := pathutil.ExtractSegment(r.URL.Path, "/news/source/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListBySource(r.Context(), source, params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Data), result.Pagination))
}
