package news

import (
	"net/http"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/handler/http/respond"
	newsUC "lucr-news/internal/usecase/news"
)

type PopularHandler struct {
	Svc           newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP returns news ordered by view count, most viewed first.
func (h PopularHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPopular(r.Context(), params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Data), result.Pagination))
}
