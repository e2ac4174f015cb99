package news

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/handler/http/respond"
	"lucr-news/internal/repository"
	newsUC "lucr-news/internal/usecase/news"
)

type SearchHandler struct {
	Svc           newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP searches news by keyword with optional filters.
// Query parameters:
//   - keyword: space-separated keywords, AND logic (required)
//   - source: exact source filter
//   - min_views: minimum view count filter
//   - from, to: published_at range in RFC3339
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	keyword := strings.TrimSpace(query.Get("keyword"))
	if keyword == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("keyword query parameter is required"))
		return
	}
	keywords := strings.Fields(keyword)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters, err := parseSearchFilters(query)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.SearchWithFilters(r.Context(), keywords, filters, params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Data), result.Pagination))
}

func parseSearchFilters(query map[string][]string) (repository.NewsSearchFilters, error) {
	var filters repository.NewsSearchFilters

	get := func(key string) string {
		if vals := query[key]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	if source := get("source"); source != "" {
		filters.Source = &source
	}
	if minViews := get("min_views"); minViews != "" {
		val, err := strconv.Atoi(minViews)
		if err != nil || val < 0 {
			return filters, errors.New("min_views must be a non-negative integer")
		}
		filters.MinViewCount = &val
	}
	if from := get("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return filters, errors.New("from must be in RFC3339 format")
		}
		filters.From = &parsed
	}
	if to := get("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return filters, errors.New("to must be in RFC3339 format")
		}
		filters.To = &parsed
	}

	return filters, nil
}
