package news

import (
	"log/slog"
	"net/http"

	"lucr-news/internal/common/pagination"
	"lucr-news/internal/handler/http/auth"
	newsUC "lucr-news/internal/usecase/news"
)

// Register registers all news HTTP handlers with the given mux.
// Read endpoints are public; mutating endpoints require authentication via
// the auth middleware.
func Register(mux *http.ServeMux, svc newsUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /news/popular", PopularHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /news/recent", RecentHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /news/search", SearchHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /news/exists", ExistsHandler{Svc: svc})
	mux.Handle("GET    /news/source/", SourceHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /news/", GetHandler{Svc: svc})

	mux.Handle("POST   /news", auth.Authz(CreateHandler{Svc: svc}))
	mux.Handle("POST   /news/", auth.Authz(ViewHandler{Svc: svc}))
	mux.Handle("PUT    /news/", auth.Authz(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /news/", auth.Authz(DeleteHandler{Svc: svc}))
}
