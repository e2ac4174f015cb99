package admin

import (
	"net/http"

	"lucr-news/internal/handler/http/auth"
	crawljobUC "lucr-news/internal/usecase/crawljob"
)

// Register registers the crawl admin handlers with the given mux.
// Every admin endpoint requires an admin JWT.
func Register(mux *http.ServeMux, svc *crawljobUC.Service) {
	mux.Handle("POST   /admin/crawl/trigger", auth.Authz(TriggerHandler{Svc: svc}))
	mux.Handle("GET    /admin/crawl/jobs", auth.Authz(JobListHandler{Svc: svc}))
	mux.Handle("GET    /admin/crawl/jobs/", auth.Authz(JobGetHandler{Svc: svc}))
}
