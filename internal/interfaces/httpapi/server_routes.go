package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerAdvisorRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /watchdog/{teamID}", handler.Watchdog)
	mux.HandleFunc("GET /shame/{teamID}", handler.Shame)
	mux.HandleFunc("GET /triple-captain/{teamID}", handler.TripleCaptain)
	mux.HandleFunc("GET /verify/{teamID}", handler.VerifyTeam)
	mux.HandleFunc("GET /team-info/{teamID}", handler.TeamInfo)
	mux.HandleFunc("GET /status/{teamID}", handler.Status)
}

func registerItemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /items", handler.ListItems)
	mux.HandleFunc("POST /items", handler.CreateItem)
	mux.HandleFunc("GET /items/{itemID}", handler.GetItem)
	mux.HandleFunc("DELETE /items/{itemID}", handler.DeleteItem)
}
