package api

import "net/http"

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("/api/dashboard", a.DashboardHandler)
	mux.HandleFunc("/api/search", a.SearchHandler)
	mux.HandleFunc("/api/match-resume", a.MatchResumeHandler)
	mux.HandleFunc("/api/chat", a.ChatHandler)

	return mux
}
