package rest

import "net/http"

// Routes groups the handlers mounted by NewRouter. Metrics is optional.
type Routes struct {
	Advocates   *AdvocateHandler
	Health      *HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every endpoint on a fresh ServeMux. Advocate routes are
// mounted at the root and under /api.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc("GET "+prefix+"/advocates", rt.Advocates.List)
		mux.HandleFunc("GET "+prefix+"/advocates/search", rt.Advocates.Search)
	}

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	if rt.Metrics != nil {
		path := rt.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, rt.Metrics)
	}

	return mux
}
