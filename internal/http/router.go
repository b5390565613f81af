package httpserver

import (
	"net/http"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/http/handlers"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	ReportHandlers *handlers.ReportHandlers
	HealthHandler  http.HandlerFunc
}

// NewRouter wires HTTP routes with middleware. CORS wraps the whole mux so
// preflight requests never reach the method guard.
func NewRouter(deps RouterDeps, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", method(http.MethodGet, deps.HealthHandler))

	authenticated := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, authMiddleware)
	}

	mux.Handle("/api/generate-pdf-report",
		method(http.MethodPost, authenticated(deps.ReportHandlers.GeneratePDF)))
	mux.Handle("/api/generate-excel-report",
		method(http.MethodPost, authenticated(deps.ReportHandlers.GenerateExcel)))

	return middleware.CORS(mux)
}

func method(expected string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
