package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/logger"
)

// healthResponse is the body returned by the health endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheckHandler returns an HTTP handler reporting service health as JSON.
//
//   - Liveness: with no dependency functions the handler returns 200 with
//     status "healthy".
//   - Readiness: each supplied function is executed with the request context;
//     if any returns an error the handler responds 503 with status
//     "unhealthy". Probe errors are logged, never echoed to the caller.
func HealthCheckHandler(service string, log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		for _, f := range funcs {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "health check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(healthResponse{Status: "unhealthy", Service: service})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "healthy", Service: service})
	}
}
