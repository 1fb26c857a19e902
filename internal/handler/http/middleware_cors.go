package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/go-chi/cors"
)

// CORS returns the cross-origin stage. Any origin may call the service with
// the usual methods; preflight requests are answered without reaching the
// routes.
func (h *Handler) CORS() web.Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	})
}
