package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// Views makes engine available to handlers through [web.Render].
func (h *Handler) Views(engine web.ViewEngine) web.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(web.WithViewEngine(r.Context(), engine)))
		})
	}
}
