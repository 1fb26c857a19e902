package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// WithErrorChain installs chain in the request context. Every later
// [web.Fail] call and every failing [web.HandlerFunc] deliver their error
// to it.
func (h *Handler) WithErrorChain(chain web.ErrorChain) web.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(web.WithErrorChain(r.Context(), chain)))
		})
	}
}
