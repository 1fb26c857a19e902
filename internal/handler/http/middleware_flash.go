package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/gorilla/sessions"
)

// Flash makes the cookie session store available to [web.AddFlash] and
// [web.Flashes].
func (h *Handler) Flash(store sessions.Store) web.Middleware {
	name := h.cfg.Session.Name

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(web.WithFlashStore(r.Context(), store, name)))
		})
	}
}
