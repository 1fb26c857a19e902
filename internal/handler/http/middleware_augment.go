package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// Augment attaches the configuration and the merged request parameters.
// Query parameters come first; keys of an object body override them.
func (h *Handler) Augment(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := flattenValues(r.URL.Query())
		if body := web.BodyOf(r); body != nil {
			if fields, ok := body.Value.(map[string]any); ok {
				for k, v := range fields {
					params[k] = v
				}
			}
		}

		ctx := web.WithConfig(r.Context(), h.cfg)
		ctx = web.WithParams(ctx, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
