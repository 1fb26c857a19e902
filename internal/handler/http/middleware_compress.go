package http

import (
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip/deflate level used for responses.
const compressionLevel = 5

// Compress returns the response compression stage. Text, JSON, JavaScript,
// XML feed and SVG responses are compressed when the client accepts gzip or
// deflate.
func (h *Handler) Compress() web.Middleware {
	return middleware.Compress(compressionLevel)
}
