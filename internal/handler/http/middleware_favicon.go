package http

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

const (
	faviconPath   = "/favicon.ico"
	faviconMaxAge = 365 * 24 * time.Hour
)

// Favicon returns a stage answering /favicon.ico from memory. The icon is
// read once; a missing file is a startup error.
func (h *Handler) Favicon(path string) (web.Middleware, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading favicon: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("error reading favicon: %s is a directory", path)
	}

	icon, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading favicon: %w", err)
	}
	modTime := info.ModTime()
	cacheControl := fmt.Sprintf("public, max-age=%d", int(faviconMaxAge.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != faviconPath {
				next.ServeHTTP(w, r)
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead:
				w.Header().Set("Cache-Control", cacheControl)
				w.Header().Set("Content-Type", "image/x-icon")
				http.ServeContent(w, r, faviconPath, modTime, bytes.NewReader(icon))
			case http.MethodOptions:
				w.Header().Set("Allow", allowedFaviconMethods)
				w.WriteHeader(http.StatusOK)
			default:
				w.Header().Set("Allow", allowedFaviconMethods)
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		})
	}, nil
}

var allowedFaviconMethods = strings.Join([]string{http.MethodGet, http.MethodHead, http.MethodOptions}, ", ")
