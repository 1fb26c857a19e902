package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

const staticIndexFile = "index.html"

// Static returns a stage serving files below dir. GET and HEAD requests for
// an existing file are answered; directories are served through their
// index.html; everything else, including dotfiles, falls through to the
// next stage so a later static directory or a route can answer.
func (h *Handler) Static(dir string) web.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name, ok := staticFile(dir, r.URL.Path)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			f, err := os.Open(name)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				web.Fail(w, r, err)
				return
			}

			http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		})
	}
}

// staticFile maps a URL path onto a regular file below dir.
func staticFile(dir, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	for _, segment := range strings.Split(clean, "/") {
		if strings.HasPrefix(segment, ".") {
			return "", false
		}
	}

	name := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(name)
	if err != nil {
		return "", false
	}

	if info.IsDir() {
		name = filepath.Join(name, staticIndexFile)
		if info, err = os.Stat(name); err != nil || info.IsDir() {
			return "", false
		}
	}

	return name, true
}
