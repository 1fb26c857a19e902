package http

import (
	"net/http"
	"time"
)

// AccessLog records responses with status >= 400 in the access log. In
// development each entry carries the full request detail; otherwise only
// method, uri, status and duration are kept.
func (h *Handler) AccessLog(next http.Handler) http.Handler {
	verbose := h.cfg.IsDevelopment()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.Status()
		if status < http.StatusBadRequest {
			return
		}

		entry := h.files.Access.Warn().
			Str("method", method).
			Str("uri", uri).
			Int("status", status).
			Dur("duration", time.Since(start))

		if verbose {
			entry = entry.
				Int("size", lw.size).
				Str("remote", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Str("referer", r.Referer()).
				Str("trace_id", w.Header().Get(traceIDHeader))
		}

		entry.Msg("request")
	})
}
