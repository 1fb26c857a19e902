package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/unrolled/secure"
)

// stsSeconds is the Strict-Transport-Security max-age (180 days).
const stsSeconds = 180 * 24 * 60 * 60

// extraSecurityHeaders are set on every response next to the headers
// produced by unrolled/secure.
var extraSecurityHeaders = map[string]string{
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-Permitted-Cross-Domain-Policies": "none",
}

// Security returns the security headers stage.
func (h *Handler) Security() web.Middleware {
	sec := secure.New(secure.Options{
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		BrowserXssFilter:        true,
		CustomBrowserXssValue:   "0",
		ReferrerPolicy:          "no-referrer",
		STSSeconds:              stsSeconds,
		STSIncludeSubdomains:    true,
		IsDevelopment:           h.cfg.IsDevelopment(),
	})

	return func(next http.Handler) http.Handler {
		secured := sec.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range extraSecurityHeaders {
				w.Header().Set(name, value)
			}
			secured.ServeHTTP(w, r)
		})
	}
}
