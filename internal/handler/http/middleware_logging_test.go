package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAccessLog_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		status       int
		wantLogged   bool
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:   "200 is not logged",
			env:    config.EnvDevelopment,
			status: http.StatusOK,
		},
		{
			name:   "302 is not logged",
			env:    config.EnvDevelopment,
			status: http.StatusFound,
		},
		{
			name:       "400 in development is verbose",
			env:        config.EnvDevelopment,
			status:     http.StatusBadRequest,
			wantLogged: true,
			wantContains: []string{
				`"method":"POST"`,
				`"uri":"/api/items?x=1"`,
				`"status":400`,
				`"remote":"192.0.2.1:1234"`,
				`"user_agent":"test-agent"`,
				`"size":`,
			},
		},
		{
			name:         "500 in production is concise",
			env:          config.EnvProduction,
			status:       http.StatusInternalServerError,
			wantLogged:   true,
			wantContains: []string{`"status":500`, `"method":"POST"`, `"duration":`},
			wantAbsent:   []string{`"remote"`, `"user_agent"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.App.Env = tt.env
			h := newTestHandlerWithConfig(cfg)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/items?x=1", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			req.Header.Set("User-Agent", "test-agent")
			rr := httptest.NewRecorder()

			h.AccessLog(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if !tt.wantLogged {
				assert.Empty(t, h.access.String())
				return
			}

			for _, s := range tt.wantContains {
				assert.Contains(t, h.access.String(), s)
			}
			for _, s := range tt.wantAbsent {
				assert.NotContains(t, h.access.String(), s)
			}
			assert.Empty(t, h.errors.String())
		})
	}
}
