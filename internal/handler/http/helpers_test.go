package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/rs/zerolog"
)

// testHandler bundles a Handler with the buffers behind its log files.
type testHandler struct {
	*Handler
	access *bytes.Buffer
	errors *bytes.Buffer
}

func newTestHandler() *testHandler {
	return newTestHandlerWithConfig(config.Defaults())
}

func newTestHandlerWithConfig(cfg *config.StructuredConfig) *testHandler {
	access := &bytes.Buffer{}
	errs := &bytes.Buffer{}

	return &testHandler{
		Handler: &Handler{
			cfg:    cfg,
			logger: logger.Nop(),
			files: &logger.Files{
				Access: &logger.Logger{Logger: zerolog.New(access)},
				Error:  &logger.Logger{Logger: zerolog.New(errs)},
			},
		},
		access: access,
		errors: errs,
	}
}

// respondChain answers forwarded errors the way the server's terminal
// hook does.
func (h *testHandler) respondChain() web.ErrorChain {
	return web.ErrorChain{h.LogError, h.Respond}
}

// serve runs r through mw wrapped by the handler's error chain and
// returns the recorded response.
func (h *testHandler) serve(mw web.Middleware, next http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	web.Chain(next, h.WithErrorChain(h.respondChain()), mw).ServeHTTP(rr, r)
	return rr
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}
