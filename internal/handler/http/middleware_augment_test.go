package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment_MergesQueryAndBody(t *testing.T) {
	h := newTestHandler()

	var params map[string]any
	var cfg *config.StructuredConfig
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params = web.Params(r)
		cfg = web.Config(r)
	})

	req := httptest.NewRequest(http.MethodPost, "/items?page=2&name=query&tag=a&tag=b",
		strings.NewReader(`{"name":"body","count":3}`))
	req.Header.Set("Content-Type", "application/json")

	rr := h.serve(func(next http.Handler) http.Handler {
		return h.ParseBody(h.Augment(next))
	}, next, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, h.cfg, cfg)
	assert.Equal(t, map[string]any{
		"page":  "2",
		"name":  "body",
		"tag":   []string{"a", "b"},
		"count": float64(3),
	}, params)
}

func TestAugment_ArrayBodyIsNotMerged(t *testing.T) {
	h := newTestHandler()

	var params map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params = web.Params(r)
	})

	req := httptest.NewRequest(http.MethodPost, "/?a=1", strings.NewReader(`[1,2,3]`))
	req.Header.Set("Content-Type", "application/json")

	h.serve(func(next http.Handler) http.Handler {
		return h.ParseBody(h.Augment(next))
	}, next, req)

	assert.Equal(t, map[string]any{"a": "1"}, params)
}
