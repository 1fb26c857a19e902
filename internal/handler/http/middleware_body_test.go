package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBody records the parsed body and the re-readable raw body.
func captureBody(body **web.Body, raw *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*body = web.BodyOf(r)
		b, _ := io.ReadAll(r.Body)
		*raw = string(b)
	})
}

func TestParseBody_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantValue   any
		wantNoBody  bool
	}{
		{
			name:        "json object",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"gopher","n":2}`,
			wantStatus:  http.StatusOK,
			wantValue:   map[string]any{"name": "gopher", "n": float64(2)},
		},
		{
			name:        "json array",
			contentType: "application/json",
			body:        `[1,2]`,
			wantStatus:  http.StatusOK,
			wantValue:   []any{float64(1), float64(2)},
		},
		{
			name:        "vendor json",
			contentType: "application/vnd.api+json",
			body:        `{"a":true}`,
			wantStatus:  http.StatusOK,
			wantValue:   map[string]any{"a": true},
		},
		{
			name:        "json scalar is rejected",
			contentType: "application/json",
			body:        `"just a string"`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "xml is normalized",
			contentType: "application/xml",
			body:        "<User><Name>  Gopher </Name><Tag>a</Tag><Tag>b</Tag></User>",
			wantStatus:  http.StatusOK,
			wantValue: map[string]any{
				"user": map[string]any{
					"name": "Gopher",
					"tag":  []any{"a", "b"},
				},
			},
		},
		{
			name:        "single xml child is not an array",
			contentType: "text/xml",
			body:        "<user><tag>a</tag></user>",
			wantStatus:  http.StatusOK,
			wantValue:   map[string]any{"user": map[string]any{"tag": "a"}},
		},
		{
			name:        "malformed xml",
			contentType: "application/xml",
			body:        "<user><name>",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "urlencoded flat keys",
			contentType: "application/x-www-form-urlencoded",
			body:        "login=ann&tag=a&tag=b&user[name]=x",
			wantStatus:  http.StatusOK,
			wantValue: map[string]any{
				"login":      "ann",
				"tag":        []string{"a", "b"},
				"user[name]": "x",
			},
		},
		{
			name:        "urlencoded over cap",
			contentType: "application/x-www-form-urlencoded",
			body:        "a=" + strings.Repeat("x", formBodyLimit),
			wantStatus:  http.StatusRequestEntityTooLarge,
		},
		{
			name:        "empty json body",
			contentType: "application/json",
			body:        "",
			wantStatus:  http.StatusOK,
			wantNoBody:  true,
		},
		{
			name:        "unknown type passes through",
			contentType: "text/plain",
			body:        "hello",
			wantStatus:  http.StatusOK,
			wantNoBody:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var got *web.Body
			var raw string
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			rr := h.serve(h.ParseBody, captureBody(&got, &raw), req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Nil(t, got)
				assert.Contains(t, h.errors.String(), `"status":`)
				return
			}

			assert.Equal(t, tt.body, raw, "raw body must stay readable")
			if tt.wantNoBody {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, []byte(tt.body), got.Raw)
		})
	}
}

func TestParseBody_JSONCap(t *testing.T) {
	h := newTestHandler()

	var got *web.Body
	var raw string
	big := `{"a":"` + strings.Repeat("x", jsonBodyLimit) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")

	rr := h.serve(h.ParseBody, captureBody(&got, &raw), req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"code":413,"msg":"request entity too large"}`, rr.Body.String())
}

func TestParseBody_MultipartPassesThrough(t *testing.T) {
	h := newTestHandler()

	var read string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		read = string(b)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("--x--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	rr := h.serve(h.ParseBody, next, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "--x--", read)
}
