package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/clbanning/mxj/v2"
)

// Body size caps per parser.
const (
	jsonBodyLimit = 10_000 * 1024
	xmlBodyLimit  = 10_000 * 1024
	formBodyLimit = 100 * 1024
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"
)

type bodyParser struct {
	limit int64
	parse func(raw []byte) (any, error)
}

// ParseBody decodes JSON, XML and URL-encoded bodies and attaches the
// result through [web.WithBody]. The raw bytes stay readable from r.Body.
// Other content types, including multipart uploads, pass through
// untouched. A body over its cap fails with 413, a malformed one with 400.
func (h *Handler) ParseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		parser, ok := parserFor(mediaType)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, parser.limit))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				web.Fail(w, r, web.NewError(http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge, err))
				return
			}
			web.Fail(w, r, web.NewError(http.StatusBadRequest, app.MsgMalformedBody, err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		if len(bytes.TrimSpace(raw)) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		value, err := parser.parse(raw)
		if err != nil {
			web.Fail(w, r, web.NewError(http.StatusBadRequest, app.MsgMalformedBody, err))
			return
		}

		ctx := web.WithBody(r.Context(), &web.Body{
			ContentType: mediaType,
			Raw:         raw,
			Value:       value,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func parserFor(mediaType string) (bodyParser, bool) {
	switch {
	case mediaType == mediaTypeJSON || strings.HasSuffix(mediaType, "+json"):
		return bodyParser{limit: jsonBodyLimit, parse: parseJSON}, true
	case mediaType == "application/xml" || mediaType == "text/xml" || strings.HasSuffix(mediaType, "+xml"):
		return bodyParser{limit: xmlBodyLimit, parse: parseXML}, true
	case mediaType == mediaTypeForm:
		return bodyParser{limit: formBodyLimit, parse: parseForm}, true
	default:
		return bodyParser{}, false
	}
}

// parseJSON accepts only objects and arrays at the top level.
func parseJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, errors.New("json body must be an object or an array")
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, fmt.Errorf("error decoding json body: %w", err)
	}
	return value, nil
}

// parseXML converts the document into a map. Element and attribute names
// are lower-cased, text is trimmed, and only repeated elements become
// lists.
func parseXML(raw []byte) (any, error) {
	m, err := mxj.NewMapXml(raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding xml body: %w", err)
	}
	return normalizeXML(map[string]any(m)), nil
}

func normalizeXML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[strings.ToLower(k)] = normalizeXML(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalizeXML(child)
		}
		return out
	case string:
		return strings.TrimSpace(val)
	default:
		return val
	}
}

// parseForm decodes flat key/value pairs. Keys are taken literally, a key
// given once maps to a string and a repeated key to a list of strings.
func parseForm(raw []byte) (any, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("error decoding form body: %w", err)
	}
	return flattenValues(values), nil
}

func flattenValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			out[k] = v[0]
			continue
		}
		out[k] = v
	}
	return out
}
