// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/config"
)

type (
	configKey struct{}
	paramsKey struct{}
	bodyKey   struct{}
)

// WithConfig attaches the service configuration to ctx.
func WithConfig(ctx context.Context, cfg *config.StructuredConfig) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// Config returns the configuration attached to r, or nil outside the
// pipeline.
func Config(r *http.Request) *config.StructuredConfig {
	cfg, _ := r.Context().Value(configKey{}).(*config.StructuredConfig)
	return cfg
}

// Body is the parsed request body.
type Body struct {
	// ContentType is the media type without parameters.
	ContentType string
	// Raw holds the bytes read from the client.
	Raw []byte
	// Value is the decoded body: map[string]any for JSON objects, XML
	// documents and URL-encoded forms, or any other JSON value.
	Value any
}

// WithBody attaches a parsed body to ctx.
func WithBody(ctx context.Context, body *Body) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// BodyOf returns the parsed body of r, or nil when the body was empty or of
// a type the pipeline does not parse.
func BodyOf(r *http.Request) *Body {
	body, _ := r.Context().Value(bodyKey{}).(*Body)
	return body
}

// DecodeBody decodes the parsed body of r into v. JSON bodies are decoded
// from the raw bytes; XML and form bodies are decoded from their normalized
// map through a JSON round trip.
func DecodeBody(r *http.Request, v any) error {
	body := BodyOf(r)
	if body == nil {
		return NewError(http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
	}

	data := body.Raw
	if body.ContentType != "application/json" {
		var err error
		if data, err = json.Marshal(body.Value); err != nil {
			return fmt.Errorf("error re-encoding request body: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return NewError(http.StatusBadRequest, app.MsgMalformedBody, err)
	}
	return nil
}

// WithParams attaches merged request parameters to ctx.
func WithParams(ctx context.Context, params map[string]any) context.Context {
	return context.WithValue(ctx, paramsKey{}, params)
}

// Params returns query and body parameters of r merged into one map. Body
// keys override query keys. The result is never nil.
func Params(r *http.Request) map[string]any {
	params, _ := r.Context().Value(paramsKey{}).(map[string]any)
	if params == nil {
		return map[string]any{}
	}
	return params
}

// Param returns the parameter key as a string. Lists yield their first
// element and missing keys yield "".
func Param(r *http.Request, key string) string {
	switch v := Params(r)[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []any:
		if len(v) == 0 {
			return ""
		}
		return fmt.Sprint(v[0])
	default:
		return fmt.Sprint(v)
	}
}
