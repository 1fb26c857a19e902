// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeView(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRegistry_HTML(t *testing.T) {
	dir := t.TempDir()
	writeView(t, dir, "index.html", `<h1>Hello {{ .Name }}</h1>`)

	engine, err := NewRegistry(nil).Engine("", Options{Dir: dir, Extension: ".html"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, engine.Render(rr, http.StatusOK, "index", map[string]string{"Name": "gopher"}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>Hello gopher</h1>")
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
}

func TestRegistry_MissingTemplate(t *testing.T) {
	engine, err := NewRegistry(nil).Engine(DefaultEngine, Options{Dir: t.TempDir()})
	require.NoError(t, err)

	err = engine.Render(httptest.NewRecorder(), http.StatusOK, "nope", nil)
	assert.Error(t, err)
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Engine("pug", Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = reg.Engine(DefaultEngine, Options{Dir: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, ErrViewsDirectory)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = reg.Engine(DefaultEngine, Options{Dir: file})
	assert.ErrorIs(t, err, ErrViewsDirectory)
}

type textEngine struct{ dir string }

func (e textEngine) Render(w http.ResponseWriter, status int, name string, data any) error {
	w.WriteHeader(status)
	_, err := w.Write([]byte(e.dir + "/" + name))
	return err
}

func TestRegistry_CustomEngine(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(map[string]Factory{
		"text": func(opts Options) (web.ViewEngine, error) { return textEngine{dir: opts.Dir}, nil },
	})

	engine, err := reg.Engine("text", Options{Dir: dir})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, engine.Render(rr, http.StatusAccepted, "page", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, dir+"/page", rr.Body.String())
}
