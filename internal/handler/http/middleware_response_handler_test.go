// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "no call defaults to 200", statusCodes: nil, expectedStatus: http.StatusOK},
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "404 Not Found", statusCodes: []int{http.StatusNotFound}, expectedStatus: http.StatusNotFound},
		{name: "double call, first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, expectedStatus: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.Status())
			assert.Equal(t, len(tt.statusCodes) > 0, w.Written())
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.True(t, w.Written())
	assert.Equal(t, "hello world", rr.Body.String())
}

func TestResponseWriter_FlushAndUnwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Flush()

	assert.True(t, rr.Flushed)
	assert.True(t, w.Written())
	assert.Same(t, rr, w.Unwrap())
}
