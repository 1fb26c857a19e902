package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorChain_Handle(t *testing.T) {
	boom := errors.New("boom")
	replaced := errors.New("replaced")

	var calls []string
	forward := func(name string) ErrorHook {
		return func(err error, w http.ResponseWriter, r *http.Request) error {
			calls = append(calls, name)
			return err
		}
	}

	chain := ErrorChain{
		forward("first"),
		func(err error, w http.ResponseWriter, r *http.Request) error {
			calls = append(calls, "replace")
			assert.ErrorIs(t, err, boom)
			return replaced
		},
		func(err error, w http.ResponseWriter, r *http.Request) error {
			calls = append(calls, "respond")
			assert.ErrorIs(t, err, replaced)
			w.WriteHeader(http.StatusTeapot)
			return nil
		},
		forward("never"),
	}

	rr := httptest.NewRecorder()
	err := chain.Handle(boom, rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "replace", "respond"}, calls)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestFail_WithoutChainWritesErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(rr, r, NewError(http.StatusBadRequest, "bad input", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, models.ErrorResponse{Code: http.StatusBadRequest, Msg: "bad input"}, body)
}

func TestFail_UsesChainFromContext(t *testing.T) {
	var got error
	chain := ErrorChain{func(err error, w http.ResponseWriter, r *http.Request) error {
		got = err
		w.WriteHeader(http.StatusAccepted)
		return nil
	}}

	boom := errors.New("boom")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(WithErrorChain(r.Context(), chain))
	rr := httptest.NewRecorder()

	Fail(rr, r, boom)

	assert.Equal(t, boom, got)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestFail_UnhandledErrorIsStillAnswered(t *testing.T) {
	chain := ErrorChain{func(err error, w http.ResponseWriter, r *http.Request) error {
		return err
	}}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(WithErrorChain(r.Context(), chain))
	rr := httptest.NewRecorder()

	Fail(rr, r, errors.New("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret detail")
}

func TestFail_NilErrorIsIgnored(t *testing.T) {
	rr := httptest.NewRecorder()

	Fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}
