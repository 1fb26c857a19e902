package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower-case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", wantToken: "abc"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrUnsupportedAuthorizationScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}

// ---- Authenticate ----

type authUser struct {
	Login string `json:"login"`
}

func TestAuthenticate_TableTest(t *testing.T) {
	tokens := token.NewManager(config.Token{Secret: "secret"})
	valid, err := tokens.Create(authUser{Login: "ann"})
	require.NoError(t, err)
	foreign, err := tokens.Create(authUser{Login: "eve"}, token.WithSecret("other"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     string
		header    string
		wantLogin string
	}{
		{name: "bearer header", header: "Bearer " + valid, wantLogin: "ann"},
		{name: "query parameter", query: "?token=" + valid, wantLogin: "ann"},
		{name: "query wins over header", query: "?token=" + valid, header: "Bearer " + foreign, wantLogin: "ann"},
		{name: "no token"},
		{name: "invalid signature", header: "Bearer " + foreign},
		{name: "garbage", header: "Bearer not-a-token"},
		{name: "wrong scheme", header: "Token " + valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotLogin string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if claims, ok := token.FromContext(r.Context()); ok {
					var u authUser
					require.NoError(t, claims.Decode(&u))
					gotLogin = u.Login
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/profile"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			Authenticate(tokens)(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.True(t, nextCalled, "next must always be called")
			assert.Equal(t, tt.wantLogin, gotLogin)
		})
	}
}

// ---- RequireUser ----

func TestRequireUser(t *testing.T) {
	h := newTestHandler()

	t.Run("anonymous request gets 401", func(t *testing.T) {
		rr := h.serve(RequireUser, okHandler("secret"), httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, float64(http.StatusUnauthorized), body["code"])
		assert.NotContains(t, rr.Body.String(), "secret")
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req = req.WithContext(token.NewContext(req.Context(), &token.Claims{User: []byte(`{}`)}))

		rr := h.serve(RequireUser, okHandler("secret"), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "secret", rr.Body.String())
	})
}
