package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// TokenQueryParam is the query parameter read before the Authorization
// header.
const TokenQueryParam = "token"

// Authenticate returns a middleware extracting a token from the "token"
// query parameter or an "Authorization: Bearer" header and verifying it
// with tokens.
//
// On success the claims are stored in the request context (see
// [token.FromContext]). Missing or invalid tokens never reject the
// request: the next handler is always called, and routes that need a user
// check for one with [RequireUser].
func Authenticate(tokens *token.Manager) web.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := tokenFromRequest(r)
			if err != nil {
				log.Debug().Err(err).Msg("no token extracted")
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				log.Debug().Err(err).Msg("token rejected")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(token.NewContext(r.Context(), claims)))
		})
	}
}

// RequireUser forwards a 401 error to the error chain unless [Authenticate]
// attached a user to the request.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := token.FromContext(r.Context()); !ok {
			web.Fail(w, r, web.NewError(http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUser))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request) (string, error) {
	if t := r.URL.Query().Get(TokenQueryParam); t != "" {
		return t, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("%w: header is empty", ErrInvalidAuthorizationHeader)
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value of the form "Bearer <token>". The scheme is
// matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrUnsupportedAuthorizationScheme
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
