// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies stateless HS256 tokens carrying an
// arbitrary user payload.
//
// A token holds two claims: "user", the JSON encoding of the payload passed
// to [Manager.Create], and "iat", the issue time. Expiry is not stored in
// the token; it is decided at verification time as iat + expireIn, so the
// lifetime can be changed without reissuing tokens.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Fallbacks used when neither an option nor the configuration provides a
// value.
const (
	DefaultSecret   = "go-web-scaffold"
	DefaultExpireIn = 30 * 24 * time.Hour
)

var (
	// ErrAuthentication is wrapped by every verification failure.
	ErrAuthentication = errors.New("authentication failed")
	// ErrTokenExpired is wrapped together with ErrAuthentication when
	// iat + expireIn is not after the current time.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the claim set of an issued token.
type Claims struct {
	// User is the JSON encoding of the payload given to Create.
	User json.RawMessage `json:"user"`
	// IssuedAt is the time the token was created.
	IssuedAt *jwt.NumericDate `json:"iat"`
}

// Decode unmarshals the user payload into v.
func (c *Claims) Decode(v any) error {
	if err := json.Unmarshal(c.User, v); err != nil {
		return fmt.Errorf("error decoding token payload: %w", err)
	}
	return nil
}

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c *Claims) GetIssuer() (string, error)                   { return "", nil }
func (c *Claims) GetSubject() (string, error)                  { return "", nil }
func (c *Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// Option overrides a setting of a single Create or Verify call.
type Option func(*options)

type options struct {
	secret   string
	expireIn time.Duration
}

// WithSecret signs or verifies with secret instead of the configured one.
// An empty secret keeps the configured one.
func WithSecret(secret string) Option {
	return func(o *options) { o.secret = secret }
}

// WithExpireIn verifies with the given lifetime instead of the configured
// one. Non-positive values keep the configured lifetime. Ignored by Create.
func WithExpireIn(d time.Duration) Option {
	return func(o *options) { o.expireIn = d }
}

// Manager creates and verifies tokens. It is safe for concurrent use.
type Manager struct {
	secret   string
	expireIn time.Duration
	now      func() time.Time
}

// NewManager returns a Manager using cfg as its defaults.
func NewManager(cfg config.Token) *Manager {
	return &Manager{
		secret:   cfg.Secret,
		expireIn: cfg.ExpireIn,
		now:      time.Now,
	}
}

// options resolves each setting on its own: a non-empty call option, then
// the configuration, then the package fallback.
func (m *Manager) options(opts []Option) options {
	var call options
	for _, opt := range opts {
		opt(&call)
	}

	o := options{secret: m.secret, expireIn: m.expireIn}
	if call.secret != "" {
		o.secret = call.secret
	}
	if call.expireIn > 0 {
		o.expireIn = call.expireIn
	}

	if o.secret == "" {
		o.secret = DefaultSecret
	}
	if o.expireIn <= 0 {
		o.expireIn = DefaultExpireIn
	}
	return o
}

// Create signs user into a new token.
func (m *Manager) Create(user any, opts ...Option) (string, error) {
	o := m.options(opts)

	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("error encoding token payload: %w", err)
	}

	claims := &Claims{
		User:     payload,
		IssuedAt: jwt.NewNumericDate(m.now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(o.secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and the expiry of tokenString and returns its
// claims.
func (m *Manager) Verify(tokenString string, opts ...Option) (*Claims, error) {
	o := m.options(opts)

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(o.secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	if claims.IssuedAt == nil {
		return nil, fmt.Errorf("%w: missing iat claim", ErrAuthentication)
	}

	if !claims.IssuedAt.Add(o.expireIn).After(m.now()) {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, ErrTokenExpired)
	}

	return claims, nil
}
