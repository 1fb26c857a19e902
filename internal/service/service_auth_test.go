package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/MKhiriev/go-web-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *token.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := token.NewManager(config.Token{Secret: "test-secret", ExpireIn: time.Hour})
	users := map[string]string{
		"alice": string(hash),
		"bob":   "not-a-bcrypt-hash",
	}
	return NewAuthService(users, tokens, logger.Nop()), tokens
}

func TestAuthService_Login_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LoginRequest
		want    models.User
		wantErr error
	}{
		{name: "valid credentials", req: models.LoginRequest{Login: "alice", Password: "secret"}, want: models.User{Login: "alice"}},
		{name: "empty login", req: models.LoginRequest{Password: "secret"}, wantErr: ErrInvalidDataProvided},
		{name: "empty password", req: models.LoginRequest{Login: "alice"}, wantErr: ErrInvalidDataProvided},
		{name: "unknown user", req: models.LoginRequest{Login: "carol", Password: "secret"}, wantErr: ErrNoUserWasFound},
		{name: "wrong password", req: models.LoginRequest{Login: "alice", Password: "nope"}, wantErr: ErrWrongPassword},
	}

	svc, _ := newTestAuthService(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Login: "bob", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_CreateToken(t *testing.T) {
	svc, tokens := newTestAuthService(t)

	signed, err := svc.CreateToken(context.Background(), models.User{Login: "alice"})
	require.NoError(t, err)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, claims.Decode(&user))
	assert.Equal(t, "alice", user.Login)
}
