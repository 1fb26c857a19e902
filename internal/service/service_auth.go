package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/internal/token"
	"github.com/MKhiriev/go-web-scaffold/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService. Users come
// from the configuration as login to bcrypt hash pairs.
type authService struct {
	// users maps logins to bcrypt password hashes.
	users map[string]string

	// tokens signs the issued tokens.
	tokens *token.Manager

	logger *logger.Logger
}

// NewAuthService constructs an AuthService checking passwords against
// users and signing tokens with tokens.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users map[string]string, tokens *token.Manager, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates a configured user.
//
// Returns the user or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrNoUserWasFound if the login is not configured.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, ok := a.users[req.Login]
	if !ok {
		log.Error().Str("login", req.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("%w: %s", ErrNoUserWasFound, req.Login)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Str("login", req.Login).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("error comparing password hash of %s: %w", req.Login, err)
	}

	return models.User{Login: req.Login}, nil
}

// CreateToken issues a signed token carrying user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	signed, err := a.tokens.Create(user)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return signed, nil
}
