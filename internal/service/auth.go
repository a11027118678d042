package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/raphaestudos2/locadoradestino/internal/repository"
)

// AuthService verifies back-office operators and issues session tokens.
// With a configured backend, accounts live in the remote admin_users table.
// In local-only mode a bootstrap account from the environment keeps the
// demo usable.
type AuthService struct {
	remote   repository.AdminRepository
	ready    Readiness
	secret   []byte
	tokenTTL time.Duration

	bootstrapEmail    string
	bootstrapPassword string
}

// NewAuthService creates a new AuthService.
func NewAuthService(remote repository.AdminRepository, ready Readiness, secret string, tokenTTL time.Duration, bootstrapEmail, bootstrapPassword string) *AuthService {
	return &AuthService{
		remote:            remote,
		ready:             ready,
		secret:            []byte(secret),
		tokenTTL:          tokenTTL,
		bootstrapEmail:    bootstrapEmail,
		bootstrapPassword: bootstrapPassword,
	}
}

// SessionClaims is the JWT payload of an operator session.
type SessionClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (s *AuthService) remoteReady(ctx context.Context) bool {
	return s.remote != nil && s.ready != nil && s.ready.Ready(ctx)
}

// Login verifies the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if s.remoteReady(ctx) {
		admin, err := s.remote.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", ErrInvalidCredentials
			}
			zap.S().Warnw("remote login lookup failed, trying bootstrap account", "error", err)
		} else {
			if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
				return "", ErrInvalidCredentials
			}
			return s.issueToken(admin.Email, admin.Name)
		}
	}

	if s.bootstrapEmail == "" {
		return "", ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.bootstrapEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.bootstrapPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(s.bootstrapEmail, "Bootstrap admin")
}

func (s *AuthService) issueToken(email, name string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
