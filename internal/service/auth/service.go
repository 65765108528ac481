// Package auth issues access tokens for the predefined users. There is
// no registration and no password: accounts are provisioned directly in
// the collection DB and a token is requested by email.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID, role string) (string, error)
}

// TokenResult is an issued access token with its expiry metadata.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	User        domain.User
}

// Service provides token issuance.
type Service struct {
	users     userRepo
	jwt       jwtManager
	accessTTL time.Duration
	log       *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager, accessTTL time.Duration) *Service {
	return &Service{
		users:     users,
		jwt:       jwt,
		accessTTL: accessTTL,
		log:       log.With("service", "auth"),
	}
}

// IssueToken looks up the predefined user by email and returns a signed
// access token carrying the user's id and role. An unknown email is
// reported as unauthorized, not as not-found, so the endpoint does not
// leak which accounts exist.
func (s *Service) IssueToken(ctx context.Context, email string) (*TokenResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown account: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "access token issued",
		slog.String("user_id", u.ID),
		slog.String("role", u.Role.String()),
	)

	return &TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.accessTTL.Seconds()),
		User:        u,
	}, nil
}
