package bug

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// Validate marks a bug as validated, the precondition for closing it.
// Restricted to the tester and admin roles.
func (s *Service) Validate(ctx context.Context, input ValidateInput) (*domain.Bug, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !domain.CanValidate(domain.UserRole(actor.Role)) {
		return nil, fmt.Errorf("only testers can validate bugs: %w", domain.ErrForbidden)
	}

	// Existence check first so a missing bug reads as not-found, not as
	// an update failure.
	if _, err := s.bugs.GetByID(ctx, input.BugID); err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}

	now := time.Now().UTC()
	updated, err := s.bugs.UpdateValidation(ctx, input.BugID, true, now)
	if err != nil {
		return nil, fmt.Errorf("validate bug: %w", err)
	}

	s.recordActivity(ctx, updated.ID, domain.ActivityActionBugValidated, actor.UserID, now)

	s.log.InfoContext(ctx, "bug validated",
		slog.String("bug_id", updated.ID),
		slog.String("performed_by", actor.UserID),
	)

	return &updated, nil
}
