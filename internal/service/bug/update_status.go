package bug

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// UpdateStatus moves a bug to a new status. The transition is gated by
// the role policy against the bug's state re-read immediately before the
// write; the store itself is last-write-wins, so the re-read narrows but
// does not eliminate concurrent-update races.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Bug, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.bugs.GetByID(ctx, input.BugID)
	if err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}

	decision := domain.CanTransition(current.Status, input.Status, domain.UserRole(actor.Role), current.Validated)
	if !decision.Allowed {
		if decision.Reason == domain.DenyPreconditionNotMet {
			return nil, domain.NewValidationError("status", decision.Message)
		}
		return nil, fmt.Errorf("%s: %w", decision.Message, domain.ErrForbidden)
	}

	now := time.Now().UTC()
	updated, err := s.bugs.UpdateStatus(ctx, input.BugID, input.Status, now)
	if err != nil {
		return nil, fmt.Errorf("update bug status: %w", err)
	}

	s.recordActivity(ctx, updated.ID, domain.ActivityActionStatusChanged, actor.UserID, now)

	s.log.InfoContext(ctx, "bug status changed",
		slog.String("bug_id", updated.ID),
		slog.String("from", current.Status.String()),
		slog.String("to", updated.Status.String()),
		slog.String("performed_by", actor.UserID),
	)

	return &updated, nil
}
