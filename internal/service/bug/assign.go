package bug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// Assign sets a bug's assignee. The assignee must be an existing user;
// the store enforces no referential integrity, so the check happens here.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*domain.Bug, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.AssigneeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("assignee %s: %w", input.AssigneeID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("check assignee: %w", err)
	}

	now := time.Now().UTC()
	updated, err := s.bugs.UpdateAssignment(ctx, input.BugID, input.AssigneeID, now)
	if err != nil {
		return nil, fmt.Errorf("assign bug: %w", err)
	}

	s.recordActivity(ctx, updated.ID, domain.ActivityActionBugAssigned, actor.UserID, now)

	s.log.InfoContext(ctx, "bug assigned",
		slog.String("bug_id", updated.ID),
		slog.String("assigned_to", input.AssigneeID),
		slog.String("performed_by", actor.UserID),
	)

	return &updated, nil
}
