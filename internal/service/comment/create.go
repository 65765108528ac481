package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// Create attaches a comment to a bug and advances the bug's updatedAt in
// the same logical operation. Both writes share one timestamp, computed
// before the first write, so the comment's createdAt and the bug's
// updatedAt agree. If the bug touch fails the comment is deleted again;
// if that rollback also fails the error escalates to a fatal
// consistency report.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.bugs.GetByID(ctx, input.BugID); err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}
	if _, err := s.users.GetByID(ctx, actor.UserID); err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	now := time.Now().UTC()
	var created domain.Comment

	_, err := s.saga.Run(ctx, collection.Saga{
		Op:         "comment.create",
		Collection: "",
		Primary: func(ctx context.Context) (string, error) {
			c, err := s.comments.Create(ctx, domain.Comment{
				BugID:     input.BugID,
				AuthorID:  actor.UserID,
				Message:   strings.TrimSpace(input.Message),
				CreatedAt: now,
			})
			if err != nil {
				return "", err
			}
			created = c
			return c.ID, nil
		},
		Secondary: func(ctx context.Context, _ string) error {
			return s.bugs.Touch(ctx, input.BugID, now)
		},
		Compensate: func(ctx context.Context, commentID string) error {
			return s.comments.Delete(ctx, commentID)
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", created.ID),
		slog.String("bug_id", input.BugID),
		slog.String("author_id", actor.UserID),
	)

	return &created, nil
}
