package bug

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// BugWithComments is a bug together with its full comment thread,
// oldest comment first.
type BugWithComments struct {
	Bug      domain.Bug
	Comments []domain.Comment
}

// Get returns a bug and its comments.
func (s *Service) Get(ctx context.Context, bugID string) (*BugWithComments, error) {
	if strings.TrimSpace(bugID) == "" {
		return nil, domain.NewValidationError("bug_id", "required")
	}

	b, err := s.bugs.GetByID(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}

	comments, err := s.comments.ListByBug(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("list bug comments: %w", err)
	}

	return &BugWithComments{Bug: *b, Comments: comments}, nil
}
