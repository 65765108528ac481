package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// ListByBug returns a bug's comment thread, oldest first. The bug must
// exist.
func (s *Service) ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error) {
	if strings.TrimSpace(bugID) == "" {
		return nil, domain.NewValidationError("bug_id", "required")
	}

	if _, err := s.bugs.GetByID(ctx, bugID); err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}

	comments, err := s.comments.ListByBug(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
