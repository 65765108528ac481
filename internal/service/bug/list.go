package bug

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// List returns bugs matching the given filters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Bug, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	bugs, err := s.bugs.List(ctx, domain.BugFilter{
		ProjectID:  input.ProjectID,
		Status:     input.Status,
		AssignedTo: input.AssignedTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list bugs: %w", err)
	}
	return bugs, nil
}
