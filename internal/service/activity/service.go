// Package activity exposes the read side of the bug audit log.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type activityRepo interface {
	ListByBug(ctx context.Context, bugID string) ([]domain.ActivityEntry, error)
}

type bugRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Bug, error)
}

// Service provides activity log queries.
type Service struct {
	activity activityRepo
	bugs     bugRepo
	log      *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activity activityRepo, bugs bugRepo) *Service {
	return &Service{
		activity: activity,
		bugs:     bugs,
		log:      log.With("service", "activity"),
	}
}

// ListByBug returns a bug's audit history, newest first. The bug must
// exist.
func (s *Service) ListByBug(ctx context.Context, bugID string) ([]domain.ActivityEntry, error) {
	if strings.TrimSpace(bugID) == "" {
		return nil, domain.NewValidationError("bug_id", "required")
	}

	if _, err := s.bugs.GetByID(ctx, bugID); err != nil {
		return nil, fmt.Errorf("get bug: %w", err)
	}

	entries, err := s.activity.ListByBug(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("list bug activity: %w", err)
	}
	return entries, nil
}
