package bug

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type bugRepo interface {
	Create(ctx context.Context, b domain.Bug) (domain.Bug, error)
	GetByID(ctx context.Context, id string) (*domain.Bug, error)
	List(ctx context.Context, filter domain.BugFilter) ([]domain.Bug, error)
	UpdateStatus(ctx context.Context, id string, status domain.BugStatus, updatedAt time.Time) (domain.Bug, error)
	UpdateAssignment(ctx context.Context, id, assignedTo string, updatedAt time.Time) (domain.Bug, error)
	UpdateValidation(ctx context.Context, id string, validated bool, updatedAt time.Time) (domain.Bug, error)
}

type commentRepo interface {
	ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id string) (domain.Project, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type activityRepo interface {
	Create(ctx context.Context, e domain.ActivityEntry) (domain.ActivityEntry, error)
}

// Service provides bug lifecycle operations.
type Service struct {
	bugs     bugRepo
	comments commentRepo
	projects projectRepo
	users    userRepo
	activity activityRepo
	log      *slog.Logger
}

// NewService creates a new Bug service.
func NewService(
	log *slog.Logger,
	bugs bugRepo,
	comments commentRepo,
	projects projectRepo,
	users userRepo,
	activity activityRepo,
) *Service {
	return &Service{
		bugs:     bugs,
		comments: comments,
		projects: projects,
		users:    users,
		activity: activity,
		log:      log.With("service", "bug"),
	}
}

// recordActivity appends an audit entry for an already-applied bug
// mutation. The mutation stands even when the audit write fails; the
// failure is only logged.
func (s *Service) recordActivity(ctx context.Context, bugID string, action domain.ActivityAction, performedBy string, at time.Time) {
	_, err := s.activity.Create(ctx, domain.ActivityEntry{
		BugID:       bugID,
		Action:      action,
		PerformedBy: performedBy,
		Timestamp:   at,
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity entry not recorded",
			slog.String("bug_id", bugID),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
