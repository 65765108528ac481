package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type bugRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Bug, error)
	Touch(ctx context.Context, id string, updatedAt time.Time) error
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type sagaRunner interface {
	Run(ctx context.Context, s collection.Saga) (string, error)
}

// Service provides comment operations. Creating a comment is a
// two-entity write: the comment record plus the parent bug's updatedAt,
// coordinated through the saga runner since the store has no
// transactions.
type Service struct {
	comments commentRepo
	bugs     bugRepo
	users    userRepo
	saga     sagaRunner
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	bugs bugRepo,
	users userRepo,
	saga sagaRunner,
) *Service {
	return &Service{
		comments: comments,
		bugs:     bugs,
		users:    users,
		saga:     saga,
		log:      log.With("service", "comment"),
	}
}
