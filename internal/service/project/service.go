package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	GetByID(ctx context.Context, id string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// Service provides project operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}
