package bug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/pkg/ctxutil"
)

// Create reports a new bug. The referenced project must exist; the
// reporter is the authenticated actor. New bugs start Open, unvalidated
// and unassigned.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Bug, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("project %s: %w", input.ProjectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("check project: %w", err)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.BugPriorityMedium
	}
	severity := input.Severity
	if severity == "" {
		severity = domain.BugSeverityMinor
	}

	now := time.Now().UTC()
	created, err := s.bugs.Create(ctx, domain.Bug{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ProjectID:   input.ProjectID,
		ReportedBy:  actor.UserID,
		Status:      domain.BugStatusOpen,
		Priority:    priority,
		Severity:    severity,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create bug: %w", err)
	}

	s.log.InfoContext(ctx, "bug reported",
		slog.String("bug_id", created.ID),
		slog.String("project_id", created.ProjectID),
		slog.String("reported_by", actor.UserID),
	)

	return &created, nil
}
