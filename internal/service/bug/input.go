package bug

import (
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// CreateInput holds the parameters for reporting a new bug.
type CreateInput struct {
	Title       string
	Description string
	ProjectID   string
	Priority    domain.BugPriority
	Severity    domain.BugSeverity
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.ProjectID) == "" {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if i.Severity != "" && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "unknown severity"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the optional filters for listing bugs.
type ListInput struct {
	ProjectID  string
	Status     domain.BugStatus
	AssignedTo string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Status != "" && !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

// UpdateStatusInput holds the parameters for a status transition.
type UpdateStatusInput struct {
	BugID  string
	Status domain.BugStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.BugID) == "" {
		errs = append(errs, domain.FieldError{Field: "bug_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignInput holds the parameters for assigning a bug.
type AssignInput struct {
	BugID      string
	AssigneeID string
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.BugID) == "" {
		errs = append(errs, domain.FieldError{Field: "bug_id", Message: "required"})
	}
	if strings.TrimSpace(i.AssigneeID) == "" {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateInput holds the parameters for marking a bug validated.
type ValidateInput struct {
	BugID string
}

// Validate checks all fields and collects all errors.
func (i ValidateInput) Validate() error {
	if strings.TrimSpace(i.BugID) == "" {
		return domain.NewValidationError("bug_id", "required")
	}
	return nil
}
