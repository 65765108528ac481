package comment

import (
	"strings"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// CreateInput holds the parameters for commenting on a bug.
type CreateInput struct {
	BugID   string
	Message string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BugID) == "" {
		errs = append(errs, domain.FieldError{Field: "bug_id", Message: "required"})
	}

	message := strings.TrimSpace(i.Message)
	if message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(message) > 5000 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
