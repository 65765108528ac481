package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

// UserHandler serves the read-only user REST endpoints. Accounts are
// provisioned directly in the collection DB; there is no create or
// update surface.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

// List handles GET /api/users. An optional "role" query parameter
// narrows the listing to a single role.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		users []domain.User
		err   error
	)

	if role := r.URL.Query().Get("role"); role != "" {
		users, err = h.svc.ListByRole(r.Context(), domain.UserRole(role))
	} else {
		users, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
