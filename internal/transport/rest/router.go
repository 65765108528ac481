package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Bugs     *BugHandler
	Comments *CommentHandler
	Projects *ProjectHandler
	Users    *UserHandler
	Health   *HealthHandler
}

// NewRouter mounts all REST routes on a fresh mux. Middleware is applied
// by the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/token", h.Auth.IssueToken)

	mux.HandleFunc("POST /api/bugs", h.Bugs.Create)
	mux.HandleFunc("GET /api/bugs", h.Bugs.List)
	mux.HandleFunc("GET /api/bugs/{id}", h.Bugs.Get)
	mux.HandleFunc("PATCH /api/bugs/{id}/status", h.Bugs.UpdateStatus)
	mux.HandleFunc("PATCH /api/bugs/{id}/assign", h.Bugs.Assign)
	mux.HandleFunc("PATCH /api/bugs/{id}/validate", h.Bugs.Validate)
	mux.HandleFunc("GET /api/bugs/{id}/activity", h.Bugs.Activity)

	mux.HandleFunc("POST /api/comments", h.Comments.Create)
	mux.HandleFunc("GET /api/comments/bug/{id}", h.Comments.ListByBug)

	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects", h.Projects.Create)
	mux.HandleFunc("GET /api/projects/{id}", h.Projects.Get)

	mux.HandleFunc("GET /api/users", h.Users.List)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /{$}", h.Health.Root)

	return mux
}
