package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/internal/service/bug"
)

// bugService defines the minimal interface needed by BugHandler.
type bugService interface {
	Create(ctx context.Context, input bug.CreateInput) (*domain.Bug, error)
	Get(ctx context.Context, bugID string) (*bug.BugWithComments, error)
	List(ctx context.Context, input bug.ListInput) ([]domain.Bug, error)
	UpdateStatus(ctx context.Context, input bug.UpdateStatusInput) (*domain.Bug, error)
	Assign(ctx context.Context, input bug.AssignInput) (*domain.Bug, error)
	Validate(ctx context.Context, input bug.ValidateInput) (*domain.Bug, error)
}

// activityService defines the minimal interface needed for the audit
// trail endpoint.
type activityService interface {
	ListByBug(ctx context.Context, bugID string) ([]domain.ActivityEntry, error)
}

// BugHandler serves bug REST endpoints.
type BugHandler struct {
	svc      bugService
	activity activityService
	log      *slog.Logger
}

// NewBugHandler creates a BugHandler.
func NewBugHandler(svc bugService, activity activityService, logger *slog.Logger) *BugHandler {
	return &BugHandler{svc: svc, activity: activity, log: logger.With("handler", "bugs")}
}

type createBugRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProjectID   string   `json:"projectId"`
	Priority    string   `json:"priority"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type assignRequest struct {
	AssigneeID string `json:"assigneeId"`
}

type bugWithCommentsResponse struct {
	Bug      bugResponse       `json:"bug"`
	Comments []commentResponse `json:"comments"`
}

// Create handles POST /api/bugs.
func (h *BugHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), bug.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Priority:    domain.BugPriority(req.Priority),
		Severity:    domain.BugSeverity(req.Severity),
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBugResponse(*created))
}

// List handles GET /api/bugs. Filters are optional query parameters:
// projectId, status, assignedTo.
func (h *BugHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	bugs, err := h.svc.List(r.Context(), bug.ListInput{
		ProjectID:  q.Get("projectId"),
		Status:     domain.BugStatus(q.Get("status")),
		AssignedTo: q.Get("assignedTo"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]bugResponse, 0, len(bugs))
	for _, b := range bugs {
		out = append(out, toBugResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/bugs/{id}. The response includes the bug's full
// comment thread, oldest comment first.
func (h *BugHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, bugWithCommentsResponse{
		Bug:      toBugResponse(result.Bug),
		Comments: toCommentResponses(result.Comments),
	})
}

// UpdateStatus handles PATCH /api/bugs/{id}/status.
func (h *BugHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), bug.UpdateStatusInput{
		BugID:  r.PathValue("id"),
		Status: domain.BugStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBugResponse(*updated))
}

// Assign handles PATCH /api/bugs/{id}/assign.
func (h *BugHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Assign(r.Context(), bug.AssignInput{
		BugID:      r.PathValue("id"),
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBugResponse(*updated))
}

// Validate handles PATCH /api/bugs/{id}/validate.
func (h *BugHandler) Validate(w http.ResponseWriter, r *http.Request) {
	updated, err := h.svc.Validate(r.Context(), bug.ValidateInput{
		BugID: r.PathValue("id"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBugResponse(*updated))
}

// Activity handles GET /api/bugs/{id}/activity, newest entry first.
func (h *BugHandler) Activity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.activity.ListByBug(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
