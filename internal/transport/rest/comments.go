package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
	"github.com/heartmarshall/bugtrackr-backend/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error)
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comments")}
}

type createCommentRequest struct {
	BugID   string `json:"bugId"`
	Message string `json:"message"`
}

// Create handles POST /api/comments. Creating a comment also advances
// the parent bug's updatedAt; the two writes succeed or are rolled back
// together.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), comment.CreateInput{
		BugID:   req.BugID,
		Message: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(*created))
}

// ListByBug handles GET /api/comments/bug/{id}, oldest comment first.
func (h *CommentHandler) ListByBug(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListByBug(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponses(comments))
}
