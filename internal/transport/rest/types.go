package rest

import (
	"time"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

type bugResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProjectID   string    `json:"projectId"`
	ReportedBy  string    `json:"reportedBy"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Severity    string    `json:"severity"`
	Tags        []string  `json:"tags"`
	Validated   bool      `json:"validated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	BugID     string    `json:"bugId"`
	AuthorID  string    `json:"authorId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type activityResponse struct {
	ID          string    `json:"id"`
	BugID       string    `json:"bugId"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

func toBugResponse(b domain.Bug) bugResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return bugResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ProjectID:   b.ProjectID,
		ReportedBy:  b.ReportedBy,
		AssignedTo:  b.AssignedTo,
		Status:      string(b.Status),
		Priority:    string(b.Priority),
		Severity:    string(b.Severity),
		Tags:        tags,
		Validated:   b.Validated,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		BugID:     c.BugID,
		AuthorID:  c.AuthorID,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toActivityResponse(e domain.ActivityEntry) activityResponse {
	return activityResponse{
		ID:          e.ID,
		BugID:       e.BugID,
		Action:      string(e.Action),
		PerformedBy: e.PerformedBy,
		Timestamp:   e.Timestamp,
	}
}

func toCommentResponses(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}
