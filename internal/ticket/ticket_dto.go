package ticket

import "time"

type CreateTicketRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority"`
	AssignedToID string `json:"assigned_to_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// ListFilter carries the query-string filters of the ticket list endpoint.
// View is "assigned", "created", or empty for both sides.
type ListFilter struct {
	View   string
	Status string
	Page   int
	Limit  int
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	TicketID  string        `json:"ticket_id"`
	AuthorID  string        `json:"author_id"`
	Author    *UserResponse `json:"author,omitempty"`
	Body      string        `json:"body"`
	CreatedAt string        `json:"created_at"`
}

type TicketResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Priority     string            `json:"priority"`
	Status       string            `json:"status"`
	CreatedByID  string            `json:"created_by_id"`
	AssignedToID string            `json:"assigned_to_id"`
	CreatedBy    *UserResponse     `json:"created_by,omitempty"`
	AssignedTo   *UserResponse     `json:"assigned_to,omitempty"`
	Comments     []CommentResponse `json:"comments,omitempty"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

func mapUserToResponse(u *TicketUser) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Role:  u.Role,
	}
}

func mapCommentToResponse(c TicketComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		TicketID:  c.TicketID.String(),
		AuthorID:  c.AuthorID.String(),
		Author:    mapUserToResponse(c.Author),
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func mapToResponse(t Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		Priority:     t.Priority,
		Status:       t.Status,
		CreatedByID:  t.CreatedByID.String(),
		AssignedToID: t.AssignedToID.String(),
		CreatedBy:    mapUserToResponse(t.CreatedBy),
		AssignedTo:   mapUserToResponse(t.AssignedTo),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
	for _, c := range t.Comments {
		resp.Comments = append(resp.Comments, mapCommentToResponse(c))
	}
	return resp
}
