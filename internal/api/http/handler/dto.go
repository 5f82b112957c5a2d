package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// CredentialsRequest is the body of register and login requests.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func newAuthResponse(res model.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: res.Token,
		TokenType:   "bearer",
		ExpiresAt:   res.ExpiresAt,
		User: UserResponse{
			ID:    res.User.ID,
			Email: res.User.Email,
		},
	}
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Priority    *string `json:"priority"`
}

// UpdateTaskRequest is a sparse patch. Omitted and null fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

func (r UpdateTaskRequest) toPatch() (model.TaskPatch, error) {
	patch := model.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
	if r.Priority != nil {
		p, err := model.ParseTaskPriority(*r.Priority)
		if err != nil {
			return model.TaskPatch{}, err
		}
		patch.Priority = &p
	}
	if r.Status != nil {
		s, err := model.ParseTaskStatus(*r.Status)
		if err != nil {
			return model.TaskPatch{}, err
		}
		patch.Status = &s
	}
	return patch, nil
}

type TaskResponse struct {
	ID                int64      `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Category          *string    `json:"category"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	SuggestedDeadline *time.Time `json:"suggested_deadline"`
	ActualDeadline    *time.Time `json:"actual_deadline"`
	AIAnalyzed        bool       `json:"ai_analyzed"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func newTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		UserID:            t.OwnerID,
		Title:             t.Title,
		Description:       t.Description,
		Category:          t.Category,
		Priority:          string(t.Priority),
		Status:            string(t.Status),
		SuggestedDeadline: t.SuggestedDeadline,
		ActualDeadline:    t.ActualDeadline,
		AIAnalyzed:        t.AIAnalyzed,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
