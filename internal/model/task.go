package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines owner-scoped persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *TaskStatus) ([]Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, id int64, patch TaskPatch) (Task, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error)
}

// Task represents a stored task entity.
type Task struct {
	ID                int64
	OwnerID           uuid.UUID
	Title             string
	Description       *string
	Category          *string
	Priority          TaskPriority
	Status            TaskStatus
	SuggestedDeadline *time.Time
	ActualDeadline    *time.Time
	AIAnalyzed        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"

	// DefaultTaskPriority is assigned when a task is created without a priority.
	DefaultTaskPriority = TaskPriorityMedium
)

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"

	// DefaultTaskStatus is assigned to every new task.
	DefaultTaskStatus = TaskStatusTodo
)

// ParseTaskPriority converts s into a known priority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(strings.ToUpper(strings.TrimSpace(s))); p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
	}
}

// ParseTaskStatus converts s into a known status.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
}

// NewTask contains parameters to create a task.
type NewTask struct {
	Title       string
	Description *string
	Category    *string
	Priority    *TaskPriority
}

// TaskPatch is a sparse update: nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *TaskPriority
	Status      *TaskStatus

	// UpdatedAt is stamped by the service. Stores fall back to their own clock when it is zero.
	UpdatedAt time.Time
}

// IsEmpty reports whether the patch sets no task field. UpdatedAt alone does not count.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Priority == nil && p.Status == nil
}

// Apply returns t with every present field of p merged in and UpdatedAt set to now.
func (p TaskPatch) Apply(t Task, now time.Time) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = cloneString(p.Description)
	}
	if p.Category != nil {
		t.Category = cloneString(p.Category)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.UpdatedAt = now
	return t
}

func cloneString(s *string) *string {
	v := *s
	return &v
}
