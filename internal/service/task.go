package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Task implements owner-scoped task operations.
type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
	now       func() time.Time
}

// TaskOption configures a Task service.
type TaskOption func(*Task)

// WithClock sets the time source used for created_at and updated_at.
func WithClock(now func() time.Time) TaskOption {
	return func(s *Task) {
		s.now = now
	}
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger, opts ...TaskOption) *Task {
	s := &Task{
		taskStore: taskStore,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Task) Create(ctx context.Context, ownerID uuid.UUID, params model.NewTask) (model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", model.ErrValidation)
	}

	priority := model.DefaultTaskPriority
	if params.Priority != nil {
		p, err := model.ParseTaskPriority(string(*params.Priority))
		if err != nil {
			return model.Task{}, err
		}
		priority = p
	}

	now := s.now().UTC()
	task, err := s.taskStore.Create(ctx, model.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: params.Description,
		Category:    params.Category,
		Priority:    priority,
		Status:      model.DefaultTaskStatus,
		AIAnalyzed:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", ownerID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("Task service: task created",
		"user_id", ownerID,
		"task_id", task.ID)

	return task, nil
}

// List returns ownerID's tasks newest first. The result is never nil.
func (s *Task) List(ctx context.Context, ownerID uuid.UUID, status *model.TaskStatus) ([]model.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, ownerID, status)
	if err != nil {
		s.logger.Error("Task service: failed to list tasks",
			"user_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *Task) Get(ctx context.Context, ownerID uuid.UUID, id int64) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.ErrNotFound
		}
		s.logger.Error("Task service: failed to get task",
			"user_id", ownerID,
			"task_id", id,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *Task) Update(ctx context.Context, ownerID uuid.UUID, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.IsEmpty() {
		return model.Task{}, fmt.Errorf("%w: no fields to update", model.ErrValidation)
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Task{}, fmt.Errorf("%w: title must not be empty", model.ErrValidation)
		}
		patch.Title = &title
	}
	if patch.Priority != nil {
		p, err := model.ParseTaskPriority(string(*patch.Priority))
		if err != nil {
			return model.Task{}, err
		}
		patch.Priority = &p
	}
	if patch.Status != nil {
		st, err := model.ParseTaskStatus(string(*patch.Status))
		if err != nil {
			return model.Task{}, err
		}
		patch.Status = &st
	}

	patch.UpdatedAt = s.now().UTC()

	task, err := s.taskStore.Update(ctx, ownerID, id, patch)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Task{}, model.ErrNotFound
		}
		s.logger.Error("Task service: failed to update task",
			"user_id", ownerID,
			"task_id", id,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("Task service: task updated",
		"user_id", ownerID,
		"task_id", id)

	return task, nil
}

// Delete removes the task. Deleting a missing or foreign task still succeeds.
func (s *Task) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	deleted, err := s.taskStore.Delete(ctx, ownerID, id)
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"user_id", ownerID,
			"task_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if !deleted {
		s.logger.Debug("Task service: delete matched no task",
			"user_id", ownerID,
			"task_id", id)
		return nil
	}

	s.logger.Debug("Task service: task deleted",
		"user_id", ownerID,
		"task_id", id)

	return nil
}
