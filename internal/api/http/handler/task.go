package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// TaskService defines owner-scoped task operations.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params model.NewTask) (model.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, status *model.TaskStatus) ([]model.Task, error)
	Get(ctx context.Context, ownerID uuid.UUID, id int64) (model.Task, error)
	Update(ctx context.Context, ownerID uuid.UUID, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
}

// Task handles HTTP endpoints for tasks. Every route requires an authenticated user.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Task) userID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.UserContext())
	if !ok {
		h.logger.Error("Task handler: user id missing from context",
			"path", c.Path())
		return uuid.Nil, handleError(model.ErrUnauthenticated)
	}
	return userID, nil
}

func taskID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, handleError(fmt.Errorf("%w: invalid task id %q", model.ErrValidation, c.Params("id")))
	}
	return id, nil
}

func (h *Task) Create(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(invalidBody())
	}
	if err := validateRequest(req); err != nil {
		return handleError(err)
	}

	params := model.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Priority != nil {
		p, err := model.ParseTaskPriority(*req.Priority)
		if err != nil {
			return handleError(err)
		}
		params.Priority = &p
	}

	task, err := h.taskService.Create(c.UserContext(), userID, params)
	if err != nil {
		return handleError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(newTaskResponse(task))
}

// List returns the caller's tasks, optionally filtered by the status query parameter.
func (h *Task) List(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	var status *model.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s, err := model.ParseTaskStatus(raw)
		if err != nil {
			return handleError(err)
		}
		status = &s
	}

	tasks, err := h.taskService.List(c.UserContext(), userID, status)
	if err != nil {
		return handleError(err)
	}

	resp := TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, newTaskResponse(t))
	}

	return c.JSON(resp)
}

func (h *Task) Get(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.UserContext(), userID, id)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(newTaskResponse(task))
}

func (h *Task) Update(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(invalidBody())
	}
	if err := validateRequest(req); err != nil {
		return handleError(err)
	}

	patch, err := req.toPatch()
	if err != nil {
		return handleError(err)
	}

	task, err := h.taskService.Update(c.UserContext(), userID, id, patch)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(newTaskResponse(task))
}

func (h *Task) Delete(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.UserContext(), userID, id); err != nil {
		return handleError(err)
	}

	return c.JSON(DeleteResponse{Success: true})
}
