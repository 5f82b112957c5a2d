package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `id, user_id, title, description, category, priority, status,
			  suggested_deadline, actual_deadline, ai_analyzed, created_at, updated_at`

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

type taskRow struct {
	ID                int64      `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	Title             string     `db:"title"`
	Description       *string    `db:"description"`
	Category          *string    `db:"category"`
	Priority          string     `db:"priority"`
	Status            string     `db:"status"`
	SuggestedDeadline *time.Time `db:"suggested_deadline"`
	ActualDeadline    *time.Time `db:"actual_deadline"`
	AIAnalyzed        bool       `db:"ai_analyzed"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:                r.ID,
		OwnerID:           r.UserID,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		Priority:          model.TaskPriority(r.Priority),
		Status:            model.TaskStatus(r.Status),
		SuggestedDeadline: r.SuggestedDeadline,
		ActualDeadline:    r.ActualDeadline,
		AIAnalyzed:        r.AIAnalyzed,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (user_id, title, description, category, priority, status, ai_analyzed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + taskColumns

	var row taskRow
	err := r.db.GetContext(ctx, &row, query,
		task.OwnerID, task.Title, task.Description, task.Category,
		string(task.Priority), string(task.Status), task.AIAnalyzed,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return row.toModel(), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (model.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks WHERE id = $1 AND user_id = $2`

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return row.toModel(), nil
}

// ListByOwner returns ownerID's tasks newest first, optionally filtered by status.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *model.TaskStatus) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks WHERE user_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toModel())
	}

	return tasks, nil
}

// Update applies the present fields of patch in one statement and bumps updated_at.
func (r *TaskRepository) Update(ctx context.Context, ownerID uuid.UUID, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.IsEmpty() {
		return model.Task{}, fmt.Errorf("%w: no fields to update", model.ErrValidation)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Priority != nil {
		set("priority", string(*patch.Priority))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.UpdatedAt.IsZero() {
		sets = append(sets, "updated_at = now()")
	} else {
		set("updated_at", patch.UpdatedAt)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE tasks SET %s
			  WHERE id = $%d AND user_id = $%d
			  RETURNING %s`, strings.Join(sets, ", "), len(args)-1, len(args), taskColumns)

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return row.toModel(), nil
}

// Delete removes the task and reports whether a row matched.
func (r *TaskRepository) Delete(ctx context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
