package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/tasktracker-server/internal/api/http/context"
	"github.com/dtroode/tasktracker-server/internal/mocks"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

func newTaskApp(t *testing.T, userID uuid.UUID) (*mocks.TaskService, func(method, target, body string) (int, []byte)) {
	svc := mocks.NewTaskService(t)
	h := NewTask(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())

	app := newTestApp()
	tasks := app.Group("/tasks")
	if userID != uuid.Nil {
		tasks.Use(withUser(userID))
	}
	tasks.Post("/", h.Create)
	tasks.Get("/", h.List)
	tasks.Get("/:id", h.Get)
	tasks.Patch("/:id", h.Update)
	tasks.Delete("/:id", h.Delete)

	return svc, func(method, target, body string) (int, []byte) {
		return doRequest(t, app, method, target, body)
	}
}

func sampleTask(owner uuid.UUID, id int64) model.Task {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	return model.Task{
		ID:        id,
		OwnerID:   owner,
		Title:     "Write report",
		Priority:  model.TaskPriorityMedium,
		Status:    model.TaskStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTask_Create(t *testing.T) {
	owner := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Create", mock.Anything, owner, mock.MatchedBy(func(p model.NewTask) bool {
			return p.Title == "Write report" && p.Priority != nil && *p.Priority == model.TaskPriorityHigh &&
				p.Category != nil && *p.Category == "work" && p.Description == nil
		})).Return(sampleTask(owner, 1), nil).Once()

		status, body := do(http.MethodPost, "/tasks", `{"title":"Write report","priority":"high","category":"work"}`)
		require.Equal(t, http.StatusCreated, status)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, owner, resp.UserID)
		assert.Equal(t, "TODO", resp.Status)
		assert.False(t, resp.AIAnalyzed)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(body, &raw))
		for _, key := range []string{"description", "category", "suggested_deadline", "actual_deadline", "created_at", "updated_at"} {
			assert.Contains(t, raw, key)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, do := newTaskApp(t, owner)

		status, body := do(http.MethodPost, "/tasks", `{"description":"x"}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, decodeError(t, body), "title is required")
	})

	t.Run("unknown priority", func(t *testing.T) {
		_, do := newTaskApp(t, owner)

		status, _ := do(http.MethodPost, "/tasks", `{"title":"t","priority":"URGENT"}`)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("no user in context", func(t *testing.T) {
		_, do := newTaskApp(t, uuid.Nil)

		status, _ := do(http.MethodPost, "/tasks", `{"title":"t"}`)
		require.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestTask_List(t *testing.T) {
	owner := uuid.New()

	t.Run("all", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("List", mock.Anything, owner, (*model.TaskStatus)(nil)).
			Return([]model.Task{sampleTask(owner, 2), sampleTask(owner, 1)}, nil).Once()

		status, body := do(http.MethodGet, "/tasks", "")
		require.Equal(t, http.StatusOK, status)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, 2, resp.Total)
		require.Len(t, resp.Tasks, 2)
		assert.Equal(t, int64(2), resp.Tasks[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("List", mock.Anything, owner, mock.MatchedBy(func(s *model.TaskStatus) bool {
			return s != nil && *s == model.TaskStatusInProgress
		})).Return([]model.Task{}, nil).Once()

		status, body := do(http.MethodGet, "/tasks?status=in_progress", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"tasks":[],"total":0}`, string(body))
	})

	t.Run("invalid status", func(t *testing.T) {
		_, do := newTaskApp(t, owner)

		status, _ := do(http.MethodGet, "/tasks?status=ARCHIVED", "")
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestTask_Get(t *testing.T) {
	owner := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Get", mock.Anything, owner, int64(7)).Return(sampleTask(owner, 7), nil).Once()

		status, _ := do(http.MethodGet, "/tasks/7", "")
		require.Equal(t, http.StatusOK, status)
	})

	t.Run("not found", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Get", mock.Anything, owner, int64(7)).Return(model.Task{}, model.ErrNotFound).Once()

		status, body := do(http.MethodGet, "/tasks/7", "")
		require.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "task not found", decodeError(t, body))
	})

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run("bad id "+id, func(t *testing.T) {
			_, do := newTaskApp(t, owner)

			status, _ := do(http.MethodGet, "/tasks/"+id, "")
			require.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestTask_Update(t *testing.T) {
	owner := uuid.New()

	t.Run("status only", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		done := model.TaskStatusDone
		svc.On("Update", mock.Anything, owner, int64(3), model.TaskPatch{Status: &done}).
			Return(sampleTask(owner, 3), nil).Once()

		status, _ := do(http.MethodPatch, "/tasks/3", `{"status":"DONE"}`)
		require.Equal(t, http.StatusOK, status)
	})

	t.Run("null counts as absent", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Update", mock.Anything, owner, int64(3), model.TaskPatch{}).
			Return(model.Task{}, fmt.Errorf("%w: no fields to update", model.ErrValidation)).Once()

		status, body := do(http.MethodPatch, "/tasks/3", `{"title":null,"unknown":1}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, decodeError(t, body), "no fields to update")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, do := newTaskApp(t, owner)

		status, _ := do(http.MethodPatch, "/tasks/3", `{"status":"LATER"}`)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("not found", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Update", mock.Anything, owner, int64(3), mock.Anything).Return(model.Task{}, model.ErrNotFound).Once()

		status, _ := do(http.MethodPatch, "/tasks/3", `{"title":"x"}`)
		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestTask_Delete(t *testing.T) {
	owner := uuid.New()

	t.Run("ok", func(t *testing.T) {
		svc, do := newTaskApp(t, owner)
		svc.On("Delete", mock.Anything, owner, int64(4)).Return(nil).Once()

		status, body := do(http.MethodDelete, "/tasks/4", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"success":true}`, string(body))
	})

	t.Run("bad id", func(t *testing.T) {
		_, do := newTaskApp(t, owner)

		status, _ := do(http.MethodDelete, "/tasks/x", "")
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestTask_UserIDMissingFromContext(t *testing.T) {
	svc := mocks.NewTaskService(t)
	cm := mocks.NewContextManager(t)
	cm.On("GetUserIDFromContext", mock.Anything).Return(uuid.Nil, false).Once()

	h := NewTask(svc, cm, testutil.MakeNoopLogger())
	app := newTestApp()
	app.Get("/tasks", h.List)

	status, body := doRequest(t, app, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthenticated", decodeError(t, body))
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestTask_UserIDFromContextManager(t *testing.T) {
	owner := uuid.New()
	svc := mocks.NewTaskService(t)
	cm := mocks.NewContextManager(t)
	cm.On("GetUserIDFromContext", mock.Anything).Return(owner, true).Once()
	svc.On("Get", mock.Anything, owner, int64(5)).Return(sampleTask(owner, 5), nil).Once()

	h := NewTask(svc, cm, testutil.MakeNoopLogger())
	app := newTestApp()
	app.Get("/tasks/:id", h.Get)

	status, body := doRequest(t, app, http.MethodGet, "/tasks/5", "")
	require.Equal(t, http.StatusOK, status, string(body))

	var got TaskResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, owner, got.UserID)
}
