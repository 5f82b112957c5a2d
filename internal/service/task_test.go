package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasktracker-server/internal/mocks"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/repository/memory"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

func ptr[T any](v T) *T {
	return &v
}

func TestTask_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		svc := NewTask(store, testutil.MakeNoopLogger())

		store.On("Create", ctx, mock.MatchedBy(func(task model.Task) bool {
			return task.OwnerID == owner &&
				task.Title == "Write report" &&
				task.Priority == model.TaskPriorityMedium &&
				task.Status == model.TaskStatusTodo &&
				!task.AIAnalyzed &&
				task.CreatedAt.Equal(task.UpdatedAt)
		})).Return(func(_ context.Context, task model.Task) (model.Task, error) {
			task.ID = 1
			return task, nil
		}).Once()

		got, err := svc.Create(ctx, owner, model.NewTask{Title: "  Write report "})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("explicit priority", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		svc := NewTask(store, testutil.MakeNoopLogger())

		store.On("Create", ctx, mock.MatchedBy(func(task model.Task) bool {
			return task.Priority == model.TaskPriorityHigh
		})).Return(model.Task{ID: 2, Priority: model.TaskPriorityHigh}, nil).Once()

		_, err := svc.Create(ctx, owner, model.NewTask{Title: "t", Priority: ptr(model.TaskPriority("high"))})
		require.NoError(t, err)
	})

	t.Run("blank title", func(t *testing.T) {
		svc := NewTask(mocks.NewTaskStore(t), testutil.MakeNoopLogger())

		_, err := svc.Create(ctx, owner, model.NewTask{Title: "   "})
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("unknown priority", func(t *testing.T) {
		svc := NewTask(mocks.NewTaskStore(t), testutil.MakeNoopLogger())

		_, err := svc.Create(ctx, owner, model.NewTask{Title: "t", Priority: ptr(model.TaskPriority("URGENT"))})
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		svc := NewTask(store, testutil.MakeNoopLogger())

		store.On("Create", ctx, mock.Anything).Return(model.Task{}, errors.New("db down")).Once()

		_, err := svc.Create(ctx, owner, model.NewTask{Title: "t"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrValidation)
	})
}

func TestTask_List_NeverNil(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := mocks.NewTaskStore(t)
	svc := NewTask(store, testutil.MakeNoopLogger())

	store.On("ListByOwner", ctx, owner, (*model.TaskStatus)(nil)).Return(nil, nil).Once()

	got, err := svc.List(ctx, owner, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTask_Get(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("not found", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		store.On("GetByID", ctx, owner, int64(3)).Return(model.Task{}, model.ErrNotFound).Once()

		_, err := NewTask(store, testutil.MakeNoopLogger()).Get(ctx, owner, 3)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		store.On("GetByID", ctx, owner, int64(3)).Return(model.Task{}, errors.New("boom")).Once()

		_, err := NewTask(store, testutil.MakeNoopLogger()).Get(ctx, owner, 3)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func TestTask_Update_Validation(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name  string
		patch model.TaskPatch
	}{
		{name: "empty patch", patch: model.TaskPatch{}},
		{name: "blank title", patch: model.TaskPatch{Title: ptr(" ")}},
		{name: "unknown status", patch: model.TaskPatch{Status: ptr(model.TaskStatus("ARCHIVED"))}},
		{name: "unknown priority", patch: model.TaskPatch{Priority: ptr(model.TaskPriority("NONE"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTask(mocks.NewTaskStore(t), testutil.MakeNoopLogger())

			_, err := svc.Update(ctx, owner, 1, tt.patch)
			require.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestTask_Update_NormalizesEnums(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := mocks.NewTaskStore(t)
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTask(store, testutil.MakeNoopLogger(), WithClock(func() time.Time { return clock }))

	store.On("Update", ctx, owner, int64(1), mock.MatchedBy(func(p model.TaskPatch) bool {
		return p.Status != nil && *p.Status == model.TaskStatusInProgress && p.Title == nil && p.UpdatedAt.Equal(clock)
	})).Return(model.Task{ID: 1, Status: model.TaskStatusInProgress}, nil).Once()

	got, err := svc.Update(ctx, owner, 1, model.TaskPatch{Status: ptr(model.TaskStatus("in_progress"))})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusInProgress, got.Status)
}

func TestTask_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("nothing matched is success", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		store.On("Delete", ctx, owner, int64(7)).Return(false, nil).Once()

		require.NoError(t, NewTask(store, testutil.MakeNoopLogger()).Delete(ctx, owner, 7))
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewTaskStore(t)
		store.On("Delete", ctx, owner, int64(7)).Return(false, assert.AnError).Once()

		require.ErrorIs(t, NewTask(store, testutil.MakeNoopLogger()).Delete(ctx, owner, 7), assert.AnError)
	})
}

func newMemoryTaskService(t *testing.T) (*Task, uuid.UUID, uuid.UUID) {
	t.Helper()

	store := memory.NewStore()
	alice, err := store.Create(context.Background(), model.User{ID: uuid.New(), Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := store.Create(context.Background(), model.User{ID: uuid.New(), Email: "bob@example.com"})
	require.NoError(t, err)

	return NewTask(store.Tasks(), testutil.MakeNoopLogger()), alice.ID, bob.ID
}

func TestTask_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	svc, alice, bob := newMemoryTaskService(t)

	bobs, err := svc.Create(ctx, bob, model.NewTask{Title: "bob's"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, alice, bobs.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.Update(ctx, alice, bobs.ID, model.TaskPatch{Status: ptr(model.TaskStatusDone)})
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, alice, bobs.ID))

	still, err := svc.Get(ctx, bob, bobs.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusTodo, still.Status)

	list, err := svc.List(ctx, alice, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTask_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newMemoryTaskService(t)

	created, err := svc.Create(ctx, alice, model.NewTask{
		Title:       "Plan sprint",
		Description: ptr("backlog grooming"),
		Category:    ptr("work"),
		Priority:    ptr(model.TaskPriorityLow),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTask_StatusOnlyPatch(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newMemoryTaskService(t)

	created, err := svc.Create(ctx, alice, model.NewTask{Title: "t", Description: ptr("d"), Priority: ptr(model.TaskPriorityHigh)})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	updated, err := svc.Update(ctx, alice, created.ID, model.TaskPatch{Status: ptr(model.TaskStatusDone)})
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusDone, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	updated.Status = created.Status
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated)
}

func TestTask_ListOrderingAndFilter(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newMemoryTaskService(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		_, err := svc.Create(ctx, alice, model.NewTask{Title: title})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, alice, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "first", all[2].Title)

	_, err = svc.Update(ctx, alice, all[1].ID, model.TaskPatch{Status: ptr(model.TaskStatusDone)})
	require.NoError(t, err)

	done, err := svc.List(ctx, alice, ptr(model.TaskStatusDone))
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "second", done[0].Title)
}
