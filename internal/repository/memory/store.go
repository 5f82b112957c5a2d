// Package memory provides process-local user and task stores.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var (
	_ model.UserStore = (*Store)(nil)
	_ model.TaskStore = (*TaskStore)(nil)
)

// Store keeps users and tasks in maps guarded by a single lock.
type Store struct {
	mu     sync.RWMutex
	users  map[string]model.User
	tasks  map[int64]model.Task
	lastID int64
	now    func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]model.User),
		tasks: make(map[int64]model.Task),
		now:   time.Now,
	}
}

// Tasks returns a TaskStore view of s.
func (s *Store) Tasks() *TaskStore {
	return &TaskStore{s: s}
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *Store) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrAlreadyExists
	}
	for _, u := range s.users {
		if u.ID == user.ID {
			return model.User{}, fmt.Errorf("user id %s already taken", user.ID)
		}
	}

	s.users[user.Email] = user
	return user, nil
}

func (s *Store) userExists(id uuid.UUID) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// TaskStore is the task half of Store.
type TaskStore struct {
	s *Store
}

func (t *TaskStore) Create(_ context.Context, task model.Task) (model.Task, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if !t.s.userExists(task.OwnerID) {
		return model.Task{}, fmt.Errorf("owner %s does not exist", task.OwnerID)
	}

	t.s.lastID++
	task.ID = t.s.lastID
	t.s.tasks[task.ID] = task
	return task, nil
}

func (t *TaskStore) GetByID(_ context.Context, ownerID uuid.UUID, id int64) (model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	task, ok := t.s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return model.Task{}, model.ErrNotFound
	}
	return task, nil
}

func (t *TaskStore) ListByOwner(_ context.Context, ownerID uuid.UUID, status *model.TaskStatus) ([]model.Task, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	tasks := make([]model.Task, 0)
	for _, task := range t.s.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if status != nil && task.Status != *status {
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})

	return tasks, nil
}

func (t *TaskStore) Update(_ context.Context, ownerID uuid.UUID, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.IsEmpty() {
		return model.Task{}, fmt.Errorf("%w: no fields to update", model.ErrValidation)
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	task, ok := t.s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return model.Task{}, model.ErrNotFound
	}

	now := patch.UpdatedAt
	if now.IsZero() {
		now = t.s.now()
	}
	task = patch.Apply(task, now)
	t.s.tasks[id] = task
	return task, nil
}

func (t *TaskStore) Delete(_ context.Context, ownerID uuid.UUID, id int64) (bool, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	task, ok := t.s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return false, nil
	}

	delete(t.s.tasks, id)
	return true, nil
}
