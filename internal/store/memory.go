package store

import (
	"errors"
	"sync"
	"time"

	"todo-api/internal/models"
)

// ErrNotFound is returned when a todo id does not exist.
var ErrNotFound = errors.New("todo not found")

// Memory is an in-memory ordered todo list with a monotonic id counter.
// Ids start at 1, are never reused and never reset while the process lives.
// Safe for concurrent use; the gin host serves requests in parallel.
type Memory struct {
	mu     sync.Mutex
	todos  []models.Todo
	nextID int64
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// NextID returns the next identifier and advances the counter.
func (m *Memory) NextID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	return id
}

// Len returns the number of stored todos.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.todos)
}

// List returns a copy of the stored todos in insertion order.
// A limit <= 0 returns everything.
func (m *Memory) List(limit int) []models.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.todos)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Todo, n)
	copy(out, m.todos[:n])
	return out
}

// Get returns the todo with the given id.
func (m *Memory) Get(id int64) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Todo{}, ErrNotFound
}

// Create appends a new todo, assigning it the next id and fresh timestamps.
func (m *Memory) Create(title, description string, status models.Status, deadline *time.Time) models.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	t := models.Todo{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
		Deadline:    deadline,
	}
	m.nextID++
	m.todos = append(m.todos, t)
	return t
}

// AppendAll appends pre-built todos (e.g. generator output). The caller is
// responsible for having drawn their ids from NextID.
func (m *Memory) AppendAll(todos []models.Todo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = append(m.todos, todos...)
}

// Update applies a partial update to the todo with the given id.
// Nil fields are left unchanged. UpdatedAt is refreshed on success.
func (m *Memory) Update(id int64, title, description *string, status *models.Status, deadline *time.Time) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID != id {
			continue
		}
		t := &m.todos[i]
		if title != nil {
			t.Title = *title
		}
		if description != nil {
			t.Description = *description
		}
		if status != nil {
			t.Status = *status
		}
		if deadline != nil {
			t.Deadline = deadline
		}
		t.UpdatedAt = time.Now()
		return *t, nil
	}
	return models.Todo{}, ErrNotFound
}

// Delete removes the todo with the given id. The id counter is untouched.
func (m *Memory) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
