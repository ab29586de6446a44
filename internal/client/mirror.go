package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrEmptyDescription is returned by Add before any request is made.
var ErrEmptyDescription = errors.New("description is required")

// API is the subset of Client used by Mirror.
type API interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, description string) (Task, error)
	Update(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id int64) error
}

// Mirror is a local copy of the task list. It is loaded in full once
// and then patched with the response of every mutating call. A failed
// call leaves the copy untouched.
type Mirror struct {
	api API

	mu    sync.RWMutex
	tasks []Task
}

func NewMirror(api API) *Mirror {
	return &Mirror{api: api}
}

func (m *Mirror) Load(ctx context.Context) error {
	tasks, err := m.api.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	m.mu.Lock()
	m.tasks = tasks
	m.mu.Unlock()
	return nil
}

func (m *Mirror) Add(ctx context.Context, description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	task, err := m.api.Create(ctx, description)
	if err != nil {
		return Task{}, fmt.Errorf("failed to add task: %w", err)
	}

	m.mu.Lock()
	m.tasks = append(m.tasks, task)
	m.mu.Unlock()
	return task, nil
}

// Toggle flips the completion flag of the mirrored task with the given id.
func (m *Mirror) Toggle(ctx context.Context, id int64) (Task, error) {
	current, ok := m.Find(id)
	if !ok {
		return Task{}, fmt.Errorf("failed to update task: task %d is not loaded", id)
	}
	completed := !current.IsCompleted
	return m.Update(ctx, id, UpdateTaskRequest{IsCompleted: &completed})
}

// SetCompleted sets the completion flag without looking at the mirror.
func (m *Mirror) SetCompleted(ctx context.Context, id int64, completed bool) (Task, error) {
	return m.Update(ctx, id, UpdateTaskRequest{IsCompleted: &completed})
}

func (m *Mirror) Edit(ctx context.Context, id int64, description string) (Task, error) {
	return m.Update(ctx, id, UpdateTaskRequest{Description: &description})
}

func (m *Mirror) Update(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error) {
	task, err := m.api.Update(ctx, id, req)
	if err != nil {
		return Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.tasks, func(t Task) bool { return t.ID == id })
	if i >= 0 {
		m.tasks[i] = task
	}
	return task, nil
}

func (m *Mirror) Remove(ctx context.Context, id int64) error {
	err := m.api.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	m.mu.Lock()
	m.tasks = slices.DeleteFunc(m.tasks, func(t Task) bool { return t.ID == id })
	m.mu.Unlock()
	return nil
}

func (m *Mirror) Find(id int64) (Task, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := slices.IndexFunc(m.tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return Task{}, false
	}
	return m.tasks[i], true
}

// View returns the mirrored tasks selected by f.
func (m *Mirror) View(f Filter) []Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return f.Apply(m.tasks)
}

func (m *Mirror) Counts() (active, completed int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, task := range m.tasks {
		if task.IsCompleted {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}
