package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger

	mu     sync.RWMutex
	nextID int64
	order  []int64
	tasks  map[int64]*models.Task
}

func NewTaskService(logger zerolog.Logger) TaskService {
	return &taskServiceImpl{
		logger: logger,
		nextID: 1,
		tasks:  make(map[int64]*models.Task),
	}
}

func (s *taskServiceImpl) GetTasks(_ context.Context) []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, copyTask(s.tasks[id]))
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks
}

func (s *taskServiceImpl) GetTaskByID(_ context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	s.logger.Debug().
		Int64("task_id", id).
		Msg("selected task")
	return copyTask(task), nil
}

func (s *taskServiceImpl) CreateTask(_ context.Context, description string) (*models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		s.logger.Warn().Msg("empty task description")
		return nil, ErrInvalidTaskDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &models.Task{
		ID:          s.nextID,
		Description: description,
		IsCompleted: false,
	}
	s.nextID++
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return copyTask(task), nil
}

func (s *taskServiceImpl) UpdateTask(_ context.Context, params UpdateTaskParams) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[params.ID]
	if !ok {
		s.logger.Warn().
			Int64("task_id", params.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	if params.Description != nil {
		// Blank descriptions are ignored rather than rejected.
		description := strings.TrimSpace(*params.Description)
		if description != "" {
			task.Description = description
		} else {
			s.logger.Debug().
				Int64("task_id", task.ID).
				Msg("ignored blank description")
		}
	}
	if params.IsCompleted != nil {
		task.IsCompleted = *params.IsCompleted
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Bool("is_completed", task.IsCompleted).
		Msg("updated task")
	return copyTask(task), nil
}

func (s *taskServiceImpl) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	delete(s.tasks, id)
	s.order = slices.DeleteFunc(s.order, func(taskID int64) bool {
		return taskID == id
	})

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

// copyTask keeps callers from mutating stored tasks outside the lock.
func copyTask(task *models.Task) *models.Task {
	c := *task
	return &c
}
