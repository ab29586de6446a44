package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrInvalidTaskDescription = errors.New("task description is required")
)

type TaskService interface {
	// GetTasks returns all tasks in the order they were created.
	GetTasks(ctx context.Context) []*models.Task

	// GetTaskByID returns ErrTaskNotFound if there is
	// no task with the given ID.
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)

	// CreateTask stores a new uncompleted task with the trimmed
	// description and assigns it the next ID. IDs are never reused.
	//
	// It returns ErrInvalidTaskDescription if the description
	// is empty or consists of whitespace only.
	CreateTask(ctx context.Context, description string) (*models.Task, error)

	// UpdateTask applies the fields set in params and returns
	// the updated task. A description that is empty after
	// trimming leaves the current one unchanged.
	//
	// It returns ErrTaskNotFound if there is no task with the given ID.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// DeleteTask returns ErrTaskNotFound if there is
	// no task with the given ID.
	DeleteTask(ctx context.Context, id int64) error
}

type UpdateTaskParams struct {
	ID          int64
	Description *string
	IsCompleted *bool
}
