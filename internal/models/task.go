package models

type Task struct {
	ID          int64
	Description string
	IsCompleted bool
}
