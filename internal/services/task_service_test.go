package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func newTestTaskService() TaskService {
	return NewTaskService(zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreateTask_TrimsAndDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	created, err := svc.CreateTask(ctx, "  buy milk \t")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected first id 1, got %d", created.ID)
	}

	got, err := svc.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Description != "buy milk" {
		t.Errorf("expected trimmed description, got %q", got.Description)
	}
	if got.IsCompleted {
		t.Error("expected new task to be uncompleted")
	}
}

func TestCreateTask_RejectsBlankDescription(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	for _, description := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreateTask(ctx, description)
		if !errors.Is(err, ErrInvalidTaskDescription) {
			t.Errorf("CreateTask(%q): expected ErrInvalidTaskDescription, got %v", description, err)
		}
	}

	if tasks := svc.GetTasks(ctx); len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}

	// A rejected create must not consume an id.
	created, err := svc.CreateTask(ctx, "first")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
}

func TestCreateTask_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	a, _ := svc.CreateTask(ctx, "A")
	b, _ := svc.CreateTask(ctx, "B")
	if err := svc.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	c, _ := svc.CreateTask(ctx, "C")

	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Errorf("expected ids 1, 2, 3, got %d, %d, %d", a.ID, b.ID, c.ID)
	}

	tasks := svc.GetTasks(ctx)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "B" || tasks[1].Description != "C" {
		t.Errorf("expected [B C], got [%s %s]", tasks[0].Description, tasks[1].Description)
	}
}

func TestUpdateTask(t *testing.T) {
	tests := []struct {
		name            string
		params          func(id int64) UpdateTaskParams
		wantDescription string
		wantCompleted   bool
	}{
		{
			name: "completion only",
			params: func(id int64) UpdateTaskParams {
				return UpdateTaskParams{ID: id, IsCompleted: boolPtr(true)}
			},
			wantDescription: "original",
			wantCompleted:   true,
		},
		{
			name: "description is trimmed",
			params: func(id int64) UpdateTaskParams {
				return UpdateTaskParams{ID: id, Description: strPtr("  renamed ")}
			},
			wantDescription: "renamed",
		},
		{
			name: "blank description is ignored",
			params: func(id int64) UpdateTaskParams {
				return UpdateTaskParams{ID: id, Description: strPtr("  "), IsCompleted: boolPtr(true)}
			},
			wantDescription: "original",
			wantCompleted:   true,
		},
		{
			name: "empty description is ignored",
			params: func(id int64) UpdateTaskParams {
				return UpdateTaskParams{ID: id, Description: strPtr("")}
			},
			wantDescription: "original",
		},
		{
			name: "no fields",
			params: func(id int64) UpdateTaskParams {
				return UpdateTaskParams{ID: id}
			},
			wantDescription: "original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestTaskService()
			created, _ := svc.CreateTask(ctx, "original")

			updated, err := svc.UpdateTask(ctx, tt.params(created.ID))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if updated.Description != tt.wantDescription {
				t.Errorf("expected description %q, got %q", tt.wantDescription, updated.Description)
			}
			if updated.IsCompleted != tt.wantCompleted {
				t.Errorf("expected isCompleted %v, got %v", tt.wantCompleted, updated.IsCompleted)
			}

			stored, _ := svc.GetTaskByID(ctx, created.ID)
			if *stored != *updated {
				t.Errorf("stored task %+v differs from returned %+v", stored, updated)
			}
		})
	}
}

func TestUpdateTask_CanUncomplete(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()
	created, _ := svc.CreateTask(ctx, "task")

	_, _ = svc.UpdateTask(ctx, UpdateTaskParams{ID: created.ID, IsCompleted: boolPtr(true)})
	updated, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: created.ID, IsCompleted: boolPtr(false)})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.IsCompleted {
		t.Error("expected task to be uncompleted")
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()
	created, _ := svc.CreateTask(ctx, "doomed")
	_ = svc.DeleteTask(ctx, created.ID)

	for _, id := range []int64{created.ID, 42, 0, -1} {
		if _, err := svc.GetTaskByID(ctx, id); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("GetTaskByID(%d): expected ErrTaskNotFound, got %v", id, err)
		}
		if _, err := svc.UpdateTask(ctx, UpdateTaskParams{ID: id, IsCompleted: boolPtr(true)}); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("UpdateTask(%d): expected ErrTaskNotFound, got %v", id, err)
		}
		if err := svc.DeleteTask(ctx, id); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("DeleteTask(%d): expected ErrTaskNotFound, got %v", id, err)
		}
	}
}

func TestGetTasks_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()
	created, _ := svc.CreateTask(ctx, "immutable")

	created.Description = "changed by caller"
	tasks := svc.GetTasks(ctx)
	tasks[0].IsCompleted = true

	stored, _ := svc.GetTaskByID(ctx, created.ID)
	if stored.Description != "immutable" || stored.IsCompleted {
		t.Errorf("stored task was mutated: %+v", stored)
	}
}

func TestGetTasks_EmptyIsNotNil(t *testing.T) {
	tasks := newTestTaskService().GetTasks(context.Background())
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestCreateTask_Concurrent(t *testing.T) {
	ctx := context.Background()
	svc := newTestTaskService()

	const workers, perWorker = 16, 50
	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				task, err := svc.CreateTask(ctx, "concurrent")
				if err != nil {
					t.Errorf("expected no error, got %v", err)
					return
				}
				ids <- task.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("expected %d ids, got %d", workers*perWorker, len(seen))
	}

	tasks := svc.GetTasks(ctx)
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].ID >= tasks[i].ID {
			t.Fatalf("list order is not insertion order at %d: %d >= %d", i, tasks[i-1].ID, tasks[i].ID)
		}
	}
}
