// Package cli implements taskctl, a terminal front end for the tasks API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adanyl0v/go-task-manager/internal/client"
)

// Exit codes.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitAPIError = 3
)

const usage = `Usage:
  taskctl [list [all|active|completed]]
  taskctl add <description>
  taskctl done <id>
  taskctl undo <id>
  taskctl toggle <id>
  taskctl edit <id> <description>
  taskctl rm <id>
  taskctl help
`

var errUsage = errors.New("invalid usage")

// Runner executes one taskctl invocation against a mirror of the task list.
type Runner struct {
	mirror *client.Mirror
	out    io.Writer
	errOut io.Writer
}

func NewRunner(api client.API, out, errOut io.Writer) *Runner {
	return &Runner{
		mirror: client.NewMirror(api),
		out:    out,
		errOut: errOut,
	}
}

// Run parses args, loads the task list once and applies the command.
// It returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	cmd := "list"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		fmt.Fprint(r.out, usage)
		return ExitSuccess
	}

	run, ok := r.commands()[cmd]
	if !ok {
		fmt.Fprintf(r.errOut, "error: unknown command: %s\n", cmd)
		fmt.Fprint(r.errOut, usage)
		return ExitUsage
	}

	err := r.mirror.Load(ctx)
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		return ExitAPIError
	}

	filter, err := run(ctx, args)
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		if errors.Is(err, errUsage) || errors.Is(err, client.ErrEmptyDescription) {
			return ExitUsage
		}
		return ExitAPIError
	}

	r.render(filter)
	return ExitSuccess
}

type commandFunc func(ctx context.Context, args []string) (client.Filter, error)

func (r *Runner) commands() map[string]commandFunc {
	return map[string]commandFunc{
		"list":   r.list,
		"ls":     r.list,
		"add":    r.add,
		"done":   r.setCompleted(true),
		"undo":   r.setCompleted(false),
		"toggle": r.toggle,
		"edit":   r.edit,
		"rm":     r.remove,
	}
}

func (r *Runner) list(_ context.Context, args []string) (client.Filter, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: list takes at most one filter", errUsage)
	}
	var name string
	if len(args) == 1 {
		name = args[0]
	}
	filter, err := client.ParseFilter(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}
	return filter, nil
}

func (r *Runner) add(ctx context.Context, args []string) (client.Filter, error) {
	_, err := r.mirror.Add(ctx, strings.Join(args, " "))
	return client.FilterAll, err
}

func (r *Runner) setCompleted(completed bool) commandFunc {
	return func(ctx context.Context, args []string) (client.Filter, error) {
		id, err := parseID(args, 1)
		if err != nil {
			return "", err
		}
		_, err = r.mirror.SetCompleted(ctx, id, completed)
		return client.FilterAll, err
	}
}

func (r *Runner) toggle(ctx context.Context, args []string) (client.Filter, error) {
	id, err := parseID(args, 1)
	if err != nil {
		return "", err
	}
	_, err = r.mirror.Toggle(ctx, id)
	return client.FilterAll, err
}

func (r *Runner) edit(ctx context.Context, args []string) (client.Filter, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: edit takes an id and a description", errUsage)
	}
	id, err := parseID(args[:1], 1)
	if err != nil {
		return "", err
	}
	_, err = r.mirror.Edit(ctx, id, strings.Join(args[1:], " "))
	return client.FilterAll, err
}

func (r *Runner) remove(ctx context.Context, args []string) (client.Filter, error) {
	id, err := parseID(args, 1)
	if err != nil {
		return "", err
	}
	return client.FilterAll, r.mirror.Remove(ctx, id)
}

func parseID(args []string, want int) (int64, error) {
	if len(args) != want {
		return 0, fmt.Errorf("%w: expected a task id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid task id: %s", errUsage, args[0])
	}
	return id, nil
}

func (r *Runner) render(filter client.Filter) {
	tasks := r.mirror.View(filter)
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, "No tasks.")
	}
	for _, task := range tasks {
		mark := " "
		if task.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(r.out, "%4d  [%s] %s\n", task.ID, mark, task.Description)
	}

	active, completed := r.mirror.Counts()
	fmt.Fprintf(r.out, "%d active, %d completed\n", active, completed)
}
