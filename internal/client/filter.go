package client

import "fmt"

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter: %s", s)
	}
}

// Apply returns the tasks matching f in their original order.
// The input slice is never modified.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		switch f {
		case FilterActive:
			if task.IsCompleted {
				continue
			}
		case FilterCompleted:
			if !task.IsCompleted {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}
