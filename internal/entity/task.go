package entity

import (
	"fmt"
	"strings"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

const TaskStatusNotStarted = "NOT_STARTED"

// ParseTaskPriority accepts LOW, MEDIUM or HIGH in any case. Empty means MEDIUM.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch p := TaskPriority(strings.ToUpper(strings.TrimSpace(s))); p {
	case "":
		return TaskPriorityMedium, nil
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown task priority %q", ErrInvalidArgument, s)
	}
}

type Task struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	DueDate  int64        `json:"dueDate"`
	Priority TaskPriority `json:"priority"`
	Notes    string       `json:"notes"`
	Status   string       `json:"status"`
}

type NewTask struct {
	ContactID string `json:"contactId"`
	Title     string `json:"title"`
	// DueDate is epoch millis. Dates in the past are accepted.
	DueDate  int64  `json:"dueDate"`
	Priority string `json:"priority"`
	Notes    string `json:"notes"`
}
