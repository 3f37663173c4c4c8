package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "NotStarted"
	StatusInProgress TaskStatus = "InProgress"
	StatusCompleted  TaskStatus = "Completed"
	StatusOnHold     TaskStatus = "OnHold"
	StatusCancelled  TaskStatus = "Cancelled"
)

// TaskStatuses lists the valid values in wire order.
var TaskStatuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
	StatusOnHold,
	StatusCancelled,
}

// ParseTaskStatus resolves a status string case-insensitively. The wire
// representation stays case-sensitive (the canonical constant is returned).
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, status := range TaskStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}

	valid := make([]string, len(TaskStatuses))
	for i, status := range TaskStatuses {
		valid[i] = string(status)
	}

	return "", NewValidationError("Invalid status: %s. Valid values: %s", s, strings.Join(valid, ", "))
}

type TaskItem struct {
	ID               int
	Name             string `validate:"required,max=200"`
	Description      string `validate:"max=1000"`
	StartDate        time.Time
	EndDate          *time.Time
	Status           TaskStatus
	AssignedToUserID int
	AssignedTo       *User
	CreatedDate      time.Time
	UpdatedDate      *time.Time
}

// AssigneeUsername resolves the assignee from the eagerly loaded relation,
// falling back to "Unknown" when the relation is absent.
func (t *TaskItem) AssigneeUsername() string {
	if t.AssignedTo == nil {
		return "Unknown"
	}
	return t.AssignedTo.Username
}
