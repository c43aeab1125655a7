package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks. Every read,
// update and delete takes the owner ID together with the task ID so
// the ownership check happens inside the store predicate rather than
// as a separate fetch-then-compare step.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByOwner(ctx context.Context, ownerID, taskID uuid.UUID) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// Task represents a stored task entity bound to its owning user.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskStatus enumerates task states. Transitions are free in any
// direction; no ordering is enforced server-side.
type TaskStatus string

const (
	// TaskStatusPending is the default state of a new task.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress marks a task being worked on.
	TaskStatusInProgress TaskStatus = "in-progress"
	// TaskStatusCompleted marks a finished task.
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether the status is one of the enumerated values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	// TaskPriorityLow is the lowest priority.
	TaskPriorityLow TaskPriority = "low"
	// TaskPriorityMedium is the default priority of a new task.
	TaskPriorityMedium TaskPriority = "medium"
	// TaskPriorityHigh is the highest priority.
	TaskPriorityHigh TaskPriority = "high"
)

// Valid reports whether the priority is one of the enumerated values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// CreateTaskParams contains parameters to create a task. Status and
// Priority may be empty; the service applies defaults.
type CreateTaskParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
}

// UpdateTaskParams contains a partial update. Nil fields are left
// unchanged on the stored task.
type UpdateTaskParams struct {
	OwnerID     uuid.UUID
	TaskID      uuid.UUID
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
}
