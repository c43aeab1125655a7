package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

// ListTasks returns all tasks owned by userID, newest first.
func (s *Task) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by owner: %w", err)
	}

	return tasks, nil
}

// CreateTask validates input, applies defaults and stores the task
// bound to its owner.
func (s *Task) CreateTask(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Task{}, model.NewValidationError("title is required")
	}

	status := params.Status
	if status == "" {
		status = model.TaskStatusPending
	}
	if !status.Valid() {
		return model.Task{}, model.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	priority := params.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, model.NewValidationError(fmt.Sprintf("invalid priority: %s", priority))
	}

	task := model.Task{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       title,
		Description: params.Description,
		Status:      status,
		Priority:    priority,
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", params.OwnerID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"task_id", savedTask.ID,
		"user_id", params.OwnerID)

	return savedTask, nil
}

// GetTask returns the task only if it is owned by userID. A task
// belonging to another user is reported exactly like a missing one.
func (s *Task) GetTask(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	task, err := s.taskStore.GetByOwner(ctx, userID, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, model.NewTaskNotFoundError()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by owner: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update. Nil fields keep their stored
// values; updated_at refreshes even when the patch is empty.
func (s *Task) UpdateTask(ctx context.Context, params model.UpdateTaskParams) (model.Task, error) {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return model.Task{}, model.NewValidationError("title must not be empty")
	}
	if params.Status != nil && !params.Status.Valid() {
		return model.Task{}, model.NewValidationError(fmt.Sprintf("invalid status: %s", *params.Status))
	}
	if params.Priority != nil && !params.Priority.Valid() {
		return model.Task{}, model.NewValidationError(fmt.Sprintf("invalid priority: %s", *params.Priority))
	}

	task, err := s.taskStore.GetByOwner(ctx, params.OwnerID, params.TaskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, model.NewTaskNotFoundError()
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by owner: %w", err)
	}

	if params.Title != nil {
		task.Title = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = *params.Status
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}

	savedTask, err := s.taskStore.Update(ctx, task)
	if errors.Is(err, model.ErrNotFound) {
		// The task vanished between the read and the write.
		return model.Task{}, model.NewTaskNotFoundError()
	}
	if err != nil {
		s.logger.Error("Task service: failed to update task",
			"task_id", params.TaskID,
			"user_id", params.OwnerID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task service: task updated",
		"task_id", savedTask.ID,
		"user_id", params.OwnerID)

	return savedTask, nil
}

// DeleteTask removes the task if it is owned by userID.
func (s *Task) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	err := s.taskStore.Delete(ctx, userID, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewTaskNotFoundError()
	}
	if err != nil {
		s.logger.Error("Task service: failed to delete task",
			"task_id", taskID,
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"task_id", taskID,
		"user_id", userID)

	return nil
}
