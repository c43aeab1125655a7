package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskward/taskward-server/internal/api/http/middleware"
	"github.com/taskward/taskward-server/internal/logger"
	"github.com/taskward/taskward-server/internal/model"
)

// TaskService defines owner-scoped task operations.
type TaskService interface {
	ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, params model.CreateTaskParams) (model.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error)
	UpdateTask(ctx context.Context, params model.UpdateTaskParams) (model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// Task handles HTTP endpoints for task CRUD. All endpoints resolve
// the caller's identity from the request context placed there by the
// authenticate middleware.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(task model.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// List returns all tasks of the caller, newest first.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, model.NewUnauthenticatedError())
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": responses})
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

// Create stores a new task owned by the caller.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, model.NewUnauthenticatedError())
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), model.CreateTaskParams{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		Priority:    model.TaskPriority(req.Priority),
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "task created",
		"task":    toTaskResponse(task),
	})
}

// Get returns one task of the caller by ID.
func (h *Task) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, model.NewUnauthenticatedError())
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"task": toTaskResponse(task)})
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

// Update applies a partial update to one task of the caller. Fields
// absent from the body keep their stored values.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, model.NewUnauthenticatedError())
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	params := model.UpdateTaskParams{
		OwnerID:     userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := model.TaskPriority(*req.Priority)
		params.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "task updated",
		"task":    toTaskResponse(task),
	})
}

// Delete removes one task of the caller by ID.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.WriteErrorResponse(w, model.NewUnauthenticatedError())
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "task deleted"})
}

// taskIDFromRequest parses the {id} route parameter. A syntactically
// invalid ID maps to the same not-found error as a missing task, so
// the ID space leaks nothing.
func taskIDFromRequest(r *http.Request) (uuid.UUID, error) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewTaskNotFoundError()
	}
	return taskID, nil
}
