package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskward/taskward-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `
		INSERT INTO tasks (id, owner_id, title, description, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, title, description, status, priority, created_at, updated_at`

	var savedTask model.Task
	err := r.db.QueryRow(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description,
		string(task.Status), string(task.Priority),
	).Scan(
		&savedTask.ID, &savedTask.OwnerID, &savedTask.Title, &savedTask.Description,
		&savedTask.Status, &savedTask.Priority, &savedTask.CreatedAt, &savedTask.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	return savedTask, nil
}

// GetByOwner fetches a task by ID scoped to its owner. The owner is
// part of the WHERE clause, so a task owned by another user yields
// model.ErrNotFound exactly like a missing ID.
func (r *TaskRepository) GetByOwner(ctx context.Context, ownerID, taskID uuid.UUID) (model.Task, error) {
	query := `
		SELECT t.id, t.owner_id, t.title, t.description, t.status, t.priority, t.created_at, t.updated_at
		FROM tasks t
		WHERE t.id = $1 AND t.owner_id = $2`

	var task model.Task
	err := r.db.QueryRow(ctx, query, taskID, ownerID).Scan(
		&task.ID, &task.OwnerID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}

	return task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	query := `
		SELECT t.id, t.owner_id, t.title, t.description, t.status, t.priority, t.created_at, t.updated_at
		FROM tasks t
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		err := rows.Scan(
			&task.ID, &task.OwnerID, &task.Title, &task.Description,
			&task.Status, &task.Priority, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update rewrites the mutable columns and refreshes updated_at in one
// statement, again scoped by owner in the predicate.
func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, status = $5, priority = $6, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, status, priority, created_at, updated_at`

	var savedTask model.Task
	err := r.db.QueryRow(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description,
		string(task.Status), string(task.Priority),
	).Scan(
		&savedTask.ID, &savedTask.OwnerID, &savedTask.Title, &savedTask.Description,
		&savedTask.Status, &savedTask.Priority, &savedTask.CreatedAt, &savedTask.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}

	return savedTask, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	cmd, err := r.db.Exec(ctx, query, taskID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
