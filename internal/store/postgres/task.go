package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"go-task-api/internal/model"
	"go-task-api/internal/store"
)

func (s *Store) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tasks (id, owner_id, title, description, deadline, priority, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.OwnerID, t.Title, t.Description, t.Deadline, t.Priority, t.Completed, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, ownerID string, search string) ([]model.Task, error) {
	query := `SELECT id, owner_id, title, description, deadline, priority, completed, created_at, updated_at
		 FROM tasks WHERE owner_id = $1`
	args := []any{ownerID}

	if search = strings.TrimSpace(search); search != "" {
		query += ` AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')`
		args = append(args, search)
	}
	query += ` ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Deadline,
			&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(ctx context.Context, taskID string, ownerID string, upd model.TaskUpdate) (model.Task, error) {
	set := []string{"updated_at = now()"}
	args := []any{taskID, ownerID}

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		appendSet("title", *upd.Title)
	}
	if upd.Description != nil {
		appendSet("description", *upd.Description)
	}
	if upd.Deadline != nil {
		appendSet("deadline", *upd.Deadline)
	}
	if upd.Priority != nil {
		appendSet("priority", *upd.Priority)
	}
	if upd.Completed != nil {
		appendSet("completed", *upd.Completed)
	}

	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, title, description, deadline, priority, completed, created_at, updated_at`,
		strings.Join(set, ", "))

	var t model.Task
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Deadline,
			&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, store.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID string, ownerID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
