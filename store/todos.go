package store

import (
	"context"
	"fmt"

	"todoserver/domain"
)

// ListTodos returns every todo, newest first. The id tiebreak keeps the
// order stable when two rows share the same CURRENT_TIMESTAMP second.
func (s *Store) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, created_at
		FROM todos
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

// CreateTodo inserts a new item and returns it as persisted. The store
// assigns the id and creation timestamp; text is stored as given, empty or
// not.
func (s *Store) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO todos (text) VALUES (?)`, text)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	var t domain.Todo
	err = s.db.QueryRowContext(ctx,
		`SELECT id, text, created_at FROM todos WHERE id = ?`, id,
	).Scan(&t.ID, &t.Text, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("read back todo %d: %w", id, err)
	}

	return &t, nil
}
