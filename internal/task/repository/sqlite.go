package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/task/dto"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, t *model.Task) error {
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO tasks (title, description, status, priority, due_date, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM tasks WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.TaskFilters) ([]model.Task, error) {
	conditions := []string{}
	args := []interface{}{}

	if f != nil {
		if f.Status != nil {
			conditions = append(conditions, "status = ?")
			args = append(args, *f.Status)
		}
		if f.Priority != nil {
			conditions = append(conditions, "priority = ?")
			args = append(args, *f.Priority)
		}
		if f.DueFrom != nil {
			conditions = append(conditions, "due_date >= ?")
			args = append(args, f.DueFrom.UTC())
		}
		if f.DueTo != nil {
			conditions = append(conditions, "due_date <= ?")
			args = append(args, f.DueTo.UTC())
		}
	}

	query := "SELECT * FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	tasks := []model.Task{}
	if err := r.DB.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, t *model.Task) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE tasks
        SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, updated_at = ?
        WHERE id = ?`,
		t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.UpdatedAt, t.ID,
	)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}
