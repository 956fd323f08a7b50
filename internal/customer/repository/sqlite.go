package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/averine/opshub-service/internal/customer/dto"
	"github.com/averine/opshub-service/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Customer) error {
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO customers (name, email, phone, address, company, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Address, c.Company, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.DB.GetContext(ctx, &c, `SELECT * FROM customers WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	conditions := []string{}
	args := []interface{}{}

	if f != nil {
		if f.Status != nil {
			conditions = append(conditions, "status = ?")
			args = append(args, *f.Status)
		}
		if f.Search != "" {
			conditions = append(conditions, "(name LIKE ? OR email LIKE ? OR company LIKE ?)")
			q := "%" + f.Search + "%"
			args = append(args, q, q, q)
		}
	}

	query := "SELECT * FROM customers"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	customers := []model.Customer{}
	if err := r.DB.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, c *model.Customer) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE customers
        SET name = ?, email = ?, phone = ?, address = ?, company = ?, status = ?, updated_at = ?
        WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Address, c.Company, c.Status, c.UpdatedAt, c.ID,
	)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) IsEmailUnique(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM customers WHERE email = ? AND id != ?`, email, excludeID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
