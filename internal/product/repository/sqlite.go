package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/product/dto"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO products (name, description, price, sku, category, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Price.String(), p.SKU, p.Category, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	conditions := []string{}
	args := []interface{}{}

	if f != nil {
		if f.Category != nil {
			conditions = append(conditions, "category = ?")
			args = append(args, *f.Category)
		}
		if f.Search != "" {
			conditions = append(conditions, "(name LIKE ? OR sku LIKE ?)")
			q := "%" + f.Search + "%"
			args = append(args, q, q)
		}
	}

	query := "SELECT * FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE products
        SET name = ?, description = ?, price = ?, sku = ?, category = ?, updated_at = ?
        WHERE id = ?`,
		p.Name, p.Description, p.Price.String(), p.SKU, p.Category, p.UpdatedAt, p.ID,
	)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) IsSKUUnique(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE sku = ? AND id != ?`, sku, excludeID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
