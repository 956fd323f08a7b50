package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/averine/opshub-service/internal/inventory/dto"
	"github.com/averine/opshub-service/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, inv *model.Inventory) error {
	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO inventory (product_id, quantity, min_stock_level, max_stock_level, location, created_at, last_updated)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ProductID, inv.Quantity, inv.MinStockLevel, inv.MaxStockLevel, inv.Location, inv.CreatedAt, inv.LastUpdated,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv, `SELECT * FROM inventory WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.InventoryFilters) ([]model.Inventory, error) {
	conditions := []string{}
	args := []interface{}{}

	if f != nil {
		if f.Location != nil {
			conditions = append(conditions, "location = ?")
			args = append(args, *f.Location)
		}
		if f.LowStockOnly {
			conditions = append(conditions, "quantity <= min_stock_level")
		}
	}

	query := "SELECT * FROM inventory"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	items := []model.Inventory{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteRepository) FindByProduct(ctx context.Context, productID int64) ([]model.Inventory, error) {
	items := []model.Inventory{}
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM inventory WHERE product_id = ? ORDER BY id ASC`, productID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, inv *model.Inventory) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE inventory
        SET product_id = ?, quantity = ?, min_stock_level = ?, max_stock_level = ?, location = ?, last_updated = ?
        WHERE id = ?`,
		inv.ProductID, inv.Quantity, inv.MinStockLevel, inv.MaxStockLevel, inv.Location, inv.LastUpdated, inv.ID,
	)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	return err
}
