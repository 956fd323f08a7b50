package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/averine/opshub-service/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

// notificationRow is the flat column shape; the soft reference is two
// nullable columns at rest and a tagged EntityRef in the model.
type notificationRow struct {
	ID         int64                  `db:"id"`
	Title      string                 `db:"title"`
	Message    string                 `db:"message"`
	Type       model.NotificationType `db:"type"`
	Read       bool                   `db:"read"`
	EntityType sql.NullString         `db:"entity_type"`
	EntityID   sql.NullInt64          `db:"entity_id"`
	CreatedAt  sql.NullTime           `db:"created_at"`
}

func (row *notificationRow) toModel() model.Notification {
	n := model.Notification{
		ID:        row.ID,
		Title:     row.Title,
		Message:   row.Message,
		Type:      row.Type,
		Read:      row.Read,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.EntityType.Valid && row.EntityID.Valid {
		n.Entity = model.NewEntityRef(model.EntityType(row.EntityType.String), row.EntityID.Int64)
	}
	return n
}

func (r *SQLiteRepository) Create(ctx context.Context, n *model.Notification) error {
	var entityType interface{}
	var entityID interface{}
	if !n.Entity.IsZero() {
		entityType = string(n.Entity.Type)
		entityID = n.Entity.ID
	}

	res, err := r.DB.ExecContext(ctx, `
        INSERT INTO notifications (title, message, type, read, entity_type, entity_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.Title, n.Message, n.Type, n.Read, entityType, entityID, n.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Notification, error) {
	var row notificationRow
	err := r.DB.GetContext(ctx, &row, `SELECT * FROM notifications WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	n := row.toModel()
	return &n, nil
}

// FindAll returns every notification, most recent first. Rows sharing a
// created_at keep insertion order.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Notification, error) {
	rows := []notificationRow{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM notifications ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}

	notifications := make([]model.Notification, 0, len(rows))
	for i := range rows {
		notifications = append(notifications, rows[i].toModel())
	}
	return notifications, nil
}

func (r *SQLiteRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM notifications WHERE read = 0`)
	return count, err
}

func (r *SQLiteRepository) MarkRead(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *SQLiteRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read = 1`)
	return err
}

func (r *SQLiteRepository) DeleteByEntity(ctx context.Context, entityType model.EntityType, entityID int64) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM notifications WHERE entity_type = ? AND entity_id = ?`,
		string(entityType), entityID,
	)
	return err
}
