package model

import "time"

// BaseModel carries the identity and timestamp columns shared by most entities.
// IDs are assigned by the store and never change after creation.
type BaseModel struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
