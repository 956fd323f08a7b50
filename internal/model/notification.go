package model

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationError, NotificationSuccess:
		return true
	}
	return false
}

type EntityType string

const (
	EntityTask      EntityType = "task"
	EntityProduct   EntityType = "product"
	EntityInventory EntityType = "inventory"
	EntityCustomer  EntityType = "customer"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTask, EntityProduct, EntityInventory, EntityCustomer:
		return true
	}
	return false
}

// EntityRef is the soft reference a notification may carry. The zero value
// means "no reference"; a non-zero ref always has both a type and an id, so
// the two columns can never go out of step. Id spaces are per entity type:
// product 5 and inventory 5 are unrelated.
type EntityRef struct {
	Type EntityType
	ID   int64
}

func NewEntityRef(t EntityType, id int64) EntityRef {
	return EntityRef{Type: t, ID: id}
}

func (r EntityRef) IsZero() bool {
	return r.Type == ""
}

// Notification is a system-generated event record. Only the Read flag is
// mutable after creation.
type Notification struct {
	ID        int64            `db:"id"`
	Title     string           `db:"title"`
	Message   string           `db:"message"`
	Type      NotificationType `db:"type"`
	Read      bool             `db:"read"`
	Entity    EntityRef        `db:"-"` // Mapped to entity_type/entity_id columns
	CreatedAt time.Time        `db:"created_at"`
}
