// Package rules holds the pure decision functions of the notification engine.
// Each rule examines entity state around a mutation and returns either a
// draft to insert or nil. Rules never touch the store, so they are
// unit-testable without a database.
package rules

import (
	"fmt"

	"github.com/averine/opshub-service/internal/model"
)

// Draft is a notification a rule decided to emit.
type Draft struct {
	Title   string
	Message string
	Type    model.NotificationType
	Entity  model.EntityRef
}

// ProductInfo names the product an inventory row belongs to. Callers resolve
// it before rule evaluation and substitute a placeholder when the product id
// does not resolve.
type ProductInfo struct {
	Name string
	SKU  string
}

// UnknownProduct is the fallback used when an inventory row's product id
// cannot be resolved.
var UnknownProduct = ProductInfo{Name: "Unknown Product"}

// TaskCreated fires for freshly created high and urgent priority tasks.
func TaskCreated(t *model.Task) *Draft {
	if t.Priority != model.TaskPriorityHigh && t.Priority != model.TaskPriorityUrgent {
		return nil
	}
	return &Draft{
		Title:   fmt.Sprintf("New %s priority task created", t.Priority),
		Message: fmt.Sprintf("Task %q has been created with %s priority", t.Title, t.Priority),
		Type:    model.NotificationInfo,
		Entity:  model.NewEntityRef(model.EntityTask, t.ID),
	}
}

// TaskCompleted fires when a task transitions into completed from any other
// status. Re-saving a completed task or moving away from completed is a no-op.
func TaskCompleted(before, after *model.Task) *Draft {
	if before.Status == model.TaskStatusCompleted || after.Status != model.TaskStatusCompleted {
		return nil
	}
	return &Draft{
		Title:   "Task Completed",
		Message: fmt.Sprintf("Task %q has been marked as completed", after.Title),
		Type:    model.NotificationSuccess,
		Entity:  model.NewEntityRef(model.EntityTask, after.ID),
	}
}

// InventoryCreated fires when a new inventory row starts strictly below its
// minimum. Quantity equal to the minimum does not alert.
func InventoryCreated(inv *model.Inventory, p ProductInfo) *Draft {
	if inv.Quantity >= inv.MinStockLevel {
		return nil
	}
	return &Draft{
		Title: "Low Stock Alert",
		Message: fmt.Sprintf("%s (SKU: %s) is running low: %d units in stock, minimum is %d",
			p.Name, p.SKU, inv.Quantity, inv.MinStockLevel),
		Type:   model.NotificationWarning,
		Entity: model.NewEntityRef(model.EntityInventory, inv.ID),
	}
}

// InventoryAdjusted fires when an updated inventory row ends up strictly
// below its minimum. The caller evaluates it against the merged post-update
// row, so unsupplied fields keep their pre-update values.
func InventoryAdjusted(inv *model.Inventory, p ProductInfo) *Draft {
	if inv.Quantity >= inv.MinStockLevel {
		return nil
	}
	return &Draft{
		Title: "Low Stock Alert",
		Message: fmt.Sprintf("%s is running low: %d units in stock, minimum is %d",
			p.Name, inv.Quantity, inv.MinStockLevel),
		Type:   model.NotificationWarning,
		Entity: model.NewEntityRef(model.EntityInventory, inv.ID),
	}
}
