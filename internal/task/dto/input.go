package dto

import (
	"strings"
	"time"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/pkg/apperrors"
	"github.com/averine/opshub-service/pkg/optional"
)

type CreateTaskInput struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      model.TaskStatus   `json:"status"`
	Priority    model.TaskPriority `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
}

// Validate rejects malformed input and applies creation defaults, so the
// record handed to the store (and to the rules engine) is fully defaulted.
func (in *CreateTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return apperrors.NewValidation("title", "must not be empty")
	}
	if in.Status == "" {
		in.Status = model.TaskStatusPending
	}
	if !in.Status.Valid() {
		return apperrors.NewValidation("status", "must be one of pending, in_progress, completed, cancelled")
	}
	if in.Priority == "" {
		in.Priority = model.TaskPriorityMedium
	}
	if !in.Priority.Valid() {
		return apperrors.NewValidation("priority", "must be one of low, medium, high, urgent")
	}
	return nil
}

type UpdateTaskInput struct {
	ID          int64                              `json:"id"`
	Title       optional.Field[string]             `json:"title"`
	Description optional.Field[string]             `json:"description"`
	Status      optional.Field[model.TaskStatus]   `json:"status"`
	Priority    optional.Field[model.TaskPriority] `json:"priority"`
	DueDate     optional.Field[time.Time]          `json:"due_date"`
}

func (in *UpdateTaskInput) Validate() error {
	if in.ID <= 0 {
		return apperrors.NewValidation("id", "is required")
	}
	if in.Title.Present && (!in.Title.Valid || strings.TrimSpace(in.Title.Value) == "") {
		return apperrors.NewValidation("title", "must not be empty")
	}
	if in.Status.Present && (!in.Status.Valid || !in.Status.Value.Valid()) {
		return apperrors.NewValidation("status", "must be one of pending, in_progress, completed, cancelled")
	}
	if in.Priority.Present && (!in.Priority.Valid || !in.Priority.Value.Valid()) {
		return apperrors.NewValidation("priority", "must be one of low, medium, high, urgent")
	}
	return nil
}
