package dto

import (
	"time"

	"github.com/averine/opshub-service/internal/model"
)

type TaskFilters struct {
	Status   *model.TaskStatus   `json:"status"`
	Priority *model.TaskPriority `json:"priority"`
	DueFrom  *time.Time          `json:"due_from"`
	DueTo    *time.Time          `json:"due_to"`
}
