package dto

import (
	"strings"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/pkg/apperrors"
)

type CreateNotificationInput struct {
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       model.NotificationType `json:"type"`
	EntityType *model.EntityType      `json:"entity_type"`
	EntityID   *int64                 `json:"entity_id"`
}

func (in *CreateNotificationInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return apperrors.NewValidation("title", "must not be empty")
	}
	if strings.TrimSpace(in.Message) == "" {
		return apperrors.NewValidation("message", "must not be empty")
	}
	if !in.Type.Valid() {
		return apperrors.NewValidation("type", "must be one of info, warning, error, success")
	}
	// entity_type and entity_id travel together or not at all.
	if (in.EntityType == nil) != (in.EntityID == nil) {
		return apperrors.NewValidation("entity_type", "entity_type and entity_id must both be set or both be omitted")
	}
	if in.EntityType != nil && !in.EntityType.Valid() {
		return apperrors.NewValidation("entity_type", "must be one of task, product, inventory, customer")
	}
	return nil
}

// EntityRef builds the tagged reference the input describes.
func (in *CreateNotificationInput) EntityRef() model.EntityRef {
	if in.EntityType == nil || in.EntityID == nil {
		return model.EntityRef{}
	}
	return model.NewEntityRef(*in.EntityType, *in.EntityID)
}
