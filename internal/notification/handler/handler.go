package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/notification"
	"github.com/averine/opshub-service/internal/notification/dto"
	"github.com/averine/opshub-service/pkg/httpapi"
	"github.com/averine/opshub-service/pkg/logger"
)

type NotificationHandler struct {
	uc     notification.UseCase
	logger logger.ZapLogger
}

func NewNotificationHandler(uc notification.UseCase, log logger.ZapLogger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/createNotification", h.CreateNotification)
	rg.POST("/getNotifications", h.GetNotifications)
	rg.POST("/getUnreadNotificationsCount", h.GetUnreadCount)
	rg.POST("/markNotificationRead", h.MarkRead)
	rg.POST("/markAllNotificationsRead", h.MarkAllRead)
}

type idRequest struct {
	ID int64 `json:"id"`
}

// The soft reference flattens back to two nullable fields on the wire.
type notificationResponse struct {
	ID         int64                  `json:"id"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       model.NotificationType `json:"type"`
	Read       bool                   `json:"read"`
	EntityType *model.EntityType      `json:"entity_type"`
	EntityID   *int64                 `json:"entity_id"`
	CreatedAt  time.Time              `json:"created_at"`
}

func toNotificationResponse(n *model.Notification) notificationResponse {
	resp := notificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if !n.Entity.IsZero() {
		entityType := n.Entity.Type
		entityID := n.Entity.ID
		resp.EntityType = &entityType
		resp.EntityID = &entityID
	}
	return resp
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var input dto.CreateNotificationInput
	if !httpapi.Bind(c, &input) {
		return
	}

	n, err := h.uc.CreateNotification(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to create notification", err)
		return
	}
	c.JSON(http.StatusCreated, toNotificationResponse(n))
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.uc.ListNotifications(c.Request.Context())
	if err != nil {
		httpapi.Error(c, h.logger, "failed to list notifications", err)
		return
	}

	out := make([]notificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, toNotificationResponse(&notifications[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.uc.CountUnread(c.Request.Context())
	if err != nil {
		httpapi.Error(c, h.logger, "failed to count unread notifications", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	n, err := h.uc.MarkRead(c.Request.Context(), req.ID)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to mark notification read", err)
		return
	}
	c.JSON(http.StatusOK, toNotificationResponse(n))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.uc.MarkAllRead(c.Request.Context()); err != nil {
		httpapi.Error(c, h.logger, "failed to mark all notifications read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
