package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/task"
	"github.com/averine/opshub-service/internal/task/dto"
	"github.com/averine/opshub-service/pkg/httpapi"
	"github.com/averine/opshub-service/pkg/logger"
)

type TaskHandler struct {
	uc     task.UseCase
	logger logger.ZapLogger
}

func NewTaskHandler(uc task.UseCase, log logger.ZapLogger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: log,
	}
}

// Register mounts the task procedures.
func (h *TaskHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/createTask", h.CreateTask)
	rg.POST("/getTasks", h.GetTasks)
	rg.POST("/getTaskById", h.GetTaskByID)
	rg.POST("/updateTask", h.UpdateTask)
	rg.POST("/deleteTask", h.DeleteTask)
}

type idRequest struct {
	ID int64 `json:"id"`
}

type taskResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      model.TaskStatus   `json:"status"`
	Priority    model.TaskPriority `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func toTaskResponse(t *model.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input dto.CreateTaskInput
	if !httpapi.Bind(c, &input) {
		return
	}

	t, err := h.uc.CreateTask(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to create task", err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(t))
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	var filters dto.TaskFilters
	if !httpapi.BindOptional(c, &filters) {
		return
	}

	tasks, err := h.uc.ListTasks(c.Request.Context(), &filters)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to list tasks", err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	t, err := h.uc.GetTask(c.Request.Context(), req.ID)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to get task", err)
		return
	}
	if t == nil {
		// Absence is null, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var input dto.UpdateTaskInput
	if !httpapi.Bind(c, &input) {
		return
	}

	t, err := h.uc.UpdateTask(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to update task", err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	if err := h.uc.DeleteTask(c.Request.Context(), req.ID); err != nil {
		httpapi.Error(c, h.logger, "failed to delete task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
