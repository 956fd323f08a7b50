package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/averine/opshub-service/internal/inventory"
	"github.com/averine/opshub-service/internal/inventory/dto"
	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/pkg/httpapi"
	"github.com/averine/opshub-service/pkg/logger"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/createInventory", h.CreateInventory)
	rg.POST("/getInventory", h.GetInventory)
	rg.POST("/getInventoryById", h.GetInventoryByID)
	rg.POST("/updateInventory", h.UpdateInventory)
	rg.POST("/deleteInventory", h.DeleteInventory)
}

type idRequest struct {
	ID int64 `json:"id"`
}

type inventoryResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	MinStockLevel int64     `json:"min_stock_level"`
	MaxStockLevel int64     `json:"max_stock_level"`
	Location      *string   `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdated   time.Time `json:"last_updated"`
}

func toInventoryResponse(inv *model.Inventory) inventoryResponse {
	return inventoryResponse{
		ID:            inv.ID,
		ProductID:     inv.ProductID,
		Quantity:      inv.Quantity,
		MinStockLevel: inv.MinStockLevel,
		MaxStockLevel: inv.MaxStockLevel,
		Location:      inv.Location,
		CreatedAt:     inv.CreatedAt,
		LastUpdated:   inv.LastUpdated,
	}
}

func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var input dto.CreateInventoryInput
	if !httpapi.Bind(c, &input) {
		return
	}

	inv, err := h.uc.CreateInventory(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to create inventory", err)
		return
	}
	c.JSON(http.StatusCreated, toInventoryResponse(inv))
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	var filters dto.InventoryFilters
	if !httpapi.BindOptional(c, &filters) {
		return
	}

	items, err := h.uc.ListInventory(c.Request.Context(), &filters)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to list inventory", err)
		return
	}

	out := make([]inventoryResponse, 0, len(items))
	for i := range items {
		out = append(out, toInventoryResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) GetInventoryByID(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	inv, err := h.uc.GetInventory(c.Request.Context(), req.ID)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to get inventory", err)
		return
	}
	if inv == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(inv))
}

func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	var input dto.UpdateInventoryInput
	if !httpapi.Bind(c, &input) {
		return
	}

	inv, err := h.uc.UpdateInventory(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to update inventory", err)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(inv))
}

func (h *InventoryHandler) DeleteInventory(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	if err := h.uc.DeleteInventory(c.Request.Context(), req.ID); err != nil {
		httpapi.Error(c, h.logger, "failed to delete inventory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
