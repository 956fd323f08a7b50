package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/internal/product"
	"github.com/averine/opshub-service/internal/product/dto"
	"github.com/averine/opshub-service/pkg/httpapi"
	"github.com/averine/opshub-service/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/createProduct", h.CreateProduct)
	rg.POST("/getProducts", h.GetProducts)
	rg.POST("/getProductById", h.GetProductByID)
	rg.POST("/updateProduct", h.UpdateProduct)
	rg.POST("/deleteProduct", h.DeleteProduct)
}

type idRequest struct {
	ID int64 `json:"id"`
}

// Price crosses the wire as a quoted decimal string, never a float.
type productResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Category    *string         `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toProductResponse(p *model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input dto.CreateProductInput
	if !httpapi.Bind(c, &input) {
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	var filters dto.ProductFilters
	if !httpapi.BindOptional(c, &filters) {
		return
	}

	products, err := h.uc.ListProducts(c.Request.Context(), &filters)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to list products", err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), req.ID)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to get product", err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input dto.UpdateProductInput
	if !httpapi.Bind(c, &input) {
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), req.ID); err != nil {
		httpapi.Error(c, h.logger, "failed to delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
