package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/averine/opshub-service/internal/customer"
	"github.com/averine/opshub-service/internal/customer/dto"
	"github.com/averine/opshub-service/internal/model"
	"github.com/averine/opshub-service/pkg/httpapi"
	"github.com/averine/opshub-service/pkg/logger"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/createCustomer", h.CreateCustomer)
	rg.POST("/getCustomers", h.GetCustomers)
	rg.POST("/getCustomerById", h.GetCustomerByID)
	rg.POST("/updateCustomer", h.UpdateCustomer)
	rg.POST("/deleteCustomer", h.DeleteCustomer)
}

type idRequest struct {
	ID int64 `json:"id"`
}

type customerResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     *string              `json:"phone"`
	Address   *string              `json:"address"`
	Company   *string              `json:"company"`
	Status    model.CustomerStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func toCustomerResponse(c *model.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Company:   c.Company,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input dto.CreateCustomerInput
	if !httpapi.Bind(c, &input) {
		return
	}

	cust, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to create customer", err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(cust))
}

func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	var filters dto.CustomerFilters
	if !httpapi.BindOptional(c, &filters) {
		return
	}

	customers, err := h.uc.ListCustomers(c.Request.Context(), &filters)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to list customers", err)
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	cust, err := h.uc.GetCustomer(c.Request.Context(), req.ID)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to get customer", err)
		return
	}
	if cust == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(cust))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var input dto.UpdateCustomerInput
	if !httpapi.Bind(c, &input) {
		return
	}

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		httpapi.Error(c, h.logger, "failed to update customer", err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(cust))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	var req idRequest
	if !httpapi.Bind(c, &req) {
		return
	}

	if err := h.uc.DeleteCustomer(c.Request.Context(), req.ID); err != nil {
		httpapi.Error(c, h.logger, "failed to delete customer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
