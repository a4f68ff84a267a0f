package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customerApp "weiyue/internal/application/customer"
	customerdto "weiyue/internal/application/customer/dto"
	"weiyue/internal/shared/errors"
	"weiyue/internal/shared/utils"
)

type CustomerService interface {
	Get(ctx context.Context, id string) (*customerdto.CustomerDTO, error)
	List(ctx context.Context, q customerApp.ListQuery) (*customerdto.ListCustomersResult, error)
	ListDefaulted(ctx context.Context) ([]*customerdto.CustomerDTO, error)
}

type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	p := utils.ParsePagination(c)
	q := customerApp.ListQuery{
		Name:     c.Query("customer_name"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if raw := c.Query("is_default"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("is_default must be true or false"))
			return
		}
		q.Defaulted = &v
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}

// ListDefaulted handles GET /api/customers/defaulted
func (h *CustomerHandler) ListDefaulted(c *gin.Context) {
	result, err := h.service.ListDefaulted(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCustomer handles GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
