// internal/handlers/customer.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/ecommerce-backend/internal/services"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GET /customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.customerService.GetCustomers()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to retrieve customers")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"customers": customers,
	})
}

// GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID", nil)
		return
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Customer not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to retrieve customer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"customer": customer,
	})
}

// POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	customer, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create customer")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"customer": customer,
	})
}

// PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID", nil)
		return
	}

	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Customer not found")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to update customer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"customer": customer,
	})
}

// DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID", nil)
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Customer not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete customer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Customer deleted successfully",
	})
}
