// internal/handlers/order.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/services"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to retrieve orders")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to retrieve order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid order status") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		// Any constraint violation or store fault rolled the whole order back.
		utils.InternalErrorResponse(c, "Failed to create order")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}

// PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.UpdateOrder(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		if strings.Contains(err.Error(), "invalid order status") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to update order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	order, err := h.orderService.SetStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		if strings.Contains(err.Error(), "invalid order status") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to update order status")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PUT /orders/:id/ship
func (h *OrderHandler) ShipOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.ShipOrder(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to ship order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PUT /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.CancelOrder(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to cancel order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete order")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Order deleted successfully",
	})
}
