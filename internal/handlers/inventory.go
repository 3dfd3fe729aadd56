// internal/handlers/inventory.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/ecommerce-backend/internal/services"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GET /inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	inventory, err := h.inventoryService.GetInventory()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to retrieve inventory")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"inventory": inventory,
	})
}

// GET /inventory/:productId
func (h *InventoryHandler) GetInventoryByProductID(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	inventory, err := h.inventoryService.GetInventoryByProductID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Inventory record not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to retrieve inventory")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"inventory": inventory,
	})
}

// POST /inventory
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req services.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	inventory, err := h.inventoryService.CreateInventory(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create inventory record")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"inventory": inventory,
	})
}

// PUT /inventory/:productId
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(productID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Inventory record not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update inventory")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"inventory": inventory,
	})
}

// DELETE /inventory/:productId
func (h *InventoryHandler) DeleteInventory(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.inventoryService.DeleteInventory(productID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Inventory record not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete inventory record")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Inventory record deleted successfully",
	})
}
