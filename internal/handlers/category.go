// internal/handlers/category.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/ecommerce-backend/internal/services"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to retrieve categories")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to retrieve category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"category": category,
	})
}

// POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create category")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"category": category,
	})
}

// PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to update category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"category": category,
	})
}

// DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete category")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Category deleted successfully",
	})
}
