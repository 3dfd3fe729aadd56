// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/ecommerce-backend/internal/services"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to retrieve products")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to retrieve product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to update product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted successfully",
	})
}
