// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	SKU        string  `json:"sku" validate:"required,max=100"`
	Name       string  `json:"name" validate:"required,max=255"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	CategoryID int     `json:"category_id" validate:"required"`
	Active     *bool   `json:"active,omitempty"`
}

type UpdateProductRequest struct {
	SKU        *string  `json:"sku,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID *int     `json:"category_id,omitempty"`
	Active     *bool    `json:"active,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").Preload("Inventory").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &models.Product{
		SKU:        req.SKU,
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Active:     active,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id int, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, errors.New("product not found")
		}
	}

	return s.GetProduct(id)
}

func (s *ProductService) DeleteProduct(id int) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}

	return nil
}
