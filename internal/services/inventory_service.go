// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type InventoryService struct {
	db *gorm.DB
}

type CreateInventoryRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Stock     int `json:"stock" validate:"min=0"`
}

type UpdateInventoryRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) GetInventory() ([]models.Inventory, error) {
	var inventory []models.Inventory
	if err := s.db.Preload("Product").
		Select("inventory.*").
		Joins("LEFT JOIN products ON products.id = inventory.product_id").
		Order("products.name ASC").
		Find(&inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	return inventory, nil
}

func (s *InventoryService) GetInventoryByProductID(productID int) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := s.db.Preload("Product").
		First(&inventory, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("inventory record not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &inventory, nil
}

func (s *InventoryService) CreateInventory(req *CreateInventoryRequest) (*models.Inventory, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	inventory := &models.Inventory{
		ProductID: req.ProductID,
		Stock:     req.Stock,
	}

	if err := s.db.Create(inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to create inventory record: %w", err)
	}

	return inventory, nil
}

func (s *InventoryService) UpdateInventory(productID int, req *UpdateInventoryRequest) (*models.Inventory, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := s.db.Model(&models.Inventory{}).
		Where("product_id = ?", productID).
		Update("stock", req.Stock)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("inventory record not found")
	}

	return s.GetInventoryByProductID(productID)
}

func (s *InventoryService) DeleteInventory(productID int) error {
	result := s.db.Delete(&models.Inventory{}, "product_id = ?", productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("inventory record not found")
	}

	return nil
}
