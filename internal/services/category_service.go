// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(id int) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{Name: req.Name}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) UpdateCategory(id int, req *UpdateCategoryRequest) (*models.Category, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, errors.New("category not found")
		}
	}

	return s.GetCategory(id)
}

func (s *CategoryService) DeleteCategory(id int) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("category not found")
	}

	return nil
}
