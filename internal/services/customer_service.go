// internal/services/customer_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

type CustomerService struct {
	db *gorm.DB
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	City  string `json:"city,omitempty" validate:"max=255"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	City  *string `json:"city,omitempty"`
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) GetCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return customers, nil
}

func (s *CustomerService) GetCustomer(id int) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("customer not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &customer, nil
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer := &models.Customer{
		Name:  req.Name,
		Email: req.Email,
		City:  req.City,
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) UpdateCustomer(id int, req *UpdateCustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.City != nil {
		updates["city"] = *req.City
	}

	if len(updates) > 0 {
		result := s.db.Model(&models.Customer{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update customer: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, errors.New("customer not found")
		}
	}

	return s.GetCustomer(id)
}

func (s *CustomerService) DeleteCustomer(id int) error {
	result := s.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("customer not found")
	}

	return nil
}
