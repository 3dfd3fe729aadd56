// internal/services/customer_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	customers  *CustomerService
	categories *CategoryService
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.customers = NewCustomerService(s.db)
	s.categories = NewCategoryService(s.db)
}

func (s *CustomerServiceTestSuite) TestCustomerLifecycle() {
	customer, err := s.customers.CreateCustomer(&CreateCustomerRequest{
		Name:  "Bob Mercer",
		Email: "bob@example.com",
		City:  "Porto",
	})
	s.Require().NoError(err)
	s.NotZero(customer.ID)

	city := "Braga"
	updated, err := s.customers.UpdateCustomer(customer.ID, &UpdateCustomerRequest{City: &city})
	s.Require().NoError(err)
	s.Equal("Braga", updated.City)
	s.Equal("bob@example.com", updated.Email)

	all, err := s.customers.GetCustomers()
	s.Require().NoError(err)
	s.Len(all, 1)

	s.Require().NoError(s.customers.DeleteCustomer(customer.ID))
	_, err = s.customers.GetCustomer(customer.ID)
	s.Require().Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *CustomerServiceTestSuite) TestCreateCustomerValidation() {
	_, err := s.customers.CreateCustomer(&CreateCustomerRequest{Name: "No Email"})
	s.Require().Error(err)
	s.Contains(err.Error(), "validation failed")

	_, err = s.customers.CreateCustomer(&CreateCustomerRequest{Name: "Bad Email", Email: "nope"})
	s.Require().Error(err)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomerNotFound() {
	name := "Nobody"
	_, err := s.customers.UpdateCustomer(404, &UpdateCustomerRequest{Name: &name})
	s.Require().Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *CustomerServiceTestSuite) TestCategoryLifecycle() {
	category, err := s.categories.CreateCategory(&CreateCategoryRequest{Name: "Outdoors"})
	s.Require().NoError(err)

	name := "Outdoor & Garden"
	updated, err := s.categories.UpdateCategory(category.ID, &UpdateCategoryRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal("Outdoor & Garden", updated.Name)

	s.Require().NoError(s.categories.DeleteCategory(category.ID))
	s.Require().Error(s.categories.DeleteCategory(category.ID))
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
