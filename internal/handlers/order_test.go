// internal/handlers/order_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront/ecommerce-backend/internal/database"
	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/services"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(db))
	s.db = db

	s.Require().NoError(db.Create(&models.Customer{ID: 1, Name: "Alice Johnson", Email: "alice@example.com"}).Error)
	s.Require().NoError(db.Create(&models.Category{ID: 1, Name: "Electronics"}).Error)
	s.Require().NoError(db.Create(&[]models.Product{
		{ID: 10, SKU: "SKU-10", Name: "Keyboard", Price: 9.99, CategoryID: 1, Active: true},
		{ID: 11, SKU: "SKU-11", Name: "Mouse", Price: 4.50, CategoryID: 1, Active: true},
	}).Error)

	handler := NewOrderHandler(services.NewOrderService(db))

	s.router = gin.New()
	orders := s.router.Group("/api/orders")
	{
		orders.GET("", handler.GetOrders)
		orders.GET("/:id", handler.GetOrder)
		orders.POST("", handler.CreateOrder)
		orders.PUT("/:id", handler.UpdateOrder)
		orders.PUT("/:id/status", handler.UpdateOrderStatus)
		orders.PUT("/:id/ship", handler.ShipOrder)
		orders.PUT("/:id/cancel", handler.CancelOrder)
		orders.DELETE("/:id", handler.DeleteOrder)
	}
}

func (s *OrderHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *OrderHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (s *OrderHandlerTestSuite) createOrder() int {
	w := s.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 10, "qty": 2, "price": 9.99},
			{"product_id": 11, "qty": 1, "price": 4.50},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	response := s.decode(w)
	order := response["data"].(map[string]interface{})["order"].(map[string]interface{})
	return int(order["id"].(float64))
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	w := s.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 10, "qty": 2, "price": 9.99},
			{"product_id": 11, "qty": 1, "price": 4.50},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	response := s.decode(w)
	s.True(response["success"].(bool))

	order := response["data"].(map[string]interface{})["order"].(map[string]interface{})
	s.Equal("pending", order["status"])
	s.Nil(order["shipped_at"])

	items := order["items"].([]interface{})
	s.Require().Len(items, 2)
	first := items[0].(map[string]interface{})
	s.Equal(float64(10), first["product_id"])
	s.Equal(float64(2), first["qty"])
	s.Equal(9.99, first["price"])
}

func (s *OrderHandlerTestSuite) TestCreateOrderWithoutItems() {
	w := s.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": 1,
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	response := s.decode(w)
	s.False(response["success"].(bool))
	s.Equal("VALIDATION_ERROR", response["error"].(map[string]interface{})["code"])
}

func (s *OrderHandlerTestSuite) TestCreateOrderUnknownProduct() {
	w := s.request(http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"product_id": 9999, "qty": 1, "price": 1.00},
		},
	})
	s.Require().Equal(http.StatusInternalServerError, w.Code)

	var count int64
	s.Require().NoError(s.db.Model(&models.Order{}).Count(&count).Error)
	s.Equal(int64(0), count)
}

func (s *OrderHandlerTestSuite) TestGetOrderNotFound() {
	w := s.request(http.MethodGet, "/api/orders/999", nil)
	s.Require().Equal(http.StatusNotFound, w.Code)

	response := s.decode(w)
	s.Equal("NOT_FOUND", response["error"].(map[string]interface{})["code"])
}

func (s *OrderHandlerTestSuite) TestGetOrderInvalidID() {
	w := s.request(http.MethodGet, "/api/orders/abc", nil)
	s.Require().Equal(http.StatusBadRequest, w.Code)
}

func (s *OrderHandlerTestSuite) TestShipOrder() {
	id := s.createOrder()

	w := s.request(http.MethodPut, fmt.Sprintf("/api/orders/%d/ship", id), map[string]interface{}{})
	s.Require().Equal(http.StatusOK, w.Code)

	order := s.decode(w)["data"].(map[string]interface{})["order"].(map[string]interface{})
	s.Equal("shipped", order["status"])
	s.NotNil(order["shipped_at"])
}

func (s *OrderHandlerTestSuite) TestShipOrderNotFound() {
	w := s.request(http.MethodPut, "/api/orders/999/ship", map[string]interface{}{})
	s.Require().Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	id := s.createOrder()

	w := s.request(http.MethodPut, fmt.Sprintf("/api/orders/%d/cancel", id), map[string]interface{}{})
	s.Require().Equal(http.StatusOK, w.Code)

	order := s.decode(w)["data"].(map[string]interface{})["order"].(map[string]interface{})
	s.Equal("cancelled", order["status"])
}

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus() {
	id := s.createOrder()

	w := s.request(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), map[string]interface{}{
		"status": "paid",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	order := s.decode(w)["data"].(map[string]interface{})["order"].(map[string]interface{})
	s.Equal("paid", order["status"])
}

func (s *OrderHandlerTestSuite) TestUpdateOrderStatusRejectsUnknownValue() {
	id := s.createOrder()

	w := s.request(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), map[string]interface{}{
		"status": "misplaced",
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)
}

func (s *OrderHandlerTestSuite) TestDeleteOrder() {
	id := s.createOrder()

	w := s.request(http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil)
	s.Require().Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	s.createOrder()
	s.createOrder()

	w := s.request(http.MethodGet, "/api/orders", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	orders := s.decode(w)["data"].(map[string]interface{})["orders"].([]interface{})
	s.Len(orders, 2)
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
