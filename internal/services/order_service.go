// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/database"
	"github.com/storefront/ecommerce-backend/internal/models"
	"github.com/storefront/ecommerce-backend/internal/utils"
)

// OrderService owns the order lifecycle: atomic creation of the order header
// together with its line items, and every status transition thereafter.
type OrderService struct {
	db *gorm.DB
}

type CreateOrderRequest struct {
	CustomerID      int                      `json:"customer_id" validate:"required"`
	Status          models.OrderStatus       `json:"status,omitempty"`
	ShippingAddress map[string]interface{}   `json:"shipping_address,omitempty"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderItemRequest struct {
	ProductID int     `json:"product_id" validate:"required"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required"`
}

type UpdateOrderRequest struct {
	Status          *models.OrderStatus    `json:"status,omitempty"`
	ShippedAt       *time.Time             `json:"shipped_at,omitempty"`
	ShippingAddress map[string]interface{} `json:"shipping_address,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// withOrderRelations preloads the customer and the line items, items in the
// position they were submitted.
func withOrderRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_no ASC")
	})
}

// CreateOrder inserts the order header and all line items in one transaction.
// Either every row becomes visible or none does; the commit is the durability
// boundary, the joined re-read afterwards is best-effort presentation.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	shippingAddress := models.JSONB(req.ShippingAddress)
	if shippingAddress == nil {
		shippingAddress = models.JSONB{}
	}

	order := &models.Order{
		CustomerID:      req.CustomerID,
		Status:          status,
		ShippingAddress: shippingAddress,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order header: %w", err)
		}

		items := make([]models.OrderItem, len(req.Items))
		for i, item := range req.Items {
			items[i] = models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				LineNo:    i + 1,
				Qty:       item.Qty,
				Price:     item.Price,
			}
		}

		// One batched insert for all lines, in request order.
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Reload with relationships; a failure here is presentation-only, the
	// commit already happened.
	if err := withOrderRelations(s.db).First(order, order.ID).Error; err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Warn("Failed to reload order after creation")
	}

	return order, nil
}

func (s *OrderService) GetOrder(id int) (*models.Order, error) {
	var order models.Order
	if err := withOrderRelations(s.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &order, nil
}

func (s *OrderService) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := withOrderRelations(s.db).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// ShipOrder marks the order shipped in a single update. The first ship wins
// the timestamp: re-shipping keeps the original shipped_at.
func (s *OrderService) ShipOrder(id int) (*models.Order, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.OrderStatusShipped,
		"shipped_at": gorm.Expr("COALESCE(shipped_at, ?)", time.Now()),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to ship order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("order not found")
	}

	return s.GetOrder(id)
}

// CancelOrder sets status=cancelled regardless of the current status. A
// shipped_at stamped by an earlier ship is deliberately left in place.
func (s *OrderService) CancelOrder(id int) (*models.Order, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", models.OrderStatusCancelled)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("order not found")
	}

	return s.GetOrder(id)
}

// SetStatus overwrites the order status. All four statuses stay reachable for
// operational use; transitions outside the lifecycle table are logged, not
// rejected.
func (s *OrderService) SetStatus(id int, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	var current models.Order
	if err := s.db.Select("id", "status").First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	s.warnOffTableTransition(id, current.Status, status)

	if err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return s.GetOrder(id)
}

// UpdateOrder applies a partial update; omitted fields are left unchanged.
// created_at is never touched.
func (s *OrderService) UpdateOrder(id int, req *UpdateOrderRequest) (*models.Order, error) {
	var current models.Order
	if err := s.db.Select("id", "status").First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid order status: %s", *req.Status)
		}
		s.warnOffTableTransition(id, current.Status, *req.Status)
		updates["status"] = *req.Status
	}
	if req.ShippedAt != nil {
		updates["shipped_at"] = *req.ShippedAt
	}
	if req.ShippingAddress != nil {
		updates["shipping_address"] = models.JSONB(req.ShippingAddress)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Order{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	return s.GetOrder(id)
}

// DeleteOrder hard-deletes the header; line items go with it via the
// order_items.order_id ON DELETE CASCADE constraint.
func (s *OrderService) DeleteOrder(id int) error {
	result := s.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}

func (s *OrderService) warnOffTableTransition(id int, from, to models.OrderStatus) {
	if !from.CanTransitionTo(to) {
		logrus.WithFields(logrus.Fields{
			"order_id": id,
			"from":     from,
			"to":       to,
		}).Warn("Order status transition outside lifecycle table")
	}
}
