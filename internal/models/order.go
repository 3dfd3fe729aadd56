// internal/models/order.go
package models

import "time"

// Order is the order header. Its line items are created together with it in a
// single transaction and are removed by FK cascade when the header is deleted.
type Order struct {
	ID              int         `json:"id" gorm:"primaryKey"`
	CustomerID      int         `json:"customer_id" gorm:"not null;index"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time   `json:"created_at"`
	ShippedAt       *time.Time  `json:"shipped_at"`
	ShippingAddress JSONB       `json:"shipping_address" gorm:"type:jsonb"`

	// Relationships
	Customer *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items    []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Price is a snapshot of the unit price at
// order time; it never tracks later Product.Price changes. LineNo records the
// position of the line in the submitted order, so reads return lines as they
// were sent rather than in key order.
type OrderItem struct {
	OrderID   int     `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID int     `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	LineNo    int     `json:"line_no" gorm:"not null"`
	Qty       int     `json:"qty" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
