// internal/models/product.go
package models

import "time"

type Product struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	SKU        string    `json:"sku" gorm:"column:sku;size:100;uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Price      float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID int       `json:"category_id" gorm:"not null;index"`
	Active     bool      `json:"active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Category  *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Inventory *Inventory `json:"inventory,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}
