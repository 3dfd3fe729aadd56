// internal/models/inventory.go
package models

// Inventory is one-to-one with Product; product_id doubles as the primary key.
// Stock is independent of order quantities: order creation never reserves or
// decrements it.
type Inventory struct {
	ProductID int `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Stock     int `json:"stock" gorm:"not null;default:0"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Inventory) TableName() string {
	return "inventory"
}
