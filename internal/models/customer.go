// internal/models/customer.go
package models

type Customer struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Email string `json:"email" gorm:"size:255;not null;index"`
	City  string `json:"city" gorm:"size:255"`

	// Relationships
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
