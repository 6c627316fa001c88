package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer is a buyer record. TotalSpent is denormalized from orders for
// the list view; the orders relation is the source of truth.
type Customer struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	Name       string              `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Email      string              `gorm:"type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,email,max=200"`
	Status     string              `gorm:"type:varchar(20);default:'active'" json:"status" validate:"oneof=active inactive"`
	TotalSpent decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"totalSpent"`
	Orders     []Order             `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt  time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (c *Customer) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
