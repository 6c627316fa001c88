package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusRefunded  = "refunded"
	OrderStatusFailed    = "failed"
)

// Order records a purchase. ModelType is copied from the product at order
// time so reporting stays stable when products are re-tagged later.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"type:varchar(40);uniqueIndex;not null" json:"orderNumber"`
	CustomerID  uint            `gorm:"not null;index" json:"customerId" validate:"required"`
	ProductID   uint            `gorm:"not null;index" json:"productId" validate:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(20);default:'pending';index" json:"status" validate:"oneof=pending completed refunded failed"`
	ModelType   string          `gorm:"type:varchar(30);index" json:"modelType" validate:"max=30"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (o *Order) Validate() error {
	v := validator.New()

	return v.Struct(o)
}

// NewOrderNumber generates a short human-pasteable order reference.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
