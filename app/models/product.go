package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// Product is a sellable item tagged with the billing-model type that was
// selected when it was created. The tag drives which fields are required;
// it is not a live reference to a BillingModel row.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SKU         string `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required,max=100"`
	Name        string `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Description string `gorm:"type:text" json:"description" validate:"max=2000"`
	Category    string `gorm:"type:varchar(50)" json:"category" validate:"max=50"`
	Status      string `gorm:"type:varchar(20);default:'active';index" json:"status" validate:"oneof=active inactive draft"`
	ModelType   string `gorm:"type:varchar(30);index" json:"modelType" validate:"max=30"`

	// One-time purchase pricing.
	Price        decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"price"`
	ComparePrice decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"comparePrice"`

	// Credit model pricing.
	CreditsRequired *int                `gorm:"type:int" json:"creditsRequired"`
	RateOverride    decimal.NullDecimal `gorm:"type:decimal(12,4)" json:"rateOverride"`

	// Usage model pricing.
	BaseFee     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"baseFee"`
	PerUnitRate decimal.NullDecimal `gorm:"type:decimal(12,4)" json:"perUnitRate"`

	// Fulfillment carries the one-time delivery/licensing/payment/refund
	// sub-fields as a JSON blob, same shape as a configuration section set.
	Fulfillment string `gorm:"type:json" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// Draft flattens the product into the field map consumed by the rule
// engine's required-field resolver. Unset optionals map to nil so the
// resolver sees them as missing.
func (p *Product) Draft() map[string]any {
	draft := map[string]any{
		"name":        p.Name,
		"sku":         p.SKU,
		"description": p.Description,
		"category":    p.Category,
		"status":      p.Status,
	}
	if p.Price.Valid {
		draft["price"] = p.Price.Decimal.String()
	}
	if p.ComparePrice.Valid {
		draft["comparePrice"] = p.ComparePrice.Decimal.String()
	}
	if p.CreditsRequired != nil {
		draft["creditsRequired"] = *p.CreditsRequired
	}
	if p.RateOverride.Valid {
		draft["rateOverride"] = p.RateOverride.Decimal.String()
	}
	if p.BaseFee.Valid {
		draft["baseFee"] = p.BaseFee.Decimal.String()
	}
	if p.PerUnitRate.Valid {
		draft["perUnitRate"] = p.PerUnitRate.Decimal.String()
	}
	return draft
}

// FulfillmentMap decodes the fulfillment blob; empty or invalid content
// yields an empty map.
func (p *Product) FulfillmentMap() billingmodel.Configuration {
	config := billingmodel.Configuration{}
	if p.Fulfillment == "" {
		return config
	}
	if err := json.Unmarshal([]byte(p.Fulfillment), &config); err != nil {
		return billingmodel.Configuration{}
	}
	return config
}

// SetFulfillment encodes and stores the fulfillment blob.
func (p *Product) SetFulfillment(config billingmodel.Configuration) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return err
	}
	p.Fulfillment = string(raw)
	return nil
}
