package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// BillingModel is a catalog entry the merchant can activate into their
// working set. The catalog itself is read-only in the UI; rows are seeded
// by migrations and edited through the admin API.
type BillingModel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Type          string    `gorm:"type:varchar(30);not null;index" json:"type" validate:"required,max=30"`
	Description   string    `gorm:"type:text" json:"description" validate:"max=1000"`
	Icon          string    `gorm:"type:varchar(50)" json:"icon" validate:"max=50"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	Configuration string    `gorm:"type:json" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (m *BillingModel) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

// ModelType returns the typed tag used by the rule engine.
func (m *BillingModel) ModelType() billingmodel.ModelType {
	return billingmodel.ModelType(m.Type)
}

// ConfigurationMap decodes the stored configuration blob. An empty or
// invalid column yields an empty configuration rather than an error, since
// older rows predate the configuration feature.
func (m *BillingModel) ConfigurationMap() billingmodel.Configuration {
	config := billingmodel.Configuration{}
	if m.Configuration == "" {
		return config
	}
	if err := json.Unmarshal([]byte(m.Configuration), &config); err != nil {
		return billingmodel.Configuration{}
	}
	return config
}

// SetConfiguration encodes and stores a configuration blob.
func (m *BillingModel) SetConfiguration(config billingmodel.Configuration) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return err
	}
	m.Configuration = string(raw)
	return nil
}
