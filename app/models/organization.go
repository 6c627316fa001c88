package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Organization holds the merchant profile captured by the onboarding
// wizard. The deployment is single-tenant, so at most one row is expected.
type Organization struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	BusinessType string    `gorm:"type:varchar(50)" json:"businessType" validate:"max=50"`
	Currency     string    `gorm:"type:varchar(3);default:'USD'" json:"currency" validate:"max=3"`
	Country      string    `gorm:"type:varchar(2)" json:"country" validate:"max=2"`
	LogoURL      string    `gorm:"type:varchar(255)" json:"logoUrl" validate:"max=255"`
	Onboarded    bool      `gorm:"default:false" json:"onboarded"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (o *Organization) Validate() error {
	v := validator.New()

	return v.Struct(o)
}
