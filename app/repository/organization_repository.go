package repository

import (
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
)

// organizationRepository implements the OrganizationRepository interface
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository instance
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Get returns the merchant profile. Single-tenant deployment: the first
// row is the profile.
func (r *organizationRepository) Get() (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) Save(org *models.Organization) error {
	return r.db.Save(org).Error
}
