package repository

import (
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
)

// customerRepository implements the CustomerRepository interface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Preload("Orders").First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(offset, limit int) ([]models.Customer, error) {
	var list []models.Customer
	tx := r.db.Order("id")
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	err := tx.Find(&list).Error
	return list, err
}

func (r *customerRepository) Search(query string) ([]models.Customer, error) {
	like := "%" + query + "%"
	var list []models.Customer
	err := r.db.Where("name LIKE ? OR email LIKE ?", like, like).Order("id").Find(&list).Error
	return list, err
}

// Update writes the customer row only; the preloaded orders relation is
// never written back.
func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Omit("Orders").Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
