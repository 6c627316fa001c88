package repository

import (
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(offset, limit int) ([]models.Product, error) {
	var list []models.Product
	tx := r.db.Order("id")
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	err := tx.Find(&list).Error
	return list, err
}

// Search filters by free-text name/sku match plus optional category and
// status, mirroring the product list view's filter bar.
func (r *productRepository) Search(query, category, status string) ([]models.Product, error) {
	tx := r.db.Model(&models.Product{})
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var list []models.Product
	err := tx.Order("id").Find(&list).Error
	return list, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}
