package repository

import (
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// billingModelRepository implements the BillingModelRepository interface
type billingModelRepository struct {
	db *gorm.DB
}

// NewBillingModelRepository creates a new billing model repository instance
func NewBillingModelRepository(db *gorm.DB) BillingModelRepository {
	return &billingModelRepository{db: db}
}

func (r *billingModelRepository) Create(model *models.BillingModel) error {
	return r.db.Create(model).Error
}

func (r *billingModelRepository) GetByID(id uint) (*models.BillingModel, error) {
	var model models.BillingModel
	if err := r.db.First(&model, id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *billingModelRepository) GetAll() ([]models.BillingModel, error) {
	var list []models.BillingModel
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *billingModelRepository) GetByType(modelType string) ([]models.BillingModel, error) {
	var list []models.BillingModel
	err := r.db.Where("type = ?", modelType).Order("id").Find(&list).Error
	return list, err
}

func (r *billingModelRepository) Update(model *models.BillingModel) error {
	return r.db.Save(model).Error
}

// UpdateConfiguration loads the row, merges the partial through the rule
// engine's per-section shallow merge and writes the result back. Runs in a
// transaction so concurrent saves can't interleave read-modify-write.
func (r *billingModelRepository) UpdateConfiguration(id uint, partial billingmodel.Configuration) (*models.BillingModel, error) {
	var model models.BillingModel
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			return err
		}
		schema := billingmodel.ResolveSchema(model.ModelType())
		merged, _ := billingmodel.MergeConfiguration(model.ConfigurationMap(), partial, schema)
		if err := model.SetConfiguration(merged); err != nil {
			return err
		}
		return tx.Model(&model).Update("configuration", model.Configuration).Error
	})
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (r *billingModelRepository) Delete(id uint) error {
	result := r.db.Delete(&models.BillingModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *billingModelRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BillingModel{}).Count(&count).Error
	return count, err
}
