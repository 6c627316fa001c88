package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	if order.OrderNumber == "" {
		order.OrderNumber = models.NewOrderNumber()
	}
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var list []models.Order
	err := r.db.Where("customer_id = ?", customerID).Order("id desc").Find(&list).Error
	return list, err
}

func (r *orderRepository) List(offset, limit int) ([]models.Order, error) {
	var list []models.Order
	tx := r.db.Order("id desc")
	if limit > 0 {
		tx = tx.Offset(offset).Limit(limit)
	}
	err := tx.Find(&list).Error
	return list, err
}

func (r *orderRepository) ListByStatus(status string) ([]models.Order, error) {
	var list []models.Order
	err := r.db.Where("status = ?", status).Order("id desc").Find(&list).Error
	return list, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// TotalRevenue sums completed order amounts. Stored as a string scan to
// keep decimal precision out of float64.
func (r *orderRepository) TotalRevenue() (decimal.Decimal, error) {
	return r.sumAmount(r.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted))
}

func (r *orderRepository) RevenueByModelType(modelType string) (decimal.Decimal, error) {
	return r.sumAmount(r.db.Model(&models.Order{}).
		Where("status = ? AND model_type = ?", models.OrderStatusCompleted, modelType))
}

func (r *orderRepository) CountByModelType(modelType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("model_type = ?", modelType).Count(&count).Error
	return count, err
}

func (r *orderRepository) sumAmount(tx *gorm.DB) (decimal.Decimal, error) {
	var raw *string
	if err := tx.Select("SUM(amount)").Scan(&raw).Error; err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
