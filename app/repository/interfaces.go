package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// BillingModelRepository defines database operations over the billing
// model catalog.
type BillingModelRepository interface {
	Create(model *models.BillingModel) error
	GetByID(id uint) (*models.BillingModel, error)
	GetAll() ([]models.BillingModel, error)
	GetByType(modelType string) ([]models.BillingModel, error)
	Update(model *models.BillingModel) error
	// UpdateConfiguration merges a partial configuration into the stored
	// blob per section and persists the result. The caller validates the
	// partial against the model's schema before calling.
	UpdateConfiguration(id uint, partial billingmodel.Configuration) (*models.BillingModel, error)
	Delete(id uint) error
	Count() (int64, error)
}

// ProductRepository defines database operations for products. Create and
// Update do not run billing-model validation; that is the controller's job
// before the store is touched.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	List(offset, limit int) ([]models.Product, error)
	Search(query, category, status string) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

// CustomerRepository defines database operations for customers.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	List(offset, limit int) ([]models.Customer, error)
	Search(query string) ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	Count() (int64, error)
}

// OrderRepository defines database operations for orders.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	List(offset, limit int) ([]models.Order, error)
	ListByStatus(status string) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	Count() (int64, error)
	TotalRevenue() (decimal.Decimal, error)
	RevenueByModelType(modelType string) (decimal.Decimal, error)
	CountByModelType(modelType string) (int64, error)
}

// OrganizationRepository defines database operations for the merchant
// profile. Get returns the single row, or gorm.ErrRecordNotFound before
// onboarding has run.
type OrganizationRepository interface {
	Get() (*models.Organization, error)
	Save(org *models.Organization) error
}

// ActiveModelStore persists the merchant's selected billing-model set.
// The rule engine's pure set operations are authoritative; this is just
// the storage slot behind them.
type ActiveModelStore interface {
	Load() ([]billingmodel.SelectedModel, error)
	Save(set []billingmodel.SelectedModel) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	BillingModel BillingModelRepository
	Product      ProductRepository
	Customer     CustomerRepository
	Order        OrderRepository
	Organization OrganizationRepository
	ActiveModels ActiveModelStore
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		BillingModel: NewBillingModelRepository(db),
		Product:      NewProductRepository(db),
		Customer:     NewCustomerRepository(db),
		Order:        NewOrderRepository(db),
		Organization: NewOrganizationRepository(db),
		ActiveModels: NewRedisActiveModelStore(),
	}
}
