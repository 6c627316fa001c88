package controllers

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// In-memory repositories backing the handler tests. newTestRepositories
// installs them as the global set so handlers run without a database.

func newTestRepositories() *repository.Repositories {
	repos := &repository.Repositories{
		BillingModel: newFakeBillingModelRepo(),
		Product:      newFakeProductRepo(),
		Customer:     newFakeCustomerRepo(),
		Order:        newFakeOrderRepo(),
		Organization: &fakeOrganizationRepo{},
		ActiveModels: repository.NewMemoryActiveModelStore(),
	}
	repository.SetGlobalRepositories(repos)
	return repos
}

type fakeBillingModelRepo struct {
	nextID uint
	rows   map[uint]models.BillingModel
}

func newFakeBillingModelRepo() *fakeBillingModelRepo {
	return &fakeBillingModelRepo{nextID: 1, rows: map[uint]models.BillingModel{}}
}

func (r *fakeBillingModelRepo) Create(model *models.BillingModel) error {
	if model.ID == 0 {
		model.ID = r.nextID
		r.nextID++
	}
	r.rows[model.ID] = *model
	return nil
}

func (r *fakeBillingModelRepo) GetByID(id uint) (*models.BillingModel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *fakeBillingModelRepo) GetAll() ([]models.BillingModel, error) {
	out := make([]models.BillingModel, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeBillingModelRepo) GetByType(modelType string) ([]models.BillingModel, error) {
	all, _ := r.GetAll()
	out := make([]models.BillingModel, 0, len(all))
	for _, row := range all {
		if row.Type == modelType {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeBillingModelRepo) Update(model *models.BillingModel) error {
	if _, ok := r.rows[model.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[model.ID] = *model
	return nil
}

func (r *fakeBillingModelRepo) UpdateConfiguration(id uint, partial billingmodel.Configuration) (*models.BillingModel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	schema := billingmodel.ResolveSchema(billingmodel.ModelType(row.Type))
	merged, _ := billingmodel.MergeConfiguration(row.ConfigurationMap(), partial, schema)
	if err := row.SetConfiguration(merged); err != nil {
		return nil, err
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakeBillingModelRepo) Delete(id uint) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeBillingModelRepo) Count() (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeProductRepo struct {
	nextID uint
	rows   map[uint]models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, rows: map[uint]models.Product{}}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.rows[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*models.Product, error) {
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok && row.SKU == sku {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) List(offset, limit int) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	if limit > 0 {
		if offset >= len(out) {
			return []models.Product{}, nil
		}
		end := offset + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out, nil
}

func (r *fakeProductRepo) Search(query, category, status string) ([]models.Product, error) {
	all, _ := r.List(0, 0)
	out := make([]models.Product, 0, len(all))
	for _, row := range all {
		if query != "" && !strings.Contains(strings.ToLower(row.Name), strings.ToLower(query)) &&
			!strings.Contains(strings.ToLower(row.SKU), strings.ToLower(query)) {
			continue
		}
		if category != "" && row.Category != category {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	if _, ok := r.rows[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeCustomerRepo struct {
	nextID uint
	rows   map[uint]models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{nextID: 1, rows: map[uint]models.Customer{}}
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	if customer.ID == 0 {
		customer.ID = r.nextID
		r.nextID++
	}
	r.rows[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok && row.Email == email {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) List(offset, limit int) ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	if limit > 0 {
		if offset >= len(out) {
			return []models.Customer{}, nil
		}
		end := offset + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out, nil
}

func (r *fakeCustomerRepo) Search(query string) ([]models.Customer, error) {
	all, _ := r.List(0, 0)
	out := make([]models.Customer, 0, len(all))
	for _, row := range all {
		if strings.Contains(strings.ToLower(row.Name), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(row.Email), strings.ToLower(query)) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	if _, ok := r.rows[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeCustomerRepo) Count() (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeOrderRepo struct {
	nextID uint
	rows   map[uint]models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, rows: map[uint]models.Order{}}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	if order.OrderNumber == "" {
		order.OrderNumber = models.NewOrderNumber()
	}
	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	r.rows[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	all, _ := r.List(0, 0)
	out := make([]models.Order, 0, len(all))
	for _, row := range all {
		if row.CustomerID == customerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(offset, limit int) ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, row)
		}
	}
	if limit > 0 {
		if offset >= len(out) {
			return []models.Order{}, nil
		}
		end := offset + limit
		if end > len(out) {
			end = len(out)
		}
		out = out[offset:end]
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(status string) ([]models.Order, error) {
	all, _ := r.List(0, 0)
	out := make([]models.Order, 0, len(all))
	for _, row := range all {
		if row.Status == status {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.rows[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.rows[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeOrderRepo) TotalRevenue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range r.rows {
		if row.Status == models.OrderStatusCompleted {
			total = total.Add(row.Amount)
		}
	}
	return total, nil
}

func (r *fakeOrderRepo) RevenueByModelType(modelType string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range r.rows {
		if row.Status == models.OrderStatusCompleted && row.ModelType == modelType {
			total = total.Add(row.Amount)
		}
	}
	return total, nil
}

func (r *fakeOrderRepo) CountByModelType(modelType string) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if row.ModelType == modelType {
			n++
		}
	}
	return n, nil
}

type fakeOrganizationRepo struct {
	row *models.Organization
}

func (r *fakeOrganizationRepo) Get() (*models.Organization, error) {
	if r.row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	row := *r.row
	return &row, nil
}

func (r *fakeOrganizationRepo) Save(org *models.Organization) error {
	if org.ID == 0 {
		org.ID = 1
	}
	row := *org
	r.row = &row
	return nil
}
