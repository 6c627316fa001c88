package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// Product payloads arrive as loose JSON (the form submits numbers as
// strings), so handlers parse into a map, run the rule engine against it,
// and only then build the typed record.

// HandleListProducts returns products, optionally filtered by the list
// view's search box and category/status dropdowns.
func HandleListProducts(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetProductRepository()
	query := c.Query("q")
	category := c.Query("category")
	status := c.Query("status")

	var (
		list []models.Product
		err  error
	)
	if query == "" && category == "" && status == "" {
		list, err = repo.List(0, 0)
	} else {
		list, err = repo.Search(query, category, status)
	}
	if err != nil {
		return internalError(c, "Failed to load products")
	}
	return c.JSON(fiber.Map{"products": list})
}

// HandleGetProduct returns one product by id.
func HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetProductRepository()
	product, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}
	return c.JSON(product)
}

// HandleCreateProduct validates a draft against the selected billing
// model's rules and persists it. Validation failures come back as a 422
// field map; the store is never called for an invalid draft.
func HandleCreateProduct(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	modelType := billingmodel.ModelType(stringField(payload, "modelType"))
	fieldErrs := billingmodel.ValidateProduct(modelType, payload)
	product, convErrs := productFromPayload(payload)
	for field, msg := range convErrs {
		if _, taken := fieldErrs[field]; !taken {
			fieldErrs[field] = msg
		}
	}
	if len(fieldErrs) > 0 {
		return validationFailed(c, fieldErrs)
	}

	if err := product.Validate(); err != nil {
		return badRequest(c, "Invalid product data")
	}

	repo := repository.GetGlobalFactory().GetProductRepository()
	if _, err := repo.GetBySKU(product.SKU); err == nil {
		return conflict(c, "A product with this SKU already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalError(c, "Failed to create product")
	}
	if err := repo.Create(product); err != nil {
		return internalError(c, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing product after re-running the
// rule checks for the modelType submitted with the draft.
func HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetProductRepository()
	existing, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	modelType := billingmodel.ModelType(stringField(payload, "modelType"))
	fieldErrs := billingmodel.ValidateProduct(modelType, payload)
	product, convErrs := productFromPayload(payload)
	for field, msg := range convErrs {
		if _, taken := fieldErrs[field]; !taken {
			fieldErrs[field] = msg
		}
	}
	if len(fieldErrs) > 0 {
		return validationFailed(c, fieldErrs)
	}

	if err := product.Validate(); err != nil {
		return badRequest(c, "Invalid product data")
	}
	if product.SKU != existing.SKU {
		if _, err := repo.GetBySKU(product.SKU); err == nil {
			return conflict(c, "A product with this SKU already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to update product")
		}
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if err := repo.Update(product); err != nil {
		return internalError(c, "Failed to update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product.
func HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetProductRepository()
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to delete product")
	}
	return c.JSON(fiber.Map{"success": true})
}

// stringField reads a string value from a loose payload, "" when absent
// or not a string.
func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// decimalField converts a payload value to a nullable decimal. Absent, nil
// and blank-string values are null; unparseable values report an error
// message for the field map.
func decimalField(payload map[string]any, key string) (decimal.NullDecimal, string) {
	v, ok := payload[key]
	if !ok || v == nil {
		return decimal.NullDecimal{}, ""
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return decimal.NullDecimal{}, ""
		}
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.NullDecimal{}, "must be a number"
		}
		return decimal.NullDecimal{Decimal: d, Valid: true}, ""
	case float64:
		return decimal.NullDecimal{Decimal: decimal.NewFromFloat(t), Valid: true}, ""
	case int:
		return decimal.NullDecimal{Decimal: decimal.NewFromInt(int64(t)), Valid: true}, ""
	default:
		return decimal.NullDecimal{}, "must be a number"
	}
}

// intField converts a payload value to a nullable int with the same
// blank handling as decimalField.
func intField(payload map[string]any, key string) (*int, string) {
	v, ok := payload[key]
	if !ok || v == nil {
		return nil, ""
	}
	switch t := v.(type) {
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return nil, ""
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil || !d.IsInteger() {
			return nil, "must be a whole number"
		}
		n := int(d.IntPart())
		return &n, ""
	case float64:
		if t != float64(int64(t)) {
			return nil, "must be a whole number"
		}
		n := int(t)
		return &n, ""
	default:
		return nil, "must be a whole number"
	}
}

// productFromPayload builds the typed record from a loose draft, returning
// conversion errors keyed by field name.
func productFromPayload(payload map[string]any) (*models.Product, map[string]string) {
	errs := map[string]string{}

	product := &models.Product{
		SKU:         strings.TrimSpace(stringField(payload, "sku")),
		Name:        strings.TrimSpace(stringField(payload, "name")),
		Description: stringField(payload, "description"),
		Category:    stringField(payload, "category"),
		Status:      stringField(payload, "status"),
		ModelType:   stringField(payload, "modelType"),
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}

	numeric := map[string]*decimal.NullDecimal{
		"price":        &product.Price,
		"comparePrice": &product.ComparePrice,
		"rateOverride": &product.RateOverride,
		"baseFee":      &product.BaseFee,
		"perUnitRate":  &product.PerUnitRate,
	}
	for field, dst := range numeric {
		value, msg := decimalField(payload, field)
		if msg != "" {
			errs[field] = msg
			continue
		}
		*dst = value
	}

	credits, msg := intField(payload, "creditsRequired")
	if msg != "" {
		errs["creditsRequired"] = msg
	} else {
		product.CreditsRequired = credits
	}

	if raw, ok := payload["fulfillment"].(map[string]any); ok {
		fulfillment := billingmodel.Configuration{}
		for section, values := range raw {
			if sectionValues, ok := values.(map[string]any); ok {
				fulfillment[section] = sectionValues
			}
		}
		if err := product.SetFulfillment(fulfillment); err != nil {
			errs["fulfillment"] = "must be an object of sections"
		}
	}

	return product, errs
}
