package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexcharge/FlexCharge/app/models"
)

func TestDecimalFieldParsing(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		valid   bool
		want    string
		errMsg  string
	}{
		{"absent", map[string]any{}, false, "", ""},
		{"explicit nil", map[string]any{"price": nil}, false, "", ""},
		{"blank string", map[string]any{"price": "   "}, false, "", ""},
		{"string number", map[string]any{"price": "29.99"}, true, "29.99", ""},
		{"json number", map[string]any{"price": 49.5}, true, "49.5", ""},
		{"garbage string", map[string]any{"price": "abc"}, false, "", "must be a number"},
		{"wrong type", map[string]any{"price": true}, false, "", "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := decimalField(tt.payload, "price")
			assert.Equal(t, tt.errMsg, msg)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Decimal.String())
			}
		})
	}
}

func TestIntFieldParsing(t *testing.T) {
	n, msg := intField(map[string]any{"creditsRequired": "10"}, "creditsRequired")
	require.Empty(t, msg)
	require.NotNil(t, n)
	assert.Equal(t, 10, *n)

	// JSON numbers decode as float64; integral values are accepted.
	n, msg = intField(map[string]any{"creditsRequired": float64(5)}, "creditsRequired")
	require.Empty(t, msg)
	require.NotNil(t, n)
	assert.Equal(t, 5, *n)

	_, msg = intField(map[string]any{"creditsRequired": 2.5}, "creditsRequired")
	assert.Equal(t, "must be a whole number", msg)

	_, msg = intField(map[string]any{"creditsRequired": "1.5"}, "creditsRequired")
	assert.Equal(t, "must be a whole number", msg)

	n, msg = intField(map[string]any{}, "creditsRequired")
	assert.Empty(t, msg)
	assert.Nil(t, n)
}

func TestProductFromPayload(t *testing.T) {
	payload := map[string]any{
		"sku":       "  EBOOK-001 ",
		"name":      " Go in Practice ",
		"modelType": "one-time",
		"price":     "19.99",
		"fulfillment": map[string]any{
			"delivery": map[string]any{"method": "download", "downloadLimit": 3},
		},
	}

	product, errs := productFromPayload(payload)
	require.Empty(t, errs)
	assert.Equal(t, "EBOOK-001", product.SKU)
	assert.Equal(t, "Go in Practice", product.Name)
	assert.Equal(t, models.ProductStatusActive, product.Status)
	require.True(t, product.Price.Valid)
	assert.Equal(t, "19.99", product.Price.Decimal.String())

	fulfillment := product.FulfillmentMap()
	require.Contains(t, fulfillment, "delivery")
	assert.Equal(t, "download", fulfillment["delivery"]["method"])
}

func TestProductFromPayloadCollectsFieldErrors(t *testing.T) {
	payload := map[string]any{
		"sku":             "CREDITS-10",
		"name":            "Credit Pack",
		"modelType":       "credit",
		"price":           "free",
		"creditsRequired": "ten",
	}

	_, errs := productFromPayload(payload)
	assert.Equal(t, "must be a number", errs["price"])
	assert.Equal(t, "must be a whole number", errs["creditsRequired"])
}

func TestCreateProductStoresValidDraft(t *testing.T) {
	newTestRepositories()

	app := fiber.New()
	app.Post("/api/v1/products", HandleCreateProduct)

	body := `{"name":"Go in Practice","sku":"EBOOK-001","modelType":"one-time","price":"19.99"}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var product models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	assert.Equal(t, "EBOOK-001", product.SKU)
	assert.NotZero(t, product.ID)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repos := newTestRepositories()
	credits := 10
	require.NoError(t, repos.Product.Create(&models.Product{
		SKU:             "CREDITS-10",
		Name:            "Credit Pack",
		Status:          models.ProductStatusActive,
		ModelType:       "credit",
		CreditsRequired: &credits,
	}))

	app := fiber.New()
	app.Post("/api/v1/products", HandleCreateProduct)

	body := `{"name":"Another Credit Pack","sku":"CREDITS-10","modelType":"credit","creditsRequired":"25"}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "conflict", payload["error"])

	count, err := repos.Product.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProductRejectsTakenSKU(t *testing.T) {
	repos := newTestRepositories()
	credits := 10
	require.NoError(t, repos.Product.Create(&models.Product{
		SKU: "CREDITS-10", Name: "Credit Pack", Status: models.ProductStatusActive,
		ModelType: "credit", CreditsRequired: &credits,
	}))
	require.NoError(t, repos.Product.Create(&models.Product{
		SKU: "CREDITS-25", Name: "Big Credit Pack", Status: models.ProductStatusActive,
		ModelType: "credit", CreditsRequired: &credits,
	}))

	app := fiber.New()
	app.Put("/api/v1/products/:id", HandleUpdateProduct)

	body := `{"name":"Big Credit Pack","sku":"CREDITS-10","modelType":"credit","creditsRequired":"25"}`
	req := httptest.NewRequest(fiber.MethodPut, "/api/v1/products/2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
