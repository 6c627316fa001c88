package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexcharge/FlexCharge/app/models"
)

func TestListBillingModelsFiltersByType(t *testing.T) {
	repos := newTestRepositories()
	require.NoError(t, repos.BillingModel.Create(&models.BillingModel{
		Name: "One-Time Purchase", Type: "one-time", IsActive: true,
	}))
	require.NoError(t, repos.BillingModel.Create(&models.BillingModel{
		Name: "Credit System", Type: "credit", IsActive: true,
	}))

	app := fiber.New()
	app.Get("/api/v1/billing-models", HandleListBillingModels)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/billing-models?type=credit", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Models []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"models"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Models, 1)
	assert.Equal(t, "Credit System", payload.Models[0].Name)
	assert.Equal(t, "credit", payload.Models[0].Type)

	// Without the filter the whole catalog comes back.
	req = httptest.NewRequest(fiber.MethodGet, "/api/v1/billing-models", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Models, 2)
}
