package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// HandleGetDashboardMetrics aggregates the numbers shown on the overview
// page. The model-specific block follows the primary active billing model,
// so switching primaries reshapes the dashboard without config changes.
func HandleGetDashboardMetrics(c *fiber.Ctx) error {
	factory := repository.GetGlobalFactory()

	productCount, err := factory.GetProductRepository().Count()
	if err != nil {
		return internalError(c, "Failed to load metrics")
	}
	customerCount, err := factory.GetCustomerRepository().Count()
	if err != nil {
		return internalError(c, "Failed to load metrics")
	}
	orderRepo := factory.GetOrderRepository()
	orderCount, err := orderRepo.Count()
	if err != nil {
		return internalError(c, "Failed to load metrics")
	}
	totalRevenue, err := orderRepo.TotalRevenue()
	if err != nil {
		return internalError(c, "Failed to load metrics")
	}

	metrics := fiber.Map{
		"products":     productCount,
		"customers":    customerCount,
		"orders":       orderCount,
		"totalRevenue": totalRevenue,
	}

	set, err := factory.GetActiveModelStore().Load()
	if err != nil {
		return internalError(c, "Failed to load metrics")
	}
	if primary, ok := billingmodel.Primary(set); ok {
		modelMetrics, err := primaryModelMetrics(orderRepo, primary)
		if err != nil {
			return internalError(c, "Failed to load metrics")
		}
		metrics["primaryModel"] = modelMetrics
	}

	return c.JSON(metrics)
}

// primaryModelMetrics computes the revenue slice attributed to the primary
// model's type.
func primaryModelMetrics(orders repository.OrderRepository, primary billingmodel.SelectedModel) (fiber.Map, error) {
	modelType := string(primary.Type)

	revenue, err := orders.RevenueByModelType(modelType)
	if err != nil {
		return nil, err
	}
	count, err := orders.CountByModelType(modelType)
	if err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if count > 0 {
		avg = revenue.Div(decimal.NewFromInt(count)).Round(2)
	}

	return fiber.Map{
		"id":           primary.ID,
		"name":         primary.Name,
		"type":         primary.Type,
		"revenue":      revenue,
		"orders":       count,
		"averageOrder": avg,
	}, nil
}
