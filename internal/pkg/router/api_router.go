package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/flexcharge/FlexCharge/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	billingModels := v1.Group("/billing-models")
	billingModels.Get("/", controllers.HandleListBillingModels)
	billingModels.Post("/", controllers.HandleCreateBillingModel)
	billingModels.Get("/:id", controllers.HandleGetBillingModel)
	billingModels.Get("/:id/schema", controllers.HandleGetBillingModelSchema)
	billingModels.Put("/:id", controllers.HandleUpdateBillingModel)
	billingModels.Delete("/:id", controllers.HandleDeleteBillingModel)

	activeModels := v1.Group("/active-models")
	activeModels.Get("/", controllers.HandleGetActiveModels)
	activeModels.Post("/", controllers.HandleActivateModel)
	activeModels.Delete("/:id", controllers.HandleDeactivateModel)
	activeModels.Put("/:id/primary", controllers.HandleSetPrimaryModel)

	products := v1.Group("/products")
	products.Get("/", controllers.HandleListProducts)
	products.Post("/", controllers.HandleCreateProduct)
	products.Get("/:id", controllers.HandleGetProduct)
	products.Put("/:id", controllers.HandleUpdateProduct)
	products.Delete("/:id", controllers.HandleDeleteProduct)

	customers := v1.Group("/customers")
	customers.Get("/", controllers.HandleListCustomers)
	customers.Post("/", controllers.HandleCreateCustomer)
	customers.Get("/:id", controllers.HandleGetCustomer)
	customers.Put("/:id", controllers.HandleUpdateCustomer)
	customers.Delete("/:id", controllers.HandleDeleteCustomer)

	orders := v1.Group("/orders")
	orders.Get("/", controllers.HandleListOrders)
	orders.Post("/", controllers.HandleCreateOrder)
	orders.Get("/:id", controllers.HandleGetOrder)
	orders.Put("/:id/status", controllers.HandleUpdateOrderStatus)
	orders.Delete("/:id", controllers.HandleDeleteOrder)

	organization := v1.Group("/organization")
	organization.Get("/", controllers.HandleGetOrganization)
	organization.Put("/", controllers.HandleSaveOrganization)
	organization.Post("/onboarding/validate", controllers.HandleValidateOnboardingStep)
	organization.Post("/onboarding/complete", controllers.HandleCompleteOnboarding)

	v1.Get("/dashboard/metrics", controllers.HandleGetDashboardMetrics)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
