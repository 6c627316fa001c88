package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
	"github.com/flexcharge/FlexCharge/internal/pkg/jobqueue"
)

// HandleListOrders returns orders, optionally filtered by status.
func HandleListOrders(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetOrderRepository()

	var (
		list []models.Order
		err  error
	)
	if status := c.Query("status"); status != "" {
		list, err = repo.ListByStatus(status)
	} else {
		list, err = repo.List(0, 0)
	}
	if err != nil {
		return internalError(c, "Failed to load orders")
	}
	return c.JSON(fiber.Map{"orders": list})
}

// HandleGetOrder returns one order by id.
func HandleGetOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetOrderRepository()
	order, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Order not found")
		}
		return internalError(c, "Failed to load order")
	}
	return c.JSON(order)
}

type orderRequest struct {
	CustomerID uint            `json:"customerId"`
	ProductID  uint            `json:"productId"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// HandleCreateOrder records a purchase. The model type is copied from the
// product so order reporting stays stable if products get re-tagged.
func HandleCreateOrder(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	factory := repository.GetGlobalFactory()
	product, err := factory.GetProductRepository().GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}
	if _, err := factory.GetCustomerRepository().GetByID(req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}

	// A product saved before its billing model changed can be missing a
	// now-required pricing field; refuse the sale until it is fixed up.
	if fieldErrs := billingmodel.ValidateProduct(billingmodel.ModelType(product.ModelType), product.Draft()); len(fieldErrs) > 0 {
		return validationFailed(c, fieldErrs)
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Amount:     req.Amount,
		Status:     req.Status,
		ModelType:  product.ModelType,
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if err := order.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := factory.GetOrderRepository().Create(order); err != nil {
		return internalError(c, "Failed to create order")
	}

	jobqueue.EnqueueCustomerTotalsRecalc(order.CustomerID)

	return c.Status(fiber.StatusCreated).JSON(order)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus transitions an order's status; amounts and line
// references are immutable once recorded.
func HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return badRequest(c, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetOrderRepository()
	order, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Order not found")
		}
		return internalError(c, "Failed to load order")
	}
	order.Status = req.Status
	if err := order.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Update(order); err != nil {
		return internalError(c, "Failed to update order")
	}

	jobqueue.EnqueueCustomerTotalsRecalc(order.CustomerID)

	return c.JSON(order)
}

// HandleDeleteOrder removes an order record.
func HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetOrderRepository()
	order, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Order not found")
		}
		return internalError(c, "Failed to load order")
	}
	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete order")
	}

	jobqueue.EnqueueCustomerTotalsRecalc(order.CustomerID)

	return c.JSON(fiber.Map{"success": true})
}
