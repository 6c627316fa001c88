package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
)

// HandleListCustomers returns customers, filtered by the list view's
// search box when a query is present.
func HandleListCustomers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCustomerRepository()

	var (
		list []models.Customer
		err  error
	)
	if query := c.Query("q"); query != "" {
		list, err = repo.Search(query)
	} else {
		list, err = repo.List(0, 0)
	}
	if err != nil {
		return internalError(c, "Failed to load customers")
	}
	return c.JSON(fiber.Map{"customers": list})
}

// HandleGetCustomer returns one customer with their order history.
func HandleGetCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}
	return c.JSON(customer)
}

type customerRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// HandleCreateCustomer adds a customer record.
func HandleCreateCustomer(c *fiber.Ctx) error {
	var req customerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	customer := &models.Customer{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	}
	if customer.Status == "" {
		customer.Status = models.CustomerStatusActive
	}
	if err := customer.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	if _, err := repo.GetByEmail(customer.Email); err == nil {
		return conflict(c, "A customer with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalError(c, "Failed to create customer")
	}
	if err := repo.Create(customer); err != nil {
		return internalError(c, "Failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer applies a partial update to a customer record.
func HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}

	var req customerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" && req.Email != customer.Email {
		if _, err := repo.GetByEmail(req.Email); err == nil {
			return conflict(c, "A customer with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to update customer")
		}
		customer.Email = req.Email
	}
	if req.Status != "" {
		customer.Status = req.Status
	}
	if err := customer.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Update(customer); err != nil {
		return internalError(c, "Failed to update customer")
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer removes a customer record.
func HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetCustomerRepository()
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to delete customer")
	}
	return c.JSON(fiber.Map{"success": true})
}
