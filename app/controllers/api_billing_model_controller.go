package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// billingModelResponse is the JSON shape the dashboard's model grid and
// configuration modal consume.
func billingModelResponse(m *models.BillingModel) fiber.Map {
	return fiber.Map{
		"id":            m.ID,
		"name":          m.Name,
		"type":          m.Type,
		"description":   m.Description,
		"icon":          m.Icon,
		"isActive":      m.IsActive,
		"configuration": m.ConfigurationMap(),
		"createdAt":     m.CreatedAt,
		"updatedAt":     m.UpdatedAt,
	}
}

// HandleListBillingModels returns the billing model catalog, optionally
// narrowed to one model type via ?type=.
func HandleListBillingModels(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBillingModelRepository()

	var (
		list []models.BillingModel
		err  error
	)
	if modelType := c.Query("type"); modelType != "" {
		list, err = repo.GetByType(modelType)
	} else {
		list, err = repo.GetAll()
	}
	if err != nil {
		return internalError(c, "Failed to load billing models")
	}
	out := make([]fiber.Map, 0, len(list))
	for i := range list {
		out = append(out, billingModelResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"models": out})
}

// HandleGetBillingModel returns one catalog entry by id.
func HandleGetBillingModel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetBillingModelRepository()
	model, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Billing model not found")
		}
		return internalError(c, "Failed to load billing model")
	}
	return c.JSON(billingModelResponse(model))
}

// HandleGetBillingModelSchema returns the configuration schema and default
// values for a model type, used to render the configuration form.
func HandleGetBillingModelSchema(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetBillingModelRepository()
	model, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Billing model not found")
		}
		return internalError(c, "Failed to load billing model")
	}

	modelType := model.ModelType()
	schema := billingmodel.ResolveSchema(modelType)

	sections := make([]fiber.Map, 0, len(schema.Sections))
	for _, section := range schema.Sections {
		fields := make([]fiber.Map, 0, len(section.Fields))
		for _, field := range section.Fields {
			f := fiber.Map{
				"name":    field.Name,
				"kind":    field.Kind,
				"default": field.Default,
			}
			if field.ActiveWhen != nil {
				cond := fiber.Map{"field": field.ActiveWhen.Field}
				if field.ActiveWhen.NotEquals != nil {
					cond["notEquals"] = field.ActiveWhen.NotEquals
				} else {
					cond["equals"] = field.ActiveWhen.Equals
				}
				f["activeWhen"] = cond
			}
			fields = append(fields, f)
		}
		sections = append(sections, fiber.Map{"name": section.Name, "fields": fields})
	}

	return c.JSON(fiber.Map{
		"type":     modelType,
		"sections": sections,
		"defaults": billingmodel.ApplyDefaults(schema),
	})
}

type createBillingModelRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
}

// HandleCreateBillingModel adds a catalog entry.
func HandleCreateBillingModel(c *fiber.Ctx) error {
	var req createBillingModelRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	model := &models.BillingModel{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := model.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetBillingModelRepository()
	if err := repo.Create(model); err != nil {
		return internalError(c, "Failed to create billing model")
	}
	return c.Status(fiber.StatusCreated).JSON(billingModelResponse(model))
}

type updateBillingModelRequest struct {
	Name          *string                    `json:"name"`
	Description   *string                    `json:"description"`
	Icon          *string                    `json:"icon"`
	IsActive      *bool                      `json:"isActive"`
	Configuration billingmodel.Configuration `json:"configuration"`
}

// HandleUpdateBillingModel applies a partial update. When a configuration
// partial is present it is validated against the model's schema and merged
// per section; field errors come back as 422 without touching the row.
func HandleUpdateBillingModel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var req updateBillingModelRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetBillingModelRepository()
	model, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Billing model not found")
		}
		return internalError(c, "Failed to load billing model")
	}

	if req.Configuration != nil {
		schema := billingmodel.ResolveSchema(model.ModelType())
		_, fieldErrs := billingmodel.MergeConfiguration(model.ConfigurationMap(), req.Configuration, schema)
		if len(fieldErrs) > 0 {
			return validationFailed(c, fieldErrs)
		}
		if model, err = repo.UpdateConfiguration(id, req.Configuration); err != nil {
			return internalError(c, "Failed to save configuration")
		}
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.Icon != nil {
		model.Icon = *req.Icon
	}
	if req.IsActive != nil {
		model.IsActive = *req.IsActive
	}
	if err := model.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Update(model); err != nil {
		return internalError(c, "Failed to update billing model")
	}
	return c.JSON(billingModelResponse(model))
}

// HandleDeleteBillingModel removes a catalog entry.
func HandleDeleteBillingModel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	repo := repository.GetGlobalFactory().GetBillingModelRepository()
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Billing model not found")
		}
		return internalError(c, "Failed to delete billing model")
	}
	return c.JSON(fiber.Map{"success": true})
}
