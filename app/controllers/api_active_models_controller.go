package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

// The active-model endpoints wrap the rule engine's pure set operations
// around the shared storage slot. Load, transform, save; the engine owns
// the primary-flag invariant.

func activeSetResponse(c *fiber.Ctx, set []billingmodel.SelectedModel) error {
	primary, hasPrimary := billingmodel.Primary(set)
	resp := fiber.Map{"models": set}
	if hasPrimary {
		resp["primary"] = primary
	}
	return c.JSON(resp)
}

// HandleGetActiveModels returns the selected billing-model set.
func HandleGetActiveModels(c *fiber.Ctx) error {
	store := repository.GetGlobalFactory().GetActiveModelStore()
	set, err := store.Load()
	if err != nil {
		return internalError(c, "Failed to load active models")
	}
	return activeSetResponse(c, set)
}

type activateModelRequest struct {
	ID uint `json:"id"`
}

// HandleActivateModel adds a catalog model to the active set. The first
// activation becomes the primary model; the new member starts with the
// schema defaults for its type.
func HandleActivateModel(c *fiber.Ctx) error {
	var req activateModelRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 {
		return badRequest(c, "Invalid request body")
	}

	factory := repository.GetGlobalFactory()
	catalog, err := factory.GetBillingModelRepository().GetByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Billing model not found")
		}
		return internalError(c, "Failed to load billing model")
	}

	store := factory.GetActiveModelStore()
	set, err := store.Load()
	if err != nil {
		return internalError(c, "Failed to load active models")
	}
	for _, m := range set {
		if m.ID == int(catalog.ID) {
			return conflict(c, "Billing model is already active")
		}
	}

	modelType := catalog.ModelType()
	set = billingmodel.Add(set, billingmodel.SelectedModel{
		ID:            int(catalog.ID),
		Name:          catalog.Name,
		Type:          modelType,
		Configuration: billingmodel.ApplyDefaults(billingmodel.ResolveSchema(modelType)),
	})
	if err := store.Save(set); err != nil {
		return internalError(c, "Failed to save active models")
	}
	c.Status(fiber.StatusCreated)
	return activeSetResponse(c, set)
}

// HandleDeactivateModel removes a model from the active set. No
// replacement primary is promoted; consumers fall back to the first
// remaining member.
func HandleDeactivateModel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	store := repository.GetGlobalFactory().GetActiveModelStore()
	set, err := store.Load()
	if err != nil {
		return internalError(c, "Failed to load active models")
	}
	next := billingmodel.Remove(set, int(id))
	if len(next) == len(set) {
		return notFound(c, "Billing model is not active")
	}
	if err := store.Save(next); err != nil {
		return internalError(c, "Failed to save active models")
	}
	return activeSetResponse(c, next)
}

// HandleSetPrimaryModel promotes one active model to primary and demotes
// the rest.
func HandleSetPrimaryModel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	store := repository.GetGlobalFactory().GetActiveModelStore()
	set, err := store.Load()
	if err != nil {
		return internalError(c, "Failed to load active models")
	}

	found := false
	for _, m := range set {
		if m.ID == int(id) {
			found = true
			break
		}
	}
	if !found {
		return notFound(c, "Billing model is not active")
	}

	set = billingmodel.SetPrimary(set, int(id))
	if err := store.Save(set); err != nil {
		return internalError(c, "Failed to save active models")
	}
	return activeSetResponse(c, set)
}
