package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flexcharge/FlexCharge/app/models"
	"github.com/flexcharge/FlexCharge/app/repository"
	"github.com/flexcharge/FlexCharge/internal/pkg/onboarding"
)

// HandleGetOrganization returns the merchant profile. Before onboarding has
// run there is no row yet, which maps to 404 rather than an empty object.
func HandleGetOrganization(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetOrganizationRepository()
	org, err := repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Organization not set up yet")
		}
		return internalError(c, "Failed to load organization")
	}
	return c.JSON(org)
}

type organizationRequest struct {
	Name         string `json:"name"`
	BusinessType string `json:"businessType"`
	Currency     string `json:"currency"`
	Country      string `json:"country"`
	LogoURL      string `json:"logoUrl"`
}

// HandleSaveOrganization creates or updates the single merchant profile row.
func HandleSaveOrganization(c *fiber.Ctx) error {
	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetOrganizationRepository()
	org, err := repo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to load organization")
		}
		org = &models.Organization{}
	}

	org.Name = strings.TrimSpace(req.Name)
	org.BusinessType = req.BusinessType
	if req.Currency != "" {
		org.Currency = strings.ToUpper(req.Currency)
	}
	org.Country = strings.ToUpper(req.Country)
	org.LogoURL = req.LogoURL

	if err := org.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Save(org); err != nil {
		return internalError(c, "Failed to save organization")
	}
	return c.JSON(org)
}

type onboardingStepRequest struct {
	Step int             `json:"step"`
	Form onboarding.Form `json:"form"`
}

// HandleValidateOnboardingStep checks one wizard step and reports field
// errors without persisting anything, so the wizard can block navigation.
func HandleValidateOnboardingStep(c *fiber.Ctx) error {
	var req onboardingStepRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Step < 1 || req.Step > onboarding.StepCount {
		return badRequest(c, "invalid step")
	}

	errs := onboarding.ValidateStep(req.Step, req.Form)
	return c.JSON(fiber.Map{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

type completeOnboardingRequest struct {
	Form onboarding.Form `json:"form"`
}

// HandleCompleteOnboarding re-validates the whole wizard, persists the
// profile and marks the merchant as onboarded.
func HandleCompleteOnboarding(c *fiber.Ctx) error {
	var req completeOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if errs := onboarding.ValidateAll(req.Form); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	repo := repository.GetGlobalFactory().GetOrganizationRepository()
	org, err := repo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to load organization")
		}
		org = &models.Organization{}
	}

	org.Name = strings.TrimSpace(req.Form.Name)
	org.BusinessType = req.Form.BusinessType
	org.Currency = strings.ToUpper(req.Form.Currency)
	org.Country = strings.ToUpper(req.Form.Country)
	org.Onboarded = true

	if err := org.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := repo.Save(org); err != nil {
		return internalError(c, "Failed to save organization")
	}
	return c.JSON(org)
}
