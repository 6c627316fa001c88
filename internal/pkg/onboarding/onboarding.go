// Package onboarding validates the merchant setup wizard step by step.
package onboarding

import "strings"

// StepCount is the number of wizard steps. Steps three and four (billing
// configuration and completion) collect nothing that needs validating here.
const StepCount = 4

// Form carries the wizard's accumulated answers.
type Form struct {
	Name         string `json:"name"`
	BusinessType string `json:"businessType"`
	Currency     string `json:"currency"`
	Country      string `json:"country"`
}

// ValidateStep returns field errors for one wizard step. Steps outside the
// known range validate clean, matching the wizard's skip behavior.
func ValidateStep(step int, form Form) map[string]string {
	errs := map[string]string{}
	switch step {
	case 1:
		if strings.TrimSpace(form.Name) == "" {
			errs["name"] = "Organization name is required"
		}
		if form.BusinessType == "" {
			errs["businessType"] = "Business type is required"
		}
	case 2:
		if form.Currency == "" {
			errs["currency"] = "Currency is required"
		}
		if form.Country == "" {
			errs["country"] = "Country is required"
		}
	}
	return errs
}

// ValidateAll runs every step's checks, used before final completion.
func ValidateAll(form Form) map[string]string {
	errs := map[string]string{}
	for step := 1; step <= StepCount; step++ {
		for field, msg := range ValidateStep(step, form) {
			errs[field] = msg
		}
	}
	return errs
}
