package billingmodel

import "strings"

// Validation messages shown inline on the product form.
const (
	msgNameRequired    = "Product name is required"
	msgSKURequired     = "SKU is required"
	msgPriceRequired   = "Price is required for one-time products"
	msgCreditsRequired = "Credits required is mandatory for credit products"
)

// ValidateProduct checks a product draft against the required-field rules
// of the given model type. Name and SKU are required for every type; the
// per-type extras come from the descriptor table. The returned map is empty
// when the draft is valid.
func ValidateProduct(t ModelType, draft map[string]any) ValidationErrors {
	errs := ValidationErrors{}
	if isEmpty(draft["name"]) {
		errs["name"] = msgNameRequired
	}
	if isEmpty(draft["sku"]) {
		errs["sku"] = msgSKURequired
	}
	for _, field := range RequiredProductFields(t) {
		if !isEmpty(draft[field]) {
			continue
		}
		switch field {
		case "price":
			errs[field] = msgPriceRequired
		case "creditsRequired":
			errs[field] = msgCreditsRequired
		default:
			errs[field] = field + " is required"
		}
	}
	return errs
}

// isEmpty treats nil and whitespace-only strings as missing. Any non-string
// value that is present counts as filled in.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
