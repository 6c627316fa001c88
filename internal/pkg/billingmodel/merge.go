package billingmodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MergeConfiguration applies a partial update against an existing
// configuration, section by section. For each section present in the
// update, fields overwrite same-named keys and untouched keys persist;
// sections absent from the update pass through unchanged. Sections and
// fields the schema does not define are preserved as-is but not validated.
//
// The returned errors map is empty on success. Inputs are never mutated.
func MergeConfiguration(existing, update Configuration, schema Schema) (Configuration, ValidationErrors) {
	merged := make(Configuration, len(existing)+len(update))
	for name, values := range existing {
		merged[name] = copyValues(values)
	}
	for name, values := range update {
		section, ok := merged[name]
		if !ok {
			section = make(map[string]any, len(values))
		}
		for field, value := range values {
			section[field] = value
		}
		merged[name] = section
	}

	errs := ValidationErrors{}
	for _, section := range schema.Sections {
		values, ok := merged[section.Name]
		if !ok {
			continue
		}
		for _, field := range section.Fields {
			value, present := values[field.Name]
			if !present {
				// Absent fields are never an error here; required-ness is a
				// product-form concern, not a configuration one.
				continue
			}
			if field.ActiveWhen != nil && !field.ActiveWhen.holds(values) {
				// The governing sibling disables this field; whatever value
				// rides along is kept but not checked.
				continue
			}
			if msg := checkKind(field.Kind, value); msg != "" {
				errs[section.Name+"."+field.Name] = msg
			}
		}
	}
	return merged, errs
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// checkKind validates a single present value against its declared kind and
// returns an error message, or "" when the value is acceptable.
func checkKind(kind FieldKind, value any) string {
	switch kind {
	case KindInt:
		if !isInteger(value) {
			return fmt.Sprintf("must be a whole number, got %v", value)
		}
	case KindDecimal:
		if !isDecimal(value) {
			return fmt.Sprintf("must be a number, got %v", value)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("must be true or false, got %v", value)
		}
	}
	return ""
}

// isInteger accepts Go integer types, integral floats (JSON numbers decode
// to float64), and numeric strings without a fractional part.
func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return float64(v) == float64(int64(v))
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return err == nil
	default:
		return false
	}
}

// isDecimal accepts any numeric Go type and strings that parse as a
// decimal number.
func isDecimal(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case decimal.Decimal:
		return true
	case string:
		_, err := decimal.NewFromString(strings.TrimSpace(v))
		return err == nil
	default:
		return false
	}
}
