package billingmodel

// ModelType identifies which billing model governs pricing and fulfillment
// for a product. The set is closed; unrecognized values fall back to an
// empty schema so new catalog entries don't require code changes here.
type ModelType string

const (
	ModelOneTime     ModelType = "one-time"
	ModelCredit      ModelType = "credit"
	ModelUsage       ModelType = "usage"
	ModelMarketplace ModelType = "marketplace"
	ModelMilestone   ModelType = "milestone"
)

// Configuration is the section-keyed settings blob attached to a selected
// billing model. Sections and fields are shaped by the model type's schema,
// but unknown keys are carried through untouched.
type Configuration map[string]map[string]any

// FieldKind describes how a configuration field value is validated.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindInt     FieldKind = "int"
	KindDecimal FieldKind = "decimal"
	KindBool    FieldKind = "bool"
)

// Condition gates a field on the value of a sibling field in the same
// section. Exactly one of Equals/NotEquals is set.
type Condition struct {
	Field     string
	Equals    any
	NotEquals any
}

// Field is a single configuration field definition.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any
	// ActiveWhen, when non-nil, makes the field conditional: it is only
	// validated and only receives a default while the condition holds.
	ActiveWhen *Condition
}

// Section is an ordered group of fields under one configuration key.
type Section struct {
	Name   string
	Fields []Field
}

// Schema is the type-specific definition of configuration sections, used to
// drive both form rendering and validation.
type Schema struct {
	Sections []Section
}

// ValidationErrors maps a field path ("section.field" for configuration,
// a bare field name for products) to a human-readable message. Validation
// failures are returned as data, never as Go errors.
type ValidationErrors map[string]string

// descriptor bundles everything the engine knows about one model type, so
// the type-to-behavior mapping lives in a single table.
type descriptor struct {
	schema                Schema
	requiredProductFields []string
}

// SelectedModel is a billing model activated into the merchant's working
// set. At most one member of a set is primary.
type SelectedModel struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Type          ModelType     `json:"type"`
	IsActive      bool          `json:"isActive"`
	IsPrimary     bool          `json:"isPrimary"`
	Configuration Configuration `json:"configuration"`
}
