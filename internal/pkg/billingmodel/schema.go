package billingmodel

// Section and field names for the one-time purchase schema.
const (
	SectionDelivery  = "delivery"
	SectionLicensing = "licensing"
	SectionPayments  = "payments"
	SectionRefunds   = "refunds"
	SectionPricing   = "pricing"
)

var descriptors = map[ModelType]descriptor{
	ModelOneTime: {
		schema: Schema{Sections: []Section{
			{
				Name: SectionDelivery,
				Fields: []Field{
					{Name: "method", Kind: KindString, Default: "download"},
					{Name: "downloadLimit", Kind: KindInt, Default: 5, ActiveWhen: &Condition{Field: "method", Equals: "download"}},
					{Name: "downloadExpiration", Kind: KindString, Default: "24h", ActiveWhen: &Condition{Field: "method", Equals: "download"}},
					{Name: "ipRestriction", Kind: KindBool, Default: false, ActiveWhen: &Condition{Field: "method", Equals: "download"}},
					{Name: "emailTemplate", Kind: KindString, Default: "", ActiveWhen: &Condition{Field: "method", Equals: "email"}},
					{Name: "fileSizeLimit", Kind: KindInt, Default: 10, ActiveWhen: &Condition{Field: "method", Equals: "email"}},
					{Name: "accountDuration", Kind: KindString, Default: "lifetime", ActiveWhen: &Condition{Field: "method", Equals: "account"}},
					{Name: "deviceLimit", Kind: KindInt, Default: 3, ActiveWhen: &Condition{Field: "method", Equals: "account"}},
					{Name: "apiEndpoint", Kind: KindString, Default: "", ActiveWhen: &Condition{Field: "method", Equals: "api"}},
					{Name: "webhookUrl", Kind: KindString, Default: "", ActiveWhen: &Condition{Field: "method", Equals: "api"}},
				},
			},
			{
				Name: SectionLicensing,
				Fields: []Field{
					{Name: "type", Kind: KindString, Default: "personal"},
					{Name: "generateKeys", Kind: KindBool, Default: false},
					{Name: "activationRequired", Kind: KindBool, Default: false},
					{Name: "allowCommercialUse", Kind: KindBool, Default: false},
					{Name: "extendedLicense", Kind: KindBool, Default: false},
					{Name: "customTerms", Kind: KindString, Default: ""},
				},
			},
			{
				Name: SectionPayments,
				Fields: []Field{
					{Name: "allowPreorders", Kind: KindBool, Default: false},
					{Name: "partialPayments", Kind: KindBool, Default: false},
					{Name: "minimumDeposit", Kind: KindDecimal, Default: 0, ActiveWhen: &Condition{Field: "partialPayments", Equals: true}},
					{Name: "depositPercentage", Kind: KindInt, Default: 50, ActiveWhen: &Condition{Field: "partialPayments", Equals: true}},
				},
			},
			{
				Name: SectionRefunds,
				Fields: []Field{
					{Name: "policy", Kind: KindString, Default: "none"},
					{Name: "period", Kind: KindInt, Default: 7, ActiveWhen: &Condition{Field: "policy", NotEquals: "none"}},
					{Name: "customText", Kind: KindString, Default: "All sales are final. No refunds will be provided.", ActiveWhen: &Condition{Field: "policy", NotEquals: "none"}},
				},
			},
		}},
		requiredProductFields: []string{"price"},
	},
	ModelCredit: {
		schema: Schema{Sections: []Section{
			{
				Name: SectionPricing,
				Fields: []Field{
					{Name: "creditsRequired", Kind: KindInt, Default: 1},
					{Name: "rateOverride", Kind: KindDecimal, Default: nil},
				},
			},
		}},
		requiredProductFields: []string{"creditsRequired"},
	},
	ModelUsage: {
		schema: Schema{Sections: []Section{
			{
				Name: SectionPricing,
				Fields: []Field{
					{Name: "baseFee", Kind: KindDecimal, Default: nil},
					{Name: "perUnitRate", Kind: KindDecimal, Default: nil},
				},
			},
		}},
	},
	ModelMarketplace: {
		schema: Schema{Sections: []Section{{Name: SectionPricing}}},
	},
	ModelMilestone: {
		schema: Schema{Sections: []Section{{Name: SectionPricing}}},
	},
}

// ResolveSchema returns the canonical configuration schema for a model
// type. Unknown types resolve to an empty schema rather than an error, so
// the catalog can grow without touching the engine.
func ResolveSchema(t ModelType) Schema {
	if d, ok := descriptors[t]; ok {
		return d.schema
	}
	return Schema{}
}

// RequiredProductFields returns the model-specific product fields that must
// be present on a product draft, beyond the universal name/sku checks.
func RequiredProductFields(t ModelType) []string {
	if d, ok := descriptors[t]; ok {
		return d.requiredProductFields
	}
	return nil
}

// ApplyDefaults builds the default configuration for a schema. Fields whose
// activation condition is false under the section defaults are left out.
func ApplyDefaults(schema Schema) Configuration {
	config := make(Configuration, len(schema.Sections))
	for _, section := range schema.Sections {
		values := make(map[string]any, len(section.Fields))
		for _, field := range section.Fields {
			if field.Default != nil {
				values[field.Name] = field.Default
			}
		}
		// Second pass: drop defaults for fields whose gate is closed.
		for _, field := range section.Fields {
			if field.ActiveWhen != nil && !field.ActiveWhen.holds(values) {
				delete(values, field.Name)
			}
		}
		config[section.Name] = values
	}
	return config
}

// holds reports whether the condition is satisfied by the given section
// values. A missing sibling value never satisfies Equals and always
// satisfies NotEquals.
func (c *Condition) holds(values map[string]any) bool {
	v, ok := values[c.Field]
	if c.NotEquals != nil {
		return !ok || v != c.NotEquals
	}
	return ok && v == c.Equals
}
