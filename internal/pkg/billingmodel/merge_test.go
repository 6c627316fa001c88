package billingmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUpdatesOnlyTouchedKeys(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)
	existing := ApplyDefaults(schema)

	update := Configuration{
		SectionDelivery: {"method": "email", "emailTemplate": "Hi"},
	}
	merged, errs := MergeConfiguration(existing, update, schema)
	require.Empty(t, errs)

	delivery := merged[SectionDelivery]
	assert.Equal(t, "email", delivery["method"])
	assert.Equal(t, "Hi", delivery["emailTemplate"])
	// Keys not mentioned in the update retain their prior values.
	assert.Equal(t, 5, delivery["downloadLimit"])
	assert.Equal(t, "24h", delivery["downloadExpiration"])
	assert.Equal(t, false, delivery["ipRestriction"])
}

func TestMergeLocality(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)
	existing := ApplyDefaults(schema)

	update := Configuration{
		SectionLicensing: {"type": "commercial"},
	}
	merged, errs := MergeConfiguration(existing, update, schema)
	require.Empty(t, errs)

	assert.Equal(t, "commercial", merged[SectionLicensing]["type"])
	assert.Equal(t, existing[SectionDelivery], merged[SectionDelivery])
	assert.Equal(t, existing[SectionPayments], merged[SectionPayments])
	assert.Equal(t, existing[SectionRefunds], merged[SectionRefunds])
}

func TestMergeIdempotence(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)
	existing := ApplyDefaults(schema)
	update := Configuration{
		SectionDelivery: {"method": "account", "deviceLimit": 10},
		SectionRefunds:  {"policy": "30d", "customText": "30 day money back"},
	}

	once, errs := MergeConfiguration(existing, update, schema)
	require.Empty(t, errs)
	twice, errs := MergeConfiguration(once, update, schema)
	require.Empty(t, errs)
	assert.Equal(t, once, twice)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)
	existing := Configuration{SectionDelivery: {"method": "download"}}
	update := Configuration{SectionDelivery: {"method": "email"}}

	_, _ = MergeConfiguration(existing, update, schema)
	assert.Equal(t, "download", existing[SectionDelivery]["method"])
	assert.Equal(t, "email", update[SectionDelivery]["method"])
}

func TestMergePreservesUnknownKeys(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)
	existing := Configuration{
		"analytics": {"trackingId": "UA-1"},
	}
	update := Configuration{
		SectionDelivery: {"method": "download", "futureField": 42},
	}
	merged, errs := MergeConfiguration(existing, update, schema)
	require.Empty(t, errs)
	assert.Equal(t, "UA-1", merged["analytics"]["trackingId"])
	assert.Equal(t, 42, merged[SectionDelivery]["futureField"])
}

func TestMergeNumericValidation(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)

	tests := []struct {
		name   string
		update Configuration
		want   []string
	}{
		{
			name:   "non numeric download limit",
			update: Configuration{SectionDelivery: {"method": "download", "downloadLimit": "lots"}},
			want:   []string{"delivery.downloadLimit"},
		},
		{
			name:   "fractional device limit",
			update: Configuration{SectionDelivery: {"method": "account", "deviceLimit": 2.5}},
			want:   []string{"delivery.deviceLimit"},
		},
		{
			name:   "bad deposit percentage",
			update: Configuration{SectionPayments: {"partialPayments": true, "depositPercentage": "half"}},
			want:   []string{"payments.depositPercentage"},
		},
		{
			name:   "decimal deposit accepted",
			update: Configuration{SectionPayments: {"partialPayments": true, "minimumDeposit": "9.99"}},
			want:   nil,
		},
		{
			name:   "integral json number accepted",
			update: Configuration{SectionDelivery: {"method": "download", "downloadLimit": float64(5)}},
			want:   nil,
		},
		{
			name:   "non bool flag",
			update: Configuration{SectionPayments: {"allowPreorders": "yes"}},
			want:   []string{"payments.allowPreorders"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := MergeConfiguration(Configuration{}, tt.update, schema)
			if len(tt.want) == 0 {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, len(tt.want))
			for _, path := range tt.want {
				assert.Contains(t, errs, path)
			}
		})
	}
}

func TestMergeSkipsInactiveConditionalFields(t *testing.T) {
	schema := ResolveSchema(ModelOneTime)

	// downloadLimit is garbage, but delivery is by email so the field is
	// inactive and must not be rejected.
	update := Configuration{
		SectionDelivery: {"method": "email", "downloadLimit": "lots"},
	}
	merged, errs := MergeConfiguration(Configuration{}, update, schema)
	assert.Empty(t, errs)
	assert.Equal(t, "lots", merged[SectionDelivery]["downloadLimit"])

	// Omitting an inactive field is never an error either.
	update = Configuration{SectionRefunds: {"policy": "none"}}
	_, errs = MergeConfiguration(Configuration{}, update, schema)
	assert.Empty(t, errs)
}

func TestMergeUnknownTypeNeverErrors(t *testing.T) {
	schema := ResolveSchema(ModelType("nonexistent-type"))
	update := Configuration{
		"anything": {"goes": map[string]any{"even": "this"}, "number": "not-a-number"},
	}
	merged, errs := MergeConfiguration(Configuration{}, update, schema)
	assert.Empty(t, errs)
	assert.Equal(t, "not-a-number", merged["anything"]["number"])
}
