package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
)

func TestMemoryActiveModelStoreRoundTrip(t *testing.T) {
	store := NewMemoryActiveModelStore()

	initial, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, initial)

	set := billingmodel.Add(nil, billingmodel.SelectedModel{ID: 1, Name: "One-Time Purchase", Type: billingmodel.ModelOneTime})
	set = billingmodel.Add(set, billingmodel.SelectedModel{ID: 2, Name: "Credit System", Type: billingmodel.ModelCredit})
	require.NoError(t, store.Save(set))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestMemoryActiveModelStoreIsolation(t *testing.T) {
	store := NewMemoryActiveModelStore()
	set := billingmodel.Add(nil, billingmodel.SelectedModel{ID: 1, Type: billingmodel.ModelOneTime})
	require.NoError(t, store.Save(set))

	loaded, err := store.Load()
	require.NoError(t, err)
	loaded[0].IsPrimary = false

	again, err := store.Load()
	require.NoError(t, err)
	assert.True(t, again[0].IsPrimary, "mutating a loaded copy must not affect the store")
}
