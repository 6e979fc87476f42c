package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		CategoryID Optional[uint] `json:"category_id"`
	}

	t.Run("absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.CategoryID.Set)
		assert.False(t, p.CategoryID.Valid)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"category_id": null}`), &p))
		assert.True(t, p.CategoryID.Set)
		assert.False(t, p.CategoryID.Valid)
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"category_id": 7}`), &p))
		assert.True(t, p.CategoryID.Set)
		assert.True(t, p.CategoryID.Valid)
		assert.Equal(t, uint(7), p.CategoryID.Value)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"category_id": "seven"}`), &p))
	})
}

func TestOptionalConstructors(t *testing.T) {
	some := Some(uint(3))
	assert.True(t, some.Set)
	assert.True(t, some.Valid)
	assert.Equal(t, uint(3), some.Value)

	null := Null[uint]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
}

func TestProductPatchUnmarshal(t *testing.T) {
	var patch ProductPatch
	body := `{"name": "Hammer", "supplier_id": null, "category_id": 2}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	require.NotNil(t, patch.Name)
	assert.Equal(t, "Hammer", *patch.Name)
	assert.Nil(t, patch.SKU)

	assert.True(t, patch.SupplierID.Set)
	assert.False(t, patch.SupplierID.Valid)

	assert.True(t, patch.CategoryID.Set)
	assert.True(t, patch.CategoryID.Valid)
	assert.Equal(t, uint(2), patch.CategoryID.Value)
}
