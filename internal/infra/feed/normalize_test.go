package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecord_CanonicalKeys(t *testing.T) {
	record, err := NormalizeRecord(map[string]any{
		"id":          "price-1",
		"is_verified": true,
		"amount":      12.5,
	})
	assert.NoError(t, err)
	assert.Equal(t, "price-1", record.ID)
	assert.True(t, record.IsVerified)
	assert.Equal(t, 12.5, record.Columns["amount"])
}

func TestNormalizeRecord_AliasKeys(t *testing.T) {
	record, err := NormalizeRecord(map[string]any{
		"_id":        "price-2",
		"isVerified": true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "price-2", record.ID)
	assert.True(t, record.IsVerified)

	// Aliases are rewritten; only canonical keys survive.
	assert.Equal(t, "price-2", record.Columns["id"])
	assert.Equal(t, true, record.Columns["is_verified"])
	assert.NotContains(t, record.Columns, "_id")
	assert.NotContains(t, record.Columns, "isVerified")
}

func TestNormalizeRecord_CanonicalWinsOverAlias(t *testing.T) {
	record, err := NormalizeRecord(map[string]any{
		"id":          "canonical",
		"_id":         "alias",
		"is_verified": false,
		"isVerified":  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "canonical", record.ID)
	assert.False(t, record.IsVerified)
}

func TestNormalizeRecord_NumericID(t *testing.T) {
	record, err := NormalizeRecord(map[string]any{
		"id": float64(42),
	})
	assert.NoError(t, err)
	assert.Equal(t, "42", record.ID)
}

func TestNormalizeRecord_MissingID(t *testing.T) {
	_, err := NormalizeRecord(map[string]any{
		"amount": 3.0,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestNormalizeRecord_MissingVerifiedDefaultsFalse(t *testing.T) {
	record, err := NormalizeRecord(map[string]any{
		"id": "price-3",
	})
	assert.NoError(t, err)
	assert.False(t, record.IsVerified)
}
