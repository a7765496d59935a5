package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinkharthik/proforma-api/internal/application/dto"
)

// Malformed numerics degrade to zero instead of failing the unmarshal; the
// Valid flag is what validation later keys off.
func TestNumber_LenientUnmarshal(t *testing.T) {
	var in struct {
		A dto.Number `json:"a"`
		B dto.Number `json:"b"`
		C dto.Number `json:"c"`
		D dto.Number `json:"d"`
		E dto.Number `json:"e"`
	}
	payload := `{"a": 12.5, "b": "37.25", "c": "not-a-number", "d": null, "e": {"nested": true}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.True(t, in.A.Valid)
	assert.True(t, in.A.Decimal.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, in.B.Valid)
	assert.True(t, in.B.Decimal.Equal(decimal.RequireFromString("37.25")))

	assert.False(t, in.C.Valid)
	assert.True(t, in.C.Decimal.IsZero())
	assert.False(t, in.D.Valid)
	assert.True(t, in.D.Decimal.IsZero())
	assert.False(t, in.E.Valid)
	assert.True(t, in.E.Decimal.IsZero())
}

func TestNumber_AbsentFieldIsInvalidZero(t *testing.T) {
	var in dto.LineItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"particulars":"tape"}`), &in))
	assert.False(t, in.Rate.Valid)
	assert.True(t, in.Rate.Decimal.IsZero())
}
