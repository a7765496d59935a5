package words_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavinkharthik/proforma-api/internal/domain/words"
)

func TestConvert_Vectors(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{42, "Forty Two Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{105, "One Hundred Five Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1_000, "One Thousand Rupees Only"},
		{12_345, "Twelve Thousand Three Hundred Forty Five Rupees Only"},
		{1_00_000, "One Lakh Rupees Only"},
		{12_34_567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees Only"},
		{1_00_00_000, "One Crore Rupees Only"},
		{99_99_99_999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, words.Convert(tc.n), "n=%d", tc.n)
	}
}

// Zero renders the bare word without the "Rupees Only" suffix. That is the
// documented historical behavior, not an accident.
func TestConvert_ZeroIsBareWord(t *testing.T) {
	assert.Equal(t, "Zero", words.Convert(0))
}

func TestConvert_NegativeGetsMinusPrefix(t *testing.T) {
	assert.Equal(t, "Minus "+words.Convert(250), words.Convert(-250))
	assert.Equal(t, "Minus One Hundred Rupees Only", words.Convert(-100))
}

func TestConvert_OverflowSentinel(t *testing.T) {
	assert.Equal(t, words.Overflow, words.Convert(words.MaxAmount+1))
	assert.NotEqual(t, words.Overflow, words.Convert(words.MaxAmount))
}
