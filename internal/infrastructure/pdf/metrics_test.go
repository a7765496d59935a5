package pdf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavinkharthik/proforma-api/internal/infrastructure/pdf"
)

// fixedWidth gives every rune half the font size in width, which keeps the
// arithmetic in the assertions trivial.
func fixedWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size / 2
}

func TestClip_FitsUnchanged(t *testing.T) {
	assert.Equal(t, "hello", pdf.Clip("hello", 10, 100, fixedWidth))
}

func TestClip_EmptyStaysEmpty(t *testing.T) {
	assert.Equal(t, "", pdf.Clip("", 10, 5, fixedWidth))
}

// Clipped output must fit the box and be a prefix of the input, for any
// width.
func TestClip_PrefixAndWidthProperties(t *testing.T) {
	const s = "a somewhat longer line of invoice text"
	for _, maxWidth := range []float64{0, 3, 17, 50, 99, 1000} {
		got := pdf.Clip(s, 10, maxWidth, fixedWidth)
		assert.True(t, strings.HasPrefix(s, got), "width %v", maxWidth)
		assert.LessOrEqual(t, fixedWidth(got, 10), maxWidth, "width %v", maxWidth)
	}
}

func TestWrap_PacksGreedily(t *testing.T) {
	// 10 units per rune at size 20; box of 100 fits "one two" (7 runes = 70)
	// but not "one two three" (13 runes = 130).
	lines := pdf.Wrap("one two three four", 20, 100, 5, fixedWidth)
	assert.Equal(t, []string{"one two", "three four"}, lines)
}

func TestWrap_NeverExceedsMaxLines(t *testing.T) {
	text := strings.Repeat("word ", 50)
	for _, maxLines := range []int{1, 2, 3, 7} {
		lines := pdf.Wrap(text, 20, 100, maxLines, fixedWidth)
		assert.LessOrEqual(t, len(lines), maxLines)
	}
}

// Excess words are dropped silently; the kept lines are the leading ones.
func TestWrap_SilentTruncationKeepsLeadingWords(t *testing.T) {
	lines := pdf.Wrap("aa bb cc dd ee ff gg hh", 20, 50, 2, fixedWidth)
	assert.Equal(t, []string{"aa bb", "cc dd"}, lines)
}

func TestWrap_NeverSplitsWords(t *testing.T) {
	lines := pdf.Wrap("short antidisestablishmentarianism end", 20, 100, 5, fixedWidth)
	joined := strings.Join(lines, " ")
	for _, w := range []string{"short", "antidisestablishmentarianism", "end"} {
		assert.Contains(t, strings.Fields(joined), w)
	}
}

func TestWrap_EmptyInput(t *testing.T) {
	assert.Nil(t, pdf.Wrap("", 10, 100, 3, fixedWidth))
}

func TestAlignedX(t *testing.T) {
	box := pdf.LayoutBox{X: 100, W: 50}
	assert.Equal(t, 100.0, pdf.AlignedX(box, 20, pdf.AlignLeft))
	assert.Equal(t, 115.0, pdf.AlignedX(box, 20, pdf.AlignCenter))
	assert.Equal(t, 130.0, pdf.AlignedX(box, 20, pdf.AlignRight))
}
