package pdf

import "strings"

// WidthFunc measures the rendered width of text at a font size. Production
// code plugs in gofpdf's string-width metrics; tests inject synthetic widths.
type WidthFunc func(text string, size float64) float64

// Alignment is the horizontal alignment of text inside a box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Clip removes trailing characters one at a time until the text fits the
// width. Empty input stays empty; text that already fits is unchanged. The
// result is always a prefix of the input.
func Clip(s string, size, maxWidth float64, widthOf WidthFunc) string {
	current := []rune(s)
	for len(current) > 0 && widthOf(string(current), size) > maxWidth {
		current = current[:len(current)-1]
	}
	return string(current)
}

// Wrap greedily packs whitespace-delimited words into lines of at most
// maxWidth, closing a line on overflow. Words are never split mid-word; a
// single word wider than the box still gets its own (overflowing) line.
// Once maxLines lines exist the remaining words are silently discarded —
// truncation, not an error, is the defined behavior.
func Wrap(s string, size, maxWidth float64, maxLines int, widthOf WidthFunc) []string {
	if s == "" || maxLines <= 0 {
		return nil
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if widthOf(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
		if len(lines) >= maxLines {
			return lines[:maxLines]
		}
	}
	if current != "" && len(lines) < maxLines {
		lines = append(lines, current)
	}
	return lines
}

// AlignedX returns the x coordinate at which text of the measured width is
// drawn inside the box for the given alignment.
func AlignedX(box LayoutBox, textWidth float64, align Alignment) float64 {
	switch align {
	case AlignCenter:
		return box.X + (box.W-textWidth)/2
	case AlignRight:
		return box.X + box.W - textWidth
	default:
		return box.X
	}
}
