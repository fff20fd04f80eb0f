package renderer

import (
	"math"
	"strings"
)

// cell escapes text for use inside a markdown table cell.
func cell(text string) string {
	text = strings.ReplaceAll(text, "|", `\|`)
	return strings.ReplaceAll(text, "\n", " ")
}

const barWidth = 30

// bar draws v as a horizontal bar scaled against top. Negative values use a
// lighter glyph so that a loss stands out.
func bar(v, top float64) string {
	if top <= 0 || v == 0 {
		return ""
	}
	n := int(math.Round(math.Abs(v) / top * barWidth))
	if n == 0 {
		n = 1
	}
	if v < 0 {
		return strings.Repeat("░", n)
	}
	return strings.Repeat("█", n)
}
