package render

import "math"

// BarBlocks maps value in [0, limit] to filled cells of a bar width cells wide
// Partial cells round down; non-positive limit yields an empty bar
func BarBlocks(value, limit float64, width int) int {
	if limit <= 0 || width <= 0 || value <= 0 || math.IsNaN(value) {
		return 0
	}
	if value >= limit {
		return width
	}
	return int(value / limit * float64(width))
}

// MarkerColumn returns the bar cell marking value, -1 when outside the bar
func MarkerColumn(value, limit float64, width int) int {
	if limit <= 0 || width <= 0 || value <= 0 || value > limit {
		return -1
	}
	col := int(value/limit*float64(width)) - 1
	if col < 0 {
		col = 0
	}
	return col
}
