package demo

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVector renders the first n components of v with 6 decimals as
// "[a, b, ...]". The ellipsis marks omitted components.
func FormatVector(v []float32, n int) string {
	n = min(n, len(v))
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.FormatFloat(float64(v[i]), 'f', 6, 32)
	}
	s := "[" + strings.Join(parts, ", ")
	if n < len(v) {
		s += ", ..."
	}
	return s + "]"
}

// formatMatrix renders a square matrix labeled T1..Tn with 3 decimals.
func formatMatrix(m [][]float64) string {
	var b strings.Builder
	b.WriteString("    ")
	for i := range m {
		fmt.Fprintf(&b, "%7s", fmt.Sprintf("T%d", i+1))
	}
	b.WriteString("\n")
	for i, row := range m {
		fmt.Fprintf(&b, "%-4s", fmt.Sprintf("T%d", i+1))
		for _, v := range row {
			fmt.Fprintf(&b, "%7.3f", v)
		}
		b.WriteString("\n")
	}
	return b.String()
}
