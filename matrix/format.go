// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matview/numeric"
)

// ---------- Formatting literals  ----------
const (
	_fmtOpen  = "{"
	_fmtClose = "}"
	_fmtSep   = ", "
)

// formatWindow renders w row by row as "{{a, b}, {c, d}}". An empty window
// renders as "{}".
func formatWindow[T numeric.Number](w window[T]) string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for r := 0; r < w.rows; r++ {
		if r > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for c, v := range w.row(r) {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
