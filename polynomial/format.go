package polynomial

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/polyan/xreal"
)

// format renders the coefficients highest degree first.
// Zero terms are omitted, unit coefficients of non constant terms are
// abbreviated and negative terms are written "- |c|".
func format(coeffs []float64) string {

	if len(coeffs) == 1 && coeffs[0] == 0 {
		return "0"
	}

	var sb strings.Builder

	for i := len(coeffs) - 1; i >= 0; i-- {

		c := coeffs[i]

		if c == 0 {
			continue
		}

		term := formatTerm(i, c)

		switch {
		case sb.Len() == 0:
			sb.WriteString(term)
		case c > 0:
			sb.WriteString(" + ")
			sb.WriteString(term)
		default:
			sb.WriteString(" ")
			sb.WriteString(term)
		}
	}

	return sb.String()
}

func formatTerm(degree int, c float64) string {

	var sign string
	if c < 0 {
		sign = "- "
		c = -c
	}

	var variable string
	switch degree {
	case 0:
		return sign + xreal.FormatFloat(c)
	case 1:
		variable = "x"
	default:
		variable = fmt.Sprintf("x^%d", degree)
	}

	if c == 1 {
		return sign + variable
	}

	return sign + xreal.FormatFloat(c) + variable
}
