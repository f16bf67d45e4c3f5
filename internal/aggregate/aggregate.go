// Package aggregate computes summary statistics over records.
package aggregate

import (
	"fmt"
	"strconv"

	"github.com/roach88/ptable/internal/store"
)

// AverageMass returns the arithmetic mean of the AtomicMass field over all
// records whose mass parses. Unparseable values are skipped silently.
// Returns 0 when no value parses.
func AverageMass(records []store.Record) float64 {
	return Average(records, store.FieldAtomicMass)
}

// Average returns the mean of field over all records whose value is a plain
// decimal number (see ParseMass). Returns 0 when no value parses.
func Average(records []store.Record, field string) float64 {
	var sum float64
	var n int
	for _, r := range records {
		v, ok := ParseMass(r.Value(field))
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ParseMass parses s as an unsigned decimal: ASCII digits with at most one
// '.', and at least one digit. Signs, exponents, whitespace and annotations
// such as "[209]" or "n/a" are rejected.
func ParseMass(s string) (float64, bool) {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatMass renders a mass with two decimal digits.
func FormatMass(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
