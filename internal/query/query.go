// Package query implements lookups over the Record Store.
//
// All functions are linear scans that return a new slice. An empty result
// is the "not found" signal; it is never an error.
package query

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/ptable/internal/store"
)

// IdentityFields are tried in order by Lookup.
var IdentityFields = []string{
	store.FieldAtomicNumber,
	store.FieldElement,
	store.FieldSymbol,
}

// Search returns every record whose value for field equals value, ignoring
// case. An absent field compares as the empty string.
func Search(records []store.Record, field, value string) []store.Record {
	want := fold(value)
	out := make([]store.Record, 0)
	for _, r := range records {
		if fold(r.Value(field)) == want {
			out = append(out, r)
		}
	}
	return out
}

// Lookup resolves a single query string against AtomicNumber, Element and
// Symbol in that order and returns the first non-empty match set.
func Lookup(records []store.Record, q string) []store.Record {
	for _, field := range IdentityFields {
		if found := Search(records, field, q); len(found) > 0 {
			return found
		}
	}
	return make([]store.Record, 0)
}

// Filter returns every record whose value for key equals value exactly.
// Used for group and period listings.
func Filter(records []store.Record, key, value string) []store.Record {
	out := make([]store.Record, 0)
	for _, r := range records {
		if r.Value(key) == value {
			out = append(out, r)
		}
	}
	return out
}

// fold maps s to its case-folded NFC form.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
