package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/ptable/internal/store"
)

// SampleHeader is the field set of the two-element fixture.
var SampleHeader = []string{
	store.FieldElement,
	store.FieldSymbol,
	store.FieldAtomicNumber,
	store.FieldAtomicMass,
	store.FieldGroup,
	store.FieldPeriod,
}

// SampleCSV is a two-element dataset (hydrogen and helium).
const SampleCSV = `Element,Symbol,AtomicNumber,AtomicMass,Group,Period
Hydrogen,H,1,1.008,1,1
Helium,He,2,4.0026,18,1
`

// SampleStore returns the two-element dataset as an in-memory Store.
func SampleStore() *store.Store {
	return store.New(SampleHeader, SampleRecords())
}

// SampleRecords returns the two-element dataset as records.
func SampleRecords() []store.Record {
	return []store.Record{
		store.NewRecord(SampleHeader, []string{"Hydrogen", "H", "1", "1.008", "1", "1"}),
		store.NewRecord(SampleHeader, []string{"Helium", "He", "2", "4.0026", "18", "1"}),
	}
}

// Records builds records from CSV-like rows sharing one header.
func Records(header []string, rows ...[]string) []store.Record {
	out := make([]store.Record, len(rows))
	for i, row := range rows {
		out[i] = store.NewRecord(header, row)
	}
	return out
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteSampleCSV writes SampleCSV into a fresh temp dir and returns its path.
func WriteSampleCSV(t *testing.T) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "elements.csv", SampleCSV)
}

// Lines splits s into lines without the trailing empty element.
func Lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
