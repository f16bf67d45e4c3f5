package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/ptable/internal/store"
	"github.com/roach88/ptable/internal/testutil"
)

func massRecords(masses ...string) []store.Record {
	header := []string{store.FieldElement, store.FieldAtomicMass}
	rows := make([][]string, len(masses))
	for i, m := range masses {
		rows[i] = []string{"E", m}
	}
	return testutil.Records(header, rows...)
}

func TestAverageMass_SkipsInvalid(t *testing.T) {
	avg := AverageMass(massRecords("1.008", "4.0026", "n/a"))

	assert.InDelta(t, 2.5053, avg, 1e-9)
	assert.Equal(t, "2.51", FormatMass(avg))
}

func TestAverageMass_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AverageMass(nil))
	assert.Equal(t, 0.0, AverageMass(massRecords()))
	assert.Equal(t, 0.0, AverageMass(massRecords("n/a", "", "[209]")))
	assert.Equal(t, "0.00", FormatMass(AverageMass(nil)))
}

func TestAverageMass_MissingField(t *testing.T) {
	records := testutil.Records([]string{store.FieldElement}, []string{"Hydrogen"})
	assert.Equal(t, 0.0, AverageMass(records))
}

func TestAverageMass_SampleData(t *testing.T) {
	avg := AverageMass(testutil.SampleRecords())
	assert.Equal(t, "2.51", FormatMass(avg))
}

func TestAverage_OtherField(t *testing.T) {
	assert.InDelta(t, 1.5, Average(testutil.SampleRecords(), store.FieldAtomicNumber), 1e-9)
}

func TestParseMass(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "1.008", want: 1.008, ok: true},
		{in: "12", want: 12, ok: true},
		{in: "1.", want: 1, ok: true},
		{in: ".5", want: 0.5, ok: true},
		{in: "0", want: 0, ok: true},
		{in: "", ok: false},
		{in: ".", ok: false},
		{in: "1.0.0", ok: false},
		{in: "-1.5", ok: false},
		{in: "+1.5", ok: false},
		{in: "1e3", ok: false},
		{in: " 1.0", ok: false},
		{in: "[209]", ok: false},
		{in: "n/a", ok: false},
		{in: "NaN", ok: false},
		{in: "١٢", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMass(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestFormatMass(t *testing.T) {
	assert.Equal(t, "2.51", FormatMass(2.5053))
	assert.Equal(t, "118.00", FormatMass(118))
	assert.Equal(t, "0.01", FormatMass(0.005000001))
}
