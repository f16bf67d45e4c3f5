package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Well-known field names of the elements dataset.
const (
	FieldElement      = "Element"
	FieldSymbol       = "Symbol"
	FieldAtomicNumber = "AtomicNumber"
	FieldAtomicMass   = "AtomicMass"
	FieldGroup        = "Group"
	FieldPeriod       = "Period"
)

// Record is one row of the dataset: an ordered mapping from field name to
// string value.
type Record struct {
	fields []string
	values map[string]string
}

// NewRecord builds a Record from parallel field and value slices.
// Missing trailing values are stored as empty strings.
func NewRecord(fields, values []string) Record {
	r := Record{
		fields: make([]string, len(fields)),
		values: make(map[string]string, len(fields)),
	}
	copy(r.fields, fields)
	for i, f := range fields {
		if i < len(values) {
			r.values[f] = values[i]
		} else {
			r.values[f] = ""
		}
	}
	return r
}

// Fields returns the record's field names in order.
func (r Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Get returns the value of field and whether the field exists.
// An absent field is distinct from a present field with an empty value.
func (r Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Value returns the value of field, or "" when the field is absent.
func (r Record) Value(field string) string {
	return r.values[field]
}

// Values returns the values in field order.
func (r Record) Values() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = r.values[f]
	}
	return out
}

// Equal reports whether both records have the same fields, in the same
// order, with the same values.
func (r Record) Equal(other Record) bool {
	if len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.fields {
		if other.fields[i] != f {
			return false
		}
		if r.values[f] != other.values[f] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as a JSON object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, f); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, r.values[f]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping the
// document's key order as the field order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode record: expected object, got %v", tok)
	}

	var fields []string
	values := make(map[string]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		key := tok.(string) // object keys are always strings

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode record field %q: %w", key, err)
		}
		if _, dup := values[key]; !dup {
			fields = append(fields, key)
		}
		values[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	r.fields = fields
	r.values = values
	return nil
}

// writeJSONString appends s as a JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder adds a trailing newline, remove it
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
