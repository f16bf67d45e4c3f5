package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Store is the ordered, read-only collection of records loaded at startup.
type Store struct {
	path    string
	header  []string
	records []Record
}

// New builds a Store from an already parsed header and records.
// Used by tests and by callers that assemble records in memory.
func New(header []string, records []Record) *Store {
	h := make([]string, len(header))
	copy(h, header)
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Store{header: h, records: rs}
}

// Load reads the whole delimited file at path into a Store.
//
// Returns *IOError if the file cannot be opened or read and *FormatError
// if it has no header row or a row's column count differs from the header.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	s, err := parse(f, path)
	if err != nil {
		return nil, err
	}
	s.path = path
	return s, nil
}

// Parse reads a Store from r. See Load for the error contract.
func Parse(r io.Reader) (*Store, error) {
	return parse(r, "")
}

func parse(r io.Reader, path string) (*Store, error) {
	reader := csv.NewReader(r)
	// Column count is fixed by the header row
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Path: path, Message: "no header row"}
	}
	if err != nil {
		return nil, readError(path, err)
	}

	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		line, _ := reader.FieldPos(i)
		if name == "" {
			return nil, &FormatError{Path: path, Line: line, Message: fmt.Sprintf("empty header field in column %d", i+1)}
		}
		if !ValidFieldName(name) {
			return nil, &FormatError{Path: path, Line: line, Message: fmt.Sprintf("invalid header field %q: must be a letter or '_' followed by letters, digits, '_', '-' or '.'", name)}
		}
		if seen[name] {
			return nil, &FormatError{Path: path, Line: line, Message: fmt.Sprintf("duplicate header field %q", name)}
		}
		seen[name] = true
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(path, err)
		}
		records = append(records, NewRecord(header, row))
	}

	return &Store{header: header, records: records}, nil
}

// ValidFieldName reports whether name can be used as a field name. Field
// names double as element names in tree-markup exports, so they follow the
// XML name rules without namespaces: a letter or '_' first, then letters,
// digits, '_', '-' or '.'.
func ValidFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

// readError classifies a csv.Reader failure.
func readError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		msg := pe.Err.Error()
		if errors.Is(pe.Err, csv.ErrFieldCount) {
			msg = "column count does not match header"
		}
		return &FormatError{Path: path, Line: pe.Line, Message: msg, Err: err}
	}
	return &IOError{Path: path, Op: "read", Err: err}
}

// Path returns the file the store was loaded from, or "" for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Header returns the field names in source order.
func (s *Store) Header() []string {
	out := make([]string, len(s.header))
	copy(out, s.header)
	return out
}

// Records returns the records in source order.
// The returned slice is a copy; records themselves are immutable.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
