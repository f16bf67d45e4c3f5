package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roach88/ptable/internal/store"
)

// JSON renders records as an indented array of objects. Keys keep field
// order and HTML characters are not escaped.
type JSON struct{}

func (JSON) Name() string        { return "json" }
func (JSON) Title() string       { return "JSON" }
func (JSON) DefaultFile() string { return "elements.json" }

// Export writes the document to w.
func (JSON) Export(w io.Writer, records []store.Record) error {
	if records == nil {
		records = []store.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

// ParseJSON reads a document written by JSON back into records.
func ParseJSON(r io.Reader) ([]store.Record, error) {
	var records []store.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}
