package export

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/ptable/internal/store"
)

const (
	xmlRoot   = "Elements"
	xmlRecord = "Element"
)

// XML renders records as a tree: one root, one container per record and
// one leaf per field, named after the field. Only encoding/xml's own text
// escaping is applied.
type XML struct{}

func (XML) Name() string        { return "xml" }
func (XML) Title() string       { return "XML" }
func (XML) DefaultFile() string { return "elements.xml" }

// Export writes the document to w.
func (XML) Export(w io.Writer, records []store.Record) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, r := range records {
		container := xml.StartElement{Name: xml.Name{Local: xmlRecord}}
		if err := enc.EncodeToken(container); err != nil {
			return err
		}
		for _, field := range r.Fields() {
			if !store.ValidFieldName(field) {
				return fmt.Errorf("xml: invalid element name %q", field)
			}
			leaf := xml.StartElement{Name: xml.Name{Local: field}}
			if err := enc.EncodeToken(leaf); err != nil {
				return err
			}
			if err := enc.EncodeToken(xml.CharData(r.Value(field))); err != nil {
				return err
			}
			if err := enc.EncodeToken(leaf.End()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(container.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// ParseXML reads a document written by XML back into records.
// Whitespace between containers is ignored; leaf text is kept verbatim.
func ParseXML(r io.Reader) ([]store.Record, error) {
	dec := xml.NewDecoder(r)

	var (
		records []store.Record
		fields  []string
		values  []string
		leaf    strings.Builder
		depth   int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if t.Name.Local != xmlRoot {
					return nil, fmt.Errorf("parse xml: unexpected root <%s>", t.Name.Local)
				}
			case 2:
				fields, values = nil, nil
			case 3:
				fields = append(fields, t.Name.Local)
				leaf.Reset()
			default:
				return nil, fmt.Errorf("parse xml: unexpected nesting at <%s>", t.Name.Local)
			}
		case xml.CharData:
			if depth == 3 {
				leaf.Write(t)
			}
		case xml.EndElement:
			switch depth {
			case 3:
				values = append(values, leaf.String())
			case 2:
				records = append(records, store.NewRecord(fields, values))
			}
			depth--
		}
	}

	if records == nil {
		records = []store.Record{}
	}
	return records, nil
}
