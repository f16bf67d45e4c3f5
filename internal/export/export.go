package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/ptable/internal/store"
)

// Exporter writes a complete record sequence in one format.
type Exporter interface {
	// Name is the registry key, e.g. "json".
	Name() string
	// Title is the display name, e.g. "JSON".
	Title() string
	// DefaultFile is the output file name used when none is configured.
	DefaultFile() string
	// Export writes records to w.
	Export(w io.Writer, records []store.Record) error
}

var registry = []Exporter{HTML{}, JSON{}, XML{}, Markdown{}}

var aliases = map[string]string{
	"htm": "html",
	"md":  "markdown",
}

// All returns the registered exporters in menu order.
func All() []Exporter {
	out := make([]Exporter, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registry keys in menu order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name()
	}
	return names
}

// Lookup finds an exporter by name or alias, ignoring case.
func Lookup(name string) (Exporter, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	for _, e := range registry {
		if e.Name() == key {
			return e, true
		}
	}
	return nil, false
}

// WriteFile writes records to path with exp, replacing any existing file.
// The document is rendered in memory and moved into place through a
// temporary file in the same directory, so a failed export leaves the
// previous file untouched. Any failure is returned as a *store.IOError
// with Op "write".
func WriteFile(path string, exp Exporter, records []store.Record) error {
	var buf bytes.Buffer
	if err := exp.Export(&buf, records); err != nil {
		return &store.IOError{Path: path, Op: "write", Err: fmt.Errorf("export %s: %w", exp.Name(), err)}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &store.IOError{Path: path, Op: "write", Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()
	_ = tmp.Chmod(0644)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return &store.IOError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &store.IOError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &store.IOError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &store.IOError{Path: path, Op: "write", Err: err}
	}
	tmpName = ""
	return nil
}
