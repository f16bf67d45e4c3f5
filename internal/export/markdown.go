package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/roach88/ptable/internal/store"
)

// MarkdownHeading is the first line of the Markdown document.
const MarkdownHeading = "# Chemical Elements Overview"

// Markdown renders a bullet list summarizing Element, Symbol and
// AtomicNumber of each record. Other fields are dropped.
type Markdown struct{}

func (Markdown) Name() string        { return "markdown" }
func (Markdown) Title() string       { return "Markdown" }
func (Markdown) DefaultFile() string { return "elements.md" }

// Export writes the list to w.
func (Markdown) Export(w io.Writer, records []store.Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(MarkdownHeading + "\n\n")
	for _, r := range records {
		fmt.Fprintf(bw, "- **%s** (%s): Atomic Number %s\n",
			r.Value(store.FieldElement),
			r.Value(store.FieldSymbol),
			r.Value(store.FieldAtomicNumber),
		)
	}
	return bw.Flush()
}
