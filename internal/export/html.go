package export

import (
	"bufio"
	"io"

	"github.com/roach88/ptable/internal/store"
)

// HTML renders records as a bordered table. Column headers come from the
// first record's fields. Values are written verbatim, without escaping.
type HTML struct{}

func (HTML) Name() string        { return "html" }
func (HTML) Title() string       { return "HTML" }
func (HTML) DefaultFile() string { return "elements.html" }

// Export writes the table to w.
func (HTML) Export(w io.Writer, records []store.Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<table border=\"1\">\n")

	if len(records) > 0 {
		bw.WriteString("<tr>")
		for _, field := range records[0].Fields() {
			bw.WriteString("<th>" + field + "</th>")
		}
		bw.WriteString("</tr>\n")

		for _, r := range records {
			bw.WriteString("<tr>")
			for _, v := range r.Values() {
				bw.WriteString("<td>" + v + "</td>")
			}
			bw.WriteString("</tr>\n")
		}
	}

	bw.WriteString("</table>\n")
	return bw.Flush()
}
