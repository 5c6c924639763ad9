// Package export renders a read-only snapshot of the task list in
// interchange formats. Exporting never changes the store.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"taskpad/internal/store"
)

type Exporter struct{ st *store.Store }

func NewExporter(st *store.Store) *Exporter { return &Exporter{st: st} }

// Export renders the current collection as json, csv or pdf.
// The json form is the persisted snapshot shape, so an export can be
// re-imported by dropping it into the data file.
func (e *Exporter) Export(format string) ([]byte, error) {
	all := e.st.Tasks()
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(all, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "completed"})
		for _, t := range all {
			_ = w.Write([]string{t.ID, t.Title, strconv.FormatBool(t.Completed)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		done, pending := e.st.Stats()
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(40, 8, fmt.Sprintf("%d done, %d pending, %d total", done, pending, done+pending))
		pdf.Ln(10)
		for _, t := range all {
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			pdf.MultiCell(0, 6, fmt.Sprintf("%s %s", box, t.Title), "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
