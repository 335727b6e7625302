// Package render writes collected revision data to terminals and files.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/revdata/pkg/core"
)

// Columns are the revision table headers, in display order.
var Columns = []string{"Sequence", "Numbering", "Date", "Description", "Issued", "Issued To", "Issued By", "Show"}

func row(r core.RevisionRecord) []string {
	return []string{
		strconv.Itoa(r.Sequence),
		r.Numbering.String(),
		r.Date,
		r.Description,
		core.FormatBool(r.Issued),
		r.IssuedTo,
		r.IssuedBy,
		r.Show.String(),
	}
}

// TableOptions controls the terminal table.
type TableOptions struct {
	// NoHeader omits the header row.
	NoHeader bool
	// Padding is the number of spaces between columns. Zero means 2.
	Padding int
}

// Table writes records as an aligned table. Nothing is written for an empty slice.
func Table(w io.Writer, records []core.RevisionRecord, opts TableOptions) error {
	if len(records) == 0 {
		return nil
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = 2
	}

	tw := tabwriter.NewWriter(w, 0, 0, padding, ' ', 0)
	if !opts.NoHeader {
		if err := writeTabRow(tw, Columns); err != nil {
			return err
		}
	}
	for _, r := range records {
		if err := writeTabRow(tw, row(r)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeTabRow(w io.Writer, cells []string) error {
	for i, c := range cells {
		sep := "\t"
		if i == len(cells)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprint(w, sanitizeCell(c), sep); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeCell keeps tabs and newlines in free text from breaking the layout.
func sanitizeCell(s string) string {
	return cellReplacer.Replace(s)
}

var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// CSV writes records with a header row.
func CSV(w io.Writer, records []core.RevisionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
