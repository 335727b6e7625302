package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/revdata/pkg/core"
)

// Separator ends every report block.
const Separator = "=========="

// Report writes one block of labelled lines per report line:
//
//	Hidden on sheet: False
//	Name: Seq. 1 - Initial issue
//	Revision Enumeration: 0
//	...
//	==========
//
// Write failures wrap core.ErrReportWrite.
func Report(w io.Writer, lines []core.ReportLine) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		fmt.Fprintf(bw, "Hidden on sheet: %s\n", core.FormatBool(line.Hidden))
		fmt.Fprintf(bw, "Name: %s\n", singleLine(line.Name))
		for _, f := range line.Fields {
			fmt.Fprintf(bw, "%s: %s\n", f.Label, singleLine(f.Value))
		}
		fmt.Fprintln(bw, Separator)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrReportWrite, err)
	}
	return nil
}

// Summary writes the native fields of every revision on a sheet.
func Summary(w io.Writer, revisions []core.SheetRevision) error {
	bw := bufio.NewWriter(w)
	for _, r := range revisions {
		fmt.Fprintf(bw, "Rev Category Name: %s\n", r.Category)
		fmt.Fprintf(bw, "Rev Description: %s\n", singleLine(r.Description))
		fmt.Fprintf(bw, "Rev Issued: %s\n", core.FormatBool(r.Issued))
		fmt.Fprintf(bw, "Rev Issued By: %s\n", r.IssuedBy)
		fmt.Fprintf(bw, "Rev Issued To: %s\n", r.IssuedTo)
		fmt.Fprintf(bw, "Rev Number Type: %s\n", r.Numbering)
		fmt.Fprintf(bw, "Rev Date: %s\n", r.Date)
		fmt.Fprintf(bw, "Rev Visibility: %s\n", r.Show)
		fmt.Fprintf(bw, "Rev Sequence Number: %d\n", r.Sequence)
		fmt.Fprintf(bw, "Rev Number: %s\n", r.Number)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrReportWrite, err)
	}
	return nil
}

// singleLine keeps multi-line values from being mistaken for new labels.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
