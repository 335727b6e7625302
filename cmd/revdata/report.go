package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/revdata/pkg/adapters/fs"
	"github.com/aretw0/revdata/pkg/core"
	"github.com/aretw0/revdata/pkg/render"
)

var (
	reportOut   string
	reportSheet string
)

// sheetReport is the collected report of one sheet.
type sheetReport struct {
	sheet *core.Sheet
	lines []core.ReportLine
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the revisions referenced from a sheet as a text report",
	Long: `Write one block per revision referenced from the active sheet (or from every
sheet matching --sheet). Parameters a revision does not carry are written as
"null". With --out the report is written atomically: on any failure the file
is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		sheets, err := targetSheets(doc, reportSheet)
		if err != nil {
			return err
		}

		// Collect everything before writing so a failure never leaves a partial report.
		collector := newCollector()
		reports := make([]sheetReport, 0, len(sheets))
		for _, s := range sheets {
			lines, err := collector.CollectForReport(context.Background(), doc, s)
			if err != nil {
				return fmt.Errorf("error collecting report: %w", err)
			}
			reports = append(reports, sheetReport{sheet: s, lines: lines})
		}

		write := func(w io.Writer) error {
			return writeReports(w, reports)
		}
		if reportOut == "" {
			return write(cmd.OutOrStdout())
		}
		if err := fs.WriteFileAtomic(reportOut, 0644, write); err != nil {
			return err
		}
		slog.Info("report written", "path", reportOut, "sheets", len(reports))
		return nil
	},
}

// writeReports writes each sheet's block, headed by the sheet when more than
// one sheet is reported.
func writeReports(w io.Writer, reports []sheetReport) error {
	for _, r := range reports {
		if len(reports) > 1 {
			if _, err := fmt.Fprintf(w, "# Sheet %s - %s\n", r.sheet.Number, r.sheet.Name()); err != nil {
				return fmt.Errorf("%w: %w", core.ErrReportWrite, err)
			}
		}
		if err := render.Report(w, r.lines); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Write the report to this file instead of stdout")
	reportCmd.Flags().StringVar(&reportSheet, "sheet", "", "Report every sheet whose number matches this glob")
}
