package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aretw0/revdata/pkg/render"
)

var displayFormats = []string{"table", "json", "csv"}

var (
	displayFormat   string
	displayNoHeader bool
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Show every revision of the document",
	Long: `Show the revisions of the whole document as listed in the Sheet Issues/Revisions
dialog. The active view must be a sheet. Nothing is printed when the document
has no revisions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(displayFormats, displayFormat) {
			return fmt.Errorf("unknown format %q (want table, json or csv)", displayFormat)
		}
		doc, err := openDocument()
		if err != nil {
			return err
		}
		if _, err := checkPreconditions(doc); err != nil {
			return err
		}

		records, err := newCollector().CollectForDisplay(context.Background(), doc)
		if err != nil {
			return fmt.Errorf("error collecting revisions: %w", err)
		}
		if len(records) == 0 {
			return nil
		}

		out := cmd.OutOrStdout()
		switch displayFormat {
		case "table":
			return render.Table(out, records, render.TableOptions{NoHeader: displayNoHeader})
		case "json":
			return render.JSON(out, records)
		case "csv":
			return render.CSV(out, records)
		default:
			return fmt.Errorf("unknown format %q (want table, json or csv)", displayFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(displayCmd)
	displayCmd.Flags().StringVar(&displayFormat, "format", "table", "Output format: table, json or csv")
	displayCmd.Flags().BoolVar(&displayNoHeader, "no-header", false, "Omit the table header")
}
