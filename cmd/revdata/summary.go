package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/revdata/pkg/core"
	"github.com/aretw0/revdata/pkg/render"
)

var (
	summarySheet string
	summaryJSON  bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the native fields of the revisions on a sheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}
		sheets, err := targetSheets(doc, summarySheet)
		if err != nil {
			return err
		}

		collector := newCollector()
		var all []core.SheetRevision
		for _, s := range sheets {
			revs, err := collector.CollectSheetSummary(context.Background(), doc, s)
			if err != nil {
				return fmt.Errorf("error collecting summary: %w", err)
			}
			all = append(all, revs...)
		}

		if summaryJSON {
			if all == nil {
				all = []core.SheetRevision{}
			}
			return render.JSON(cmd.OutOrStdout(), all)
		}
		return render.Summary(cmd.OutOrStdout(), all)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summarySheet, "sheet", "", "Summarize every sheet whose number matches this glob")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output in JSON format")
}
