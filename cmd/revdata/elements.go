package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/revdata/pkg/render"
)

var (
	elementsJSON bool
)

type elementRow struct {
	ID       int64  `json:"id"`
	UniqueID string `json:"unique_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the elements of the snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}

		rows := []elementRow{}
		for _, el := range doc.Elements() {
			rows = append(rows, elementRow{
				ID:       int64(el.ID()),
				UniqueID: el.UniqueID(),
				Category: el.Category(),
				Name:     el.Name(),
			})
		}

		if elementsJSON {
			return render.JSON(cmd.OutOrStdout(), rows)
		}
		for _, r := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.ID, r.UniqueID, r.Category, r.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
	elementsCmd.Flags().BoolVar(&elementsJSON, "json", false, "Output in JSON format")
}
