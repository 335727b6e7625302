package main

import (
	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/revdata/pkg/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the internal state of the loaded snapshot and collector",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument()
		if err != nil {
			return err
		}

		components := []any{doc, newCollector()}
		out := make(map[string]any, len(components))
		for _, c := range components {
			comp, ok := c.(introspection.Component)
			if !ok {
				continue
			}
			if intro, ok := c.(introspection.Introspectable); ok {
				out[comp.ComponentType()] = intro.State()
			}
		}
		return render.JSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
