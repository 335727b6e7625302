package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/revdata"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of revdata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "revdata version %s\n", strings.TrimSpace(revdata.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
