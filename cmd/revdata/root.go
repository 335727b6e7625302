package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/revdata"
	"github.com/aretw0/revdata/pkg/adapters/fs"
	"github.com/aretw0/revdata/pkg/core"
)

var (
	verbose      bool
	snapshotPath string
	strict       bool
	activeView   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "revdata",
	Short: "Extract revision data from a project snapshot",
	Long: `revdata reads the revisions of a project document and shows them as a table,
or writes the revisions referenced from a sheet as a flat text report.
The snapshot is never modified.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "file", "f", "", "Snapshot file (default: revisions.{yaml,yml,json,md} found from the working directory upwards)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject unknown snapshot fields and parameter storage kinds")
	rootCmd.PersistentFlags().StringVar(&activeView, "view", "", "Override the active view (element id, sheet number or view name)")
}

// openDocument loads the snapshot selected by the persistent flags.
func openDocument() (*fs.Model, error) {
	path := snapshotPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting working directory: %w", err)
		}
		path, err = revdata.FindSnapshot(wd)
		if err != nil {
			return nil, err
		}
	}

	doc, err := revdata.Open(path,
		revdata.WithLogger(slog.Default()),
		revdata.WithStrict(strict),
		revdata.WithActiveView(activeView),
	)
	if err != nil {
		return nil, fmt.Errorf("error opening snapshot: %w", err)
	}
	return doc, nil
}

func newCollector() *core.Collector {
	return revdata.NewCollector(revdata.WithLogger(slog.Default()))
}

// checkPreconditions mirrors the dialogs a user sees when the command is
// started from the wrong place.
func checkPreconditions(doc core.Document) (*core.Sheet, error) {
	sheet, err := core.RequireSheetView(doc)
	return sheet, titled(err)
}

func titled(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrFamilyDocument):
		return fmt.Errorf("Not a project document: %w", err)
	case errors.Is(err, core.ErrNotSheetView):
		return fmt.Errorf("Current view is not a sheet: %w", err)
	default:
		return err
	}
}

// targetSheets returns the sheets matching pattern, or the active sheet when
// pattern is empty.
func targetSheets(doc core.Document, pattern string) ([]*core.Sheet, error) {
	if pattern == "" {
		sheet, err := checkPreconditions(doc)
		if err != nil {
			return nil, err
		}
		return []*core.Sheet{sheet}, nil
	}
	if doc.IsFamilyDocument() {
		return nil, titled(core.ErrFamilyDocument)
	}
	return revdata.SelectSheets(doc, pattern)
}
