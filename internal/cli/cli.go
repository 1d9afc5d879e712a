// Package cli implements the tessella command-line interface.
//
// This package provides commands for rendering proportional block charts
// from ratio series, rendering association charts from spreadsheet data,
// and serving a live-reloading chart preview. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - treemap: Render a ratio series as a proportional block chart
//   - assoc: Render spreadsheet records as an association chart
//   - serve: Serve a chart over HTTP, optionally re-rendering on change
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/tessella/tessella/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/buildinfo"
)

// Execute runs the tessella CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (treemap,
// assoc, serve), configures logging based on the --verbose flag, and
// executes the command tree.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tessella",
		Short:        "tessella renders proportional block charts and association charts",
		Long:         `tessella is a CLI tool for rendering a ratio series as a proportionally tiled square (a block chart) and for rendering spreadsheet co-occurrence data as an association bubble chart.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTreemapCmd())
	root.AddCommand(newAssocCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
