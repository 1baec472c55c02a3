// Package cli implements the erd command-line interface.
//
// The root command reads entity-relationship markup from a file or stdin,
// translates it to DOT, and writes the result (optionally laid out as SVG
// or PNG) to a file or stdout. The serve subcommand runs a local preview
// server that re-renders a markup file on every request.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/davechallis/erd-go/pkg/buildinfo"
)

// Execute runs the erd CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	opts := &translateOpts{}

	root := &cobra.Command{
		Use:   "erd",
		Short: "erd translates entity-relationship markup into Graphviz diagrams",
		Long: `erd reads a plain-text description of entities, attributes and the
relationships between them, and produces a DOT graph description (or a
rendered SVG/PNG) suitable for Graphviz.

Reads from stdin and writes to stdout unless --input/--output are given.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "TOML file with global option overrides (default: erd.toml if present)")

	root.Flags().StringVarP(&opts.input, "input", "i", "", "input markup file (stdin if empty)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	root.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png (default inferred from output extension, else dot)")

	root.AddCommand(newServeCmd(opts))

	return root.ExecuteContext(context.Background())
}
