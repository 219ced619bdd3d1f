package main

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/arloliu/mca/nbt"
	"github.com/spf13/cobra"
)

type dumpOptions struct {
	jsonOut  bool
	chunk    int
	workers  int
	skipBad  bool
	verbose  bool
	maxDepth int
	maxAlloc int

	maxTotalAlloc int
}

func newRootCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "mcadump <region-file>",
		Short: "Decode the chunks of a region file",
		Long: `mcadump decodes every chunk of a region (.mca) file and prints a one-line
summary per chunk, or the full tag trees as JSON.

Decoding stops at the first corrupt chunk unless --skip-bad is given.

Example:
  mcadump r.0.0.mca
  mcadump r.0.0.mca --json --chunk 33
  mcadump r.-1.2.mca --skip-bad --workers 8 -v`,
		Version:       "0.1.0",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return runDump(cmd.OutOrStdout(), logger, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output chunks as JSON")
	cmd.Flags().IntVar(&opts.chunk, "chunk", -1, "Decode only the chunk in this table slot (0-1023)")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of chunks decoded concurrently")
	cmd.Flags().BoolVar(&opts.skipBad, "skip-bad", false, "Log and skip corrupt chunks instead of failing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", nbt.DefaultMaxDepth, "Maximum tag nesting depth")
	cmd.Flags().IntVar(&opts.maxAlloc, "max-alloc", nbt.DefaultMaxAllocSize, "Maximum bytes per chunk and per array")
	cmd.Flags().IntVar(&opts.maxTotalAlloc, "max-total-alloc", nbt.DefaultMaxTotalAlloc, "Maximum estimated bytes per decoded chunk tree")

	return cmd
}

// newLogger writes text logs to w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
