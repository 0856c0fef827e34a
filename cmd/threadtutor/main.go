// seehuhn.de/go/threading - a walkthrough of threads in Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command threadtutor runs the examples of the threading walkthrough.
//
// Usage:
//
//	threadtutor list
//	threadtutor run [flags] N
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/threading/examples"
)

// options holds the values of the command line flags.
type options struct {
	size    int
	workers int
	noPause bool
	verbose bool
	png     string
	thumb   int

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "threadtutor",
		Short: "A walkthrough of threads, races and parallel loops in Go",
		Long: `threadtutor runs small, annotated examples which introduce threads,
race conditions and ways to spread a workload over many CPUs.

Each example prints an explanation, waits for a key press and then runs
some code. Read the source code alongside the output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			opts.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.size, "size", env.Int("THREADTUTOR_SIZE", 4096),
		"side length of generated bitmaps in pixels")
	flags.IntVar(&opts.workers, "workers", env.Int("THREADTUTOR_WORKERS", runtime.NumCPU()),
		"number of worker goroutines and threads")
	flags.BoolVar(&opts.noPause, "no-pause", false, "do not wait for key presses")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.png, "png", "", "write the generated bitmap to this PNG file")
	flags.IntVar(&opts.thumb, "thumb", 512, "scale PNG output down to this size (0 keeps full size)")

	rootCmd.AddCommand(newListCmd(), newRunCmd(opts))
	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all examples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, n := range examples.Numbers() {
				fmt.Fprintf(out, "%d  %s\n", n, examples.All[n].Title)
			}
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run N",
		Short: "Run example number N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid example number %q", args[0])
			}
			ex, err := examples.Lookup(n)
			if err != nil {
				return err
			}
			if opts.size < 1 {
				return fmt.Errorf("--size must be positive, got %d", opts.size)
			}
			if opts.workers < 1 {
				return fmt.Errorf("--workers must be positive, got %d", opts.workers)
			}

			exEnv := &examples.Env{
				Out:     cmd.OutOrStdout(),
				Pager:   examples.KeyPress{In: os.Stdin},
				Size:    opts.size,
				Workers: opts.workers,
				PNG:     opts.png,
				Thumb:   opts.thumb,
				Logger:  opts.logger,
			}
			if opts.noPause {
				exEnv.Pager = examples.NoPause{}
			}
			return examples.Run(ex, exEnv)
		},
	}
}
