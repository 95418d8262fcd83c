// Package main provides the entry point for the pairgen CLI application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/pairgen/internal/infrastructure/logging"
	"github.com/ersonp/pairgen/internal/infrastructure/parsers"
)

var (
	version = "0.1.0-dev"
	globals globalFlags
	logger  = zap.NewNop()
)

// globalFlags override values from .pairgen/config.yaml when set.
type globalFlags struct {
	verbose bool
	mode    string
	format  string
	sheet   string
	seed    uint64
	flatten bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var parseErr *parsers.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintln(os.Stderr, parseErrorHint)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pairgen",
		Short:         "Generate random pairs from a roster file",
		Long:          "Loads a roster from CSV, spreadsheet or JSON and generates randomized pairings.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(globals.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&globals.verbose, "verbose", "v", false, "Enable debug logging (shows skipped rows)")
	flags.StringVarP(&globals.mode, "mode", "m", "", "Pairing mode (unconstrained, simple, scored)")
	flags.StringVarP(&globals.format, "format", "f", "", "Input format (auto, csv, spreadsheet, json)")
	flags.StringVar(&globals.sheet, "sheet", "", "Spreadsheet sheet to read (default: first)")
	flags.Uint64Var(&globals.seed, "seed", 0, "Random seed for reproducible pairings (0: random)")
	flags.BoolVar(&globals.flatten, "flatten", false, "Treat every cell as a name (unconstrained mode)")

	rootCmd.AddCommand(
		newInitCmd(),
		newRosterCmd(),
		newPairCmd(),
		newSessionCmd(),
	)

	return rootCmd
}
