package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

type pairFlags struct {
	output     string
	outputFile string
}

func newPairCmd() *cobra.Command {
	var flags pairFlags

	cmd := &cobra.Command{
		Use:   "pair <file>",
		Short: "Generate pairs from a roster file",
		Long:  "Loads a roster file and generates one set of pairs using the configured mode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPair(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.output, "output", outputText, "Output format (text, json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.outputFile, "output-file", "o", "", "Write output to file (default: stdout)")

	return cmd
}

func runPair(cmd *cobra.Command, path string, flags pairFlags) error {
	if !slices.Contains(validOutputs, flags.output) {
		return fmt.Errorf("invalid output %q, valid outputs: %v", flags.output, validOutputs)
	}

	return withDeps(cmd, func(deps *Deps) error {
		res, err := deps.PairHandler.Handle(cmd.Context(), path, deps.FileOptions)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), flags, func(w io.Writer) error {
			return renderResult(w, flags.output, res.Result)
		})
	})
}

// writeResult sends rendered output to the output file when one is given,
// otherwise to stdout.
func writeResult(stdout io.Writer, flags pairFlags, render func(io.Writer) error) (err error) {
	if flags.outputFile == "" {
		if err := render(stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		return nil
	}

	f, err := os.OpenFile(flags.outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := render(f); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	fmt.Fprintf(stdout, "Wrote pairs to %s\n", flags.outputFile)
	return nil
}
