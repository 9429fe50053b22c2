package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/entro/internal/config"
	"github.com/wesleyorama2/entro/internal/entropy"
	"github.com/wesleyorama2/entro/internal/output"
)

var version = "0.1.0"

// NewRootCmd builds the root command. Each invocation returns a fresh
// command so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entro [file]",
		Short:   "Measure the randomness of a file or stream",
		Version: version,
		Long: `Entro applies statistical randomness tests to a file, or to standard
input when no file is given: Shannon entropy, chi-square distribution,
arithmetic mean, Monte Carlo estimation of Pi, and serial correlation.
It is useful for evaluating pseudorandom number generators, spotting
encrypted or compressed content, and estimating compression gains.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalysis,
	}

	cmd.Flags().BoolP("bits", "b", false, "Treat the input as a stream of bits")
	cmd.Flags().BoolP("fold-case", "f", false, "Fold upper case to lower case before analysis")
	cmd.Flags().BoolP("counts", "c", false, "Print the occurrence table")
	cmd.Flags().BoolP("terse", "t", false, "Terse output (shortcut for --format csv)")
	cmd.Flags().StringP("format", "o", "text", "Output format (text, json, yaml, csv)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("config", "", "Path to a YAML defaults file")

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	bits, _ := cmd.Flags().GetBool("bits")
	foldCase, _ := cmd.Flags().GetBool("fold-case")
	counts, _ := cmd.Flags().GetBool("counts")
	terse, _ := cmd.Flags().GetBool("terse")
	formatName, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	configPath, _ := cmd.Flags().GetString("config")

	// Config supplies defaults for flags the user did not set.
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("format") && cfg.Format != "" {
			formatName = cfg.Format
		}
		if !cmd.Flags().Changed("bits") {
			bits = cfg.Bits
		}
		if !cmd.Flags().Changed("fold-case") {
			foldCase = cfg.FoldCase
		}
		if !cmd.Flags().Changed("counts") {
			counts = cfg.Counts
		}
		if !cmd.Flags().Changed("no-color") {
			noColor = cfg.NoColor
		}
	}

	if terse {
		formatName = string(output.FormatCSV)
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if !noColor && !isTerminal(os.Stdout) {
		noColor = true
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts := []entropy.Option{}
	if bits {
		opts = append(opts, entropy.WithMode(entropy.ModeBit))
	}
	if foldCase {
		opts = append(opts, entropy.WithFoldCase())
	}
	analyzer := entropy.NewAnalyzer(data, opts...)

	result := analyzer.Calculate()
	var table *entropy.FrequencyTable
	if counts {
		table = analyzer.FrequencyTable()
	}

	report, err := output.GetFormatter(format, noColor).FormatReport(result, table)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}

// readInput materializes the full byte sequence from the file argument,
// or from standard input when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
