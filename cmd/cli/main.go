package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	file       string
	sheet      string
	flagColumn string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "frauddash-cli",
		Short:         "Fraud insights from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Data file (.csv or .xlsx); overrides DATA_FILE")
	rootCmd.PersistentFlags().StringVar(&opts.sheet, "sheet", "", "Worksheet for .xlsx files; overrides DATA_SHEET")
	rootCmd.PersistentFlags().StringVar(&opts.flagColumn, "flag-column", "", "Fraud flag column; overrides FLAG_COLUMN")

	rootCmd.AddCommand(
		newSummarizeCmd(opts),
		newFeaturesCmd(opts),
		newGenerateCmd(),
	)
	return rootCmd
}
