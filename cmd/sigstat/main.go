// Package main provides the entry point for the sigstat CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigstat-io/sigstat/cmd/sigstat/commands"
	"github.com/sigstat-io/sigstat/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sigstat",
		Short: "Sigstat - summary statistics for sampled signals",
		Long: `Sigstat computes summary statistics (mean, variance, standard
deviation, order statistics) over a sequence of floating-point samples.

Commands:
  summarize  Read samples from a file or stdin and print a summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewSummarizeCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "sigstat %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
