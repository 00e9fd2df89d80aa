// Package main provides the entry point for the refgauge CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refgauge/refgauge/cmd/refgauge/commands"
	"github.com/refgauge/refgauge/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "refgauge",
		Short: "Refgauge - static analysis and refactoring quality scoring",
		Long: `Refgauge analyzes source files across multiple languages and scores
refactorings by comparing an original and a refactored snapshot.

Commands:
  lint      Run lint rules and complexity analysis over source files
  score     Compare an original and a refactored file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewScoreCommand())
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
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
