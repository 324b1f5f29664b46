package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quno/zne"
)

var rootCmd = &cobra.Command{
	Use:   "zne",
	Short: "Zero-noise extrapolation benchmark for single-qubit identity circuits",
	Long: "zne grows random Pauli circuits equivalent to the identity, evaluates them\n" +
		"under depolarizing noise at several noise scale factors, and Richardson-\n" +
		"extrapolates the results back to zero noise.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = zne.Version.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
