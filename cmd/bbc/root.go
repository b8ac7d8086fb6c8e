package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bbc",
	Short: "bbc explores one Turing machine through symbolic acceleration",
	Long: `bbc simulates a fixed Turing machine on a compressed symbolic tape.
One engine step rewrites whole runs and blocks at once, so configurations
astronomically far into the run stay reachable in a handful of steps.`,
}

// Execute runs the root command and maps failures to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
