package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sligocki/bbc/internal/cli"
)

var (
	runConf string
	runTUI  bool
)

var runCmd = &cobra.Command{
	Use:   "run <step-exp> <trace-exp>",
	Short: "Advance the simulation to a step budget of 2^step-exp",
	Long: `Run advances the simulation until the step count reaches 2^step-exp,
printing the configuration every 2^trace-exp steps. With --tui the run is
interactive: step, rewind, and change speed from the keyboard.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stepExp, err := parseExponent(args[0])
		if err != nil {
			return fmt.Errorf("step exponent: %w", err)
		}
		traceExp, err := parseExponent(args[1])
		if err != nil {
			return fmt.Errorf("trace exponent: %w", err)
		}
		return cli.Run(cli.RunOptions{
			StepExp:  stepExp,
			TraceExp: traceExp,
			Conf:     runConf,
			TUI:      runTUI,
			Styled:   termenv.ColorProfile() != termenv.Ascii,
			Out:      os.Stdout,
		})
	},
}

var parseCmd = &cobra.Command{
	Use:          "parse <configuration>",
	Short:        "Parse a configuration and print its canonical rendering",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Echo(args[0], termenv.ColorProfile() != termenv.Ascii, os.Stdout)
	},
}

func parseExponent(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, err
	}
	if n > 63 {
		return 0, fmt.Errorf("%d out of range (max 63)", n)
	}
	return uint8(n), nil
}

func init() {
	runCmd.Flags().StringVar(&runConf, "conf", "", "starting configuration in tape notation")
	runCmd.Flags().BoolVarP(&runTUI, "tui", "t", false, "interactive step/rewind mode")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(parseCmd)
}
