// Package cli implements the non-interactive command surface: run the
// engine to a budget and print the result, or round-trip a configuration
// for inspection.
package cli

import (
	"fmt"
	"io"

	"github.com/sligocki/bbc/internal/engine"
	"github.com/sligocki/bbc/internal/machine"
	"github.com/sligocki/bbc/internal/tape"
	"github.com/sligocki/bbc/internal/tui"
)

// DefaultMachine is the transition table this engine's rule catalog
// accelerates. It is carried as a label; the rules never consult it.
const DefaultMachine = "1RB1RD_1LC0RC_1RA1LD_0RE0LB_---1RC"

type RunOptions struct {
	// StepExp sets the absolute step budget to 2^StepExp.
	StepExp uint8
	// TraceExp prints the configuration every 2^TraceExp steps.
	TraceExp uint8
	// Conf is the starting configuration in textual notation; empty means
	// the canonical start state.
	Conf   string
	TUI    bool
	Styled bool
	Out    io.Writer
}

// Run executes a simulation per opts. A non-budget stop is reported as an
// error after the final configuration has been printed.
func Run(opts RunOptions) error {
	conf, err := startConfiguration(opts.Conf)
	if err != nil {
		return err
	}
	if opts.StepExp > 63 {
		return fmt.Errorf("step exponent %d out of range (max 63)", opts.StepExp)
	}

	m, err := machine.Parse(DefaultMachine)
	if err != nil {
		return fmt.Errorf("parse machine reference: %w", err)
	}
	// Reserved literal block table; the shipped catalog expands blocks from
	// its own constant table.
	var blocks []tape.Tape

	if opts.TUI {
		return tui.Start(conf, m, blocks, opts.TraceExp)
	}

	fmt.Fprintln(opts.Out, render(conf, opts.Styled))
	reason := engine.StepMany(&conf, m, blocks, engine.StepConfig{
		StepLimit:  uint64(1) << opts.StepExp,
		TraceEvery: opts.TraceExp,
		Trace:      opts.Out,
	})
	fmt.Fprintln(opts.Out, render(conf, opts.Styled))
	fmt.Fprintf(opts.Out, "stopped: %s\n", reason)

	if reason != engine.StopBudgetReached {
		return fmt.Errorf("simulation stopped: %s", reason)
	}
	return nil
}

// Echo parses a configuration and prints its canonical rendering, as a
// notation round-trip check.
func Echo(conf string, styled bool, out io.Writer) error {
	parsed, err := tape.ParseConfiguration(conf)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render(parsed, styled))
	return nil
}

func startConfiguration(s string) (tape.Configuration, error) {
	if s == "" {
		return tape.NewConfiguration(), nil
	}
	conf, err := tape.ParseConfiguration(s)
	if err != nil {
		return tape.Configuration{}, fmt.Errorf("starting configuration: %w", err)
	}
	return conf, nil
}

func render(c tape.Configuration, styled bool) string {
	if styled {
		return tape.FormatStyled(c)
	}
	return tape.Format(c)
}
