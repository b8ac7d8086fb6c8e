// Package engine advances a compressed symbolic configuration with an
// ordered catalog of rewrite rules. One rule application is one engine step,
// no matter how many primitive machine steps it represents.
package engine

import (
	"fmt"
	"io"

	"github.com/sligocki/bbc/internal/machine"
	"github.com/sligocki/bbc/internal/tape"
)

// StopReason is why StepMany stopped. BudgetReached is the normal outcome of
// every bounded run; the current catalog has no halting rule.
type StopReason uint8

const (
	StopBudgetReached StopReason = iota
	// StopHalt and StopInteresting are reserved for detection hooks; the
	// current catalog never produces them.
	StopHalt
	StopInteresting
	// StopUnknownTransition means no rule matched: the catalog is incomplete
	// for the configuration reached.
	StopUnknownTransition
	// StopUnreachable means the head touched a sentinel item, a position
	// proven unreachable.
	StopUnreachable
)

func (r StopReason) String() string {
	switch r {
	case StopBudgetReached:
		return "budget reached"
	case StopHalt:
		return "halt"
	case StopInteresting:
		return "interesting"
	case StopUnknownTransition:
		return "unknown transition"
	case StopUnreachable:
		return "unreachable"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(r))
}

// StepConfig bounds and instruments a StepMany call.
type StepConfig struct {
	// StepLimit is the absolute step count at which to stop, not an
	// increment. A limit at or below the configuration's current count
	// applies no steps.
	StepLimit uint64
	// TraceEvery renders the configuration to Trace every 2^TraceEvery
	// steps. No Trace writer, no tracing.
	TraceEvery uint8
	Trace      io.Writer
}

// StepMany applies at most one rule per step until the configuration's step
// count reaches cfg.StepLimit, mutating conf in place. On any return conf is
// exactly the state after the last applied step; rule edits are atomic
// within a step.
//
// The machine reference and literal block table are accepted for forward
// compatibility; the shipped catalog does not consult them.
func StepMany(conf *tape.Configuration, m *machine.Machine, blocks []tape.Tape, cfg StepConfig) StopReason {
	_, _ = m, blocks

	traceMask := uint64(1)<<cfg.TraceEvery - 1
	for conf.Steps < cfg.StepLimit {
		if touchesSentinel(conf) {
			return StopUnreachable
		}
		applied := false
		for i := range catalog {
			if catalog[i].match(conf) {
				catalog[i].apply(conf)
				applied = true
				break
			}
		}
		if !applied {
			return StopUnknownTransition
		}
		conf.Steps++
		if cfg.Trace != nil && conf.Steps&traceMask == 0 {
			fmt.Fprintln(cfg.Trace, tape.Format(*conf))
		}
	}
	return StopBudgetReached
}

// touchesSentinel reports whether the next scan would act on a sentinel.
// Checked before the catalog: no rule may fire on an unreachable position.
func touchesSentinel(c *tape.Configuration) bool {
	side := c.Right
	if c.Dir == tape.Left {
		side = c.Left
	}
	it, ok := side.Last()
	return ok && it.Kind == tape.KindSentinel
}
