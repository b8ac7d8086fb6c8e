package tape

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rendering is pure: styles are fixed values and nothing process-wide is
// mutated. Stripping the ANSI decoration from styled output yields the same
// token stream as Format up to whitespace.
var (
	stepStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	counterStyle  = lipgloss.NewStyle().Bold(true).Italic(true)
	bigExpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	blockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	sentinelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	markerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// bigExpThreshold is the run exponent above which styled rendering
// highlights the number, to make the interesting part of a long
// configuration easy to spot.
const bigExpThreshold = 1_000_000_000

// Format renders a configuration in plain notation. The result parses back
// to an identical configuration.
func Format(c Configuration) string { return format(c, false) }

// FormatStyled renders a configuration with terminal styling. The styling is
// strippable decoration only; the underlying token stream matches Format.
func FormatStyled(c Configuration) string { return format(c, true) }

func (c Configuration) String() string { return Format(c) }

func format(c Configuration, styled bool) string {
	var b strings.Builder
	step := fmt.Sprintf("%d", c.Steps)
	if styled {
		step = stepStyle.Render(step)
	}
	fmt.Fprintf(&b, "%s:  ", step)

	for _, it := range c.Left {
		writeItem(&b, it, styled)
	}

	marker := c.Dir.String()
	if styled {
		marker = markerStyle.Render(marker)
	}
	fmt.Fprintf(&b, " %s ", marker)

	for i := len(c.Right) - 1; i >= 0; i-- {
		writeItem(&b, c.Right[i], styled)
	}
	return b.String()
}

func writeItem(b *strings.Builder, it Item, styled bool) {
	switch it.Kind {
	case KindDelim:
		b.WriteString("D")
	case KindPivot:
		b.WriteString("P")
	case KindCounter:
		s := fmt.Sprintf("%d", it.Counter)
		if styled {
			s = counterStyle.Render(s)
		}
		b.WriteString(s)
	case KindRun:
		exp := fmt.Sprintf("%d", it.Exp)
		if styled && it.Exp > bigExpThreshold {
			exp = bigExpStyle.Render(exp)
		}
		fmt.Fprintf(b, " x^%s ", exp)
	case KindReduced:
		fmt.Fprintf(b, " L(%d) ", it.Code)
	case KindBlock:
		s := fmt.Sprintf("%c^%d", 'a'+it.Block, it.Exp)
		if styled {
			s = blockStyle.Render(s)
		}
		fmt.Fprintf(b, " %s ", s)
	case KindSentinel:
		s := "!"
		if styled {
			s = sentinelStyle.Render(s)
		}
		fmt.Fprintf(b, " %s ", s)
	}
}
