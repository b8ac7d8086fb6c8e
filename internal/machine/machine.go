// Package machine models the primitive transition table the rewrite engine
// accelerates. The table is carried as a reference: the rule catalog encodes
// already-verified macro steps and never consults it at runtime.
package machine

import (
	"fmt"
	"strings"
)

// Move is the head movement of a primitive transition.
type Move uint8

const (
	MoveLeft Move = iota
	MoveRight
)

// Transition is one cell of the table. Undefined transitions (spelled `---`)
// have Defined false.
type Transition struct {
	Write   uint8
	Move    Move
	Next    uint8
	Defined bool
}

// Machine is a fixed transition table in the standard one-line notation:
// states separated by `_`, three characters per symbol within a state.
type Machine struct {
	States      int
	Symbols     int
	Transitions [][]Transition // [state][symbol]
}

// Parse reads the standard notation, e.g. "1RB1LA_0LA---".
func Parse(s string) (*Machine, error) {
	segments := strings.Split(s, "_")
	m := &Machine{States: len(segments)}
	for state, seg := range segments {
		if len(seg) == 0 || len(seg)%3 != 0 {
			return nil, fmt.Errorf("parse machine %q: state %c has malformed row %q", s, 'A'+state, seg)
		}
		symbols := len(seg) / 3
		if m.Symbols == 0 {
			m.Symbols = symbols
		} else if symbols != m.Symbols {
			return nil, fmt.Errorf("parse machine %q: state %c has %d symbols, want %d", s, 'A'+state, symbols, m.Symbols)
		}

		row := make([]Transition, symbols)
		for symbol := 0; symbol < symbols; symbol++ {
			cell := seg[symbol*3 : symbol*3+3]
			if cell == "---" {
				continue
			}
			tr, err := parseCell(cell, len(segments))
			if err != nil {
				return nil, fmt.Errorf("parse machine %q: state %c symbol %d: %w", s, 'A'+state, symbol, err)
			}
			row[symbol] = tr
		}
		m.Transitions = append(m.Transitions, row)
	}
	return m, nil
}

func parseCell(cell string, states int) (Transition, error) {
	tr := Transition{Defined: true}
	switch {
	case cell[0] < '0' || cell[0] > '9':
		return tr, fmt.Errorf("bad write symbol %q", cell[0])
	case cell[1] != 'L' && cell[1] != 'R':
		return tr, fmt.Errorf("bad move %q", cell[1])
	case cell[2] < 'A' || int(cell[2]-'A') >= states:
		return tr, fmt.Errorf("bad next state %q", cell[2])
	}
	tr.Write = cell[0] - '0'
	if cell[1] == 'R' {
		tr.Move = MoveRight
	}
	tr.Next = cell[2] - 'A'
	return tr, nil
}

// String renders the table back into the standard notation.
func (m *Machine) String() string {
	var b strings.Builder
	for state, row := range m.Transitions {
		if state > 0 {
			b.WriteByte('_')
		}
		for _, tr := range row {
			if !tr.Defined {
				b.WriteString("---")
				continue
			}
			move := byte('L')
			if tr.Move == MoveRight {
				move = 'R'
			}
			b.WriteByte('0' + tr.Write)
			b.WriteByte(move)
			b.WriteByte('A' + tr.Next)
		}
	}
	return b.String()
}
