package machine

import "testing"

const skelet1 = "1RB1RD_1LC0RC_1RA1LD_0RE0LB_---1RC"

func TestParseTransitionTable(t *testing.T) {
	m, err := Parse(skelet1)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.States != 5 || m.Symbols != 2 {
		t.Fatalf("shape = %d states x %d symbols, want 5x2", m.States, m.Symbols)
	}

	a0 := m.Transitions[0][0]
	if !a0.Defined || a0.Write != 1 || a0.Move != MoveRight || a0.Next != 1 {
		t.Fatalf("A0 = %+v, want write 1, move right, next B", a0)
	}
	if m.Transitions[4][0].Defined {
		t.Fatalf("E0 should be undefined")
	}
}

func TestStringRoundTrip(t *testing.T) {
	m, err := Parse(skelet1)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := m.String(); got != skelet1 {
		t.Fatalf("String() = %q, want %q", got, skelet1)
	}
}

func TestParseRejectsMalformedTables(t *testing.T) {
	for _, in := range []string{"", "1R", "1RB1RZ", "1RB_1LAX", "xRA"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
