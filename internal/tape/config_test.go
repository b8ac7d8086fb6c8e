package tape

import "testing"

func TestNewConfigurationStartState(t *testing.T) {
	c := NewConfiguration()
	want, err := ParseConfiguration("0: 1 > P")
	if err != nil {
		t.Fatalf("parse start state: %v", err)
	}
	if !c.Equal(want) {
		t.Fatalf("start = %v, want %v", c, want)
	}
}

func TestCloneSharesNoState(t *testing.T) {
	c := NewConfiguration()
	clone := c.Clone()
	if !c.Equal(clone) {
		t.Fatalf("clone = %v, want %v", clone, c)
	}

	clone.Left[0] = C(3)
	clone.Right.Push(D)
	clone.Steps = 99
	if c.Left[0] != C(1) {
		t.Fatalf("mutating clone changed original left tape: %v", c.Left)
	}
	if len(c.Right) != 1 {
		t.Fatalf("mutating clone changed original right tape: %v", c.Right)
	}
	if c.Steps != 0 {
		t.Fatalf("mutating clone changed original step count: %d", c.Steps)
	}
}

func TestEqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := Configuration{Left: nil, Right: Tape{P}, Dir: Right}
	b := Configuration{Left: Tape{}, Right: Tape{P}, Dir: Right}
	if !a.Equal(b) {
		t.Fatalf("nil and empty tapes should compare equal")
	}

	b.Steps = 1
	if a.Equal(b) {
		t.Fatalf("configurations with different step counts compare equal")
	}
}
