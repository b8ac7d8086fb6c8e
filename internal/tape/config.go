package tape

// Direction is the side the head is about to scan into.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "<"
	}
	return ">"
}

// Configuration is a full machine configuration: the tape split at the head,
// the scan direction, and the number of rule applications so far. The
// head-adjacent item of each side is the last element of that side's tape.
type Configuration struct {
	Left  Tape
	Right Tape
	Dir   Direction
	Steps uint64
}

// NewConfiguration returns the canonical start state, `1 > P`.
func NewConfiguration() Configuration {
	return Configuration{
		Left:  Tape{C(1)},
		Right: Tape{P},
		Dir:   Right,
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (c Configuration) Clone() Configuration {
	out := c
	out.Left = append(Tape(nil), c.Left...)
	out.Right = append(Tape(nil), c.Right...)
	return out
}

// Equal reports whether two configurations are identical. Empty and nil
// tapes compare equal.
func (c Configuration) Equal(other Configuration) bool {
	return c.Dir == other.Dir &&
		c.Steps == other.Steps &&
		tapesEqual(c.Left, other.Left) &&
		tapesEqual(c.Right, other.Right)
}

func tapesEqual(a, b Tape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
