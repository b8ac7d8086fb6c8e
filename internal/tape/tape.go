package tape

import "fmt"

// Tape is an ordered sequence of items. The head-adjacent item is always the
// last element; rules only ever inspect and edit a short suffix.
type Tape []Item

// At returns the item at the given depth from the end (depth 0 is the last
// item). ok is false when the tape is shorter than depth+1.
func (t Tape) At(depth int) (Item, bool) {
	i := len(t) - 1 - depth
	if i < 0 {
		return Item{}, false
	}
	return t[i], true
}

// Last returns the head-adjacent item.
func (t Tape) Last() (Item, bool) { return t.At(0) }

// EndsWith reports whether the tape ends with the given items, in order.
func (t Tape) EndsWith(suffix ...Item) bool {
	if len(t) < len(suffix) {
		return false
	}
	tail := t[len(t)-len(suffix):]
	for i, it := range suffix {
		if tail[i] != it {
			return false
		}
	}
	return true
}

// Push appends items as-is, without run merging. The engine uses PushRun for
// runs; the parser appends exactly what the notation spells out.
func (t *Tape) Push(items ...Item) {
	*t = append(*t, items...)
}

// Pop removes and returns the head-adjacent item.
func (t *Tape) Pop() Item {
	last := len(*t) - 1
	if last < 0 {
		panic("tape: pop from empty tape")
	}
	it := (*t)[last]
	*t = (*t)[:last]
	return it
}

// Truncate removes the n trailing items.
func (t *Tape) Truncate(n int) {
	if n > len(*t) {
		panic(fmt.Sprintf("tape: truncate %d of %d items", n, len(*t)))
	}
	*t = (*t)[:len(*t)-n]
}

// PushRun appends a run of exp repetitions, merging into a trailing run so
// that two runs are never adjacent. Exponent overflow is a contract
// violation: the rule set is defined not to produce it.
func (t *Tape) PushRun(exp uint64) {
	if last := len(*t) - 1; last >= 0 && (*t)[last].Kind == KindRun {
		(*t)[last].Exp = checkedAdd((*t)[last].Exp, exp)
		return
	}
	*t = append(*t, X(exp))
}

// PushBlock appends a counted block, merging into a trailing block with the
// same id.
func (t *Tape) PushBlock(id uint8, exp uint64) {
	if last := len(*t) - 1; last >= 0 && (*t)[last].Kind == KindBlock && (*t)[last].Block == id {
		(*t)[last].Exp = checkedAdd((*t)[last].Exp, exp)
		return
	}
	*t = append(*t, E(id, exp))
}

// ConsumeRun consumes one repetition of the run at depth extra from the end
// and removes the extra trailing items after it. When the run reaches zero it
// is removed as well.
func (t *Tape) ConsumeRun(extra int) {
	i := len(*t) - 1 - extra
	if i < 0 || (*t)[i].Kind != KindRun {
		panic(fmt.Sprintf("tape: no run at depth %d", extra))
	}
	(*t)[i].Exp--
	remove := extra
	if (*t)[i].Exp == 0 {
		remove++
	}
	t.Truncate(remove)
}

// ConsumeBlock consumes one repetition of the trailing block: its count is
// decremented (the item is removed at zero) and, regardless of the remaining
// count, the block's fixed literal expansion is appended.
func (t *Tape) ConsumeBlock() {
	last := len(*t) - 1
	if last < 0 || (*t)[last].Kind != KindBlock {
		panic("tape: no trailing block to consume")
	}
	id := (*t)[last].Block
	(*t)[last].Exp--
	if (*t)[last].Exp == 0 {
		*t = (*t)[:last]
	}
	*t = append(*t, BlockExpansion(id)...)
}

func checkedAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		panic("tape: run exponent overflow")
	}
	return sum
}
