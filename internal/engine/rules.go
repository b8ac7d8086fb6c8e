package engine

import "github.com/sligocki/bbc/internal/tape"

// The catalog is an ordered list of guarded rules tried top to bottom; the
// first structural match wins. The order is load-bearing: generic patterns
// (a bare counter, a bare trailing run) sit below every rule that matches
// the same suffix with more context. Each rule is a verified macro step of
// the accelerated machine, reproduced pattern for pattern; do not reorder
// and do not add rules.
type rule struct {
	name  string
	match func(c *tape.Configuration) bool
	apply func(c *tape.Configuration)
}

// Block ids targeted by the two compaction guards.
const (
	blockA uint8 = 0
	blockB uint8 = 1
	blockC uint8 = 2
)

// Compaction guards: when a rewrite leaves a run with exactly the threshold
// exponent behind a fixed literal motif, that motif has repeated often
// enough to fold into a counted block. Exactly two threshold/motif pairs
// exist; larger exponents with unmodeled motifs fall through to the
// unknown-transition stop instead of being folded.
const (
	blockAThreshold uint64 = 10345
	blockBThreshold uint64 = 30826
)

// Each motif is the literal expansion of its target block.
var (
	blockAMotif = tape.BlockExpansion(blockA)
	blockBMotif = tape.BlockExpansion(blockB)
)

func kindAt(t tape.Tape, depth int, kind tape.Kind) bool {
	it, ok := t.At(depth)
	return ok && it.Kind == kind
}

func itemAt(t tape.Tape, depth int, want tape.Item) bool {
	it, ok := t.At(depth)
	return ok && it == want
}

func expAt(t tape.Tape, depth int) uint64 {
	it, ok := t.At(depth)
	if !ok {
		panic("engine: exponent read past tape end")
	}
	return it.Exp
}

var catalog = []rule{
	// Boundary extension: the head runs off the known edge of the tape and
	// new structure is synthesized from the far side's suffix.
	{
		name: "end < 3x -> 1 > DP",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && len(c.Left) == 0 &&
				itemAt(c.Right, 0, tape.C(3)) && kindAt(c.Right, 1, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Right.ConsumeRun(1)
			c.Right.Push(tape.P, tape.D)
			c.Left.Push(tape.C(1))
			c.Dir = tape.Right
		},
	},
	{
		name: "x > end -> < 3xP",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && len(c.Right) == 0 && kindAt(c.Left, 0, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Left.ConsumeRun(0)
			c.Right.Push(tape.P, tape.X(1), tape.C(3))
			c.Dir = tape.Left
		},
	},
	{
		name: "D > end -> < x",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && len(c.Right) == 0 && kindAt(c.Left, 0, tape.KindDelim)
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Right.Push(tape.X(1))
			c.Dir = tape.Left
		},
	},

	{
		name: "> D33 -> P0 >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right &&
				c.Right.EndsWith(tape.C(3), tape.C(3), tape.D)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Truncate(3)
			c.Left.Push(tape.P, tape.C(0))
		},
	},
	// After the D33 rule: same head suffix with less context.
	{
		name: "> D3 -> xP >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right &&
				c.Right.EndsWith(tape.C(3), tape.D)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Truncate(2)
			c.Left.PushRun(1)
			c.Left.Push(tape.P)
		},
	},

	// Pass-through: a non-reactive symbol crosses to the other tape.
	{
		name: "(x|D|P|3) < -> < (x|D|P|3)",
		match: func(c *tape.Configuration) bool {
			if c.Dir != tape.Left {
				return false
			}
			it, ok := c.Left.Last()
			return ok && (it.Kind == tape.KindRun || it.Kind == tape.KindDelim ||
				it.Kind == tape.KindPivot || it == tape.C(3))
		},
		apply: func(c *tape.Configuration) {
			c.Right.Push(c.Left.Pop())
		},
	},
	// Must come after the pass-through above, which claims the counter 3.
	{
		name: "c < -> (c+1) [x] >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && kindAt(c.Left, 0, tape.KindCounter)
		},
		apply: func(c *tape.Configuration) {
			last := len(c.Left) - 1
			c.Left[last].Counter++
			if c.Left[last].Counter != 2 {
				c.Left.Push(tape.X(1))
			}
			c.Dir = tape.Right
		},
	},

	{
		name: "x > 3 -> 0 >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && kindAt(c.Left, 0, tape.KindRun) &&
				itemAt(c.Right, 0, tape.C(3))
		},
		apply: func(c *tape.Configuration) {
			compact := expAt(c.Left, 0) == blockAThreshold
			c.Left.ConsumeRun(0)
			if compact && c.Left.EndsWith(blockAMotif...) {
				c.Left.Truncate(len(blockAMotif))
				c.Left.PushBlock(blockA, 1)
			}
			c.Left.Push(tape.C(0))
			c.Right.Truncate(1)
		},
	},

	// Composite reduction chain x33 -> ... -> PDx, one link per step.
	{
		name: "0 > 3 -> L(2332) >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Left, 0, tape.C(0)) &&
				itemAt(c.Right, 0, tape.C(3))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(2332))
			c.Right.Truncate(1)
		},
	},
	{
		name: "L(2332) < -> L(2301) x >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(2332))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(2301), tape.X(1))
			c.Dir = tape.Right
		},
	},
	{
		name: "L(2301) < -> L(252) >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(2301))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(252))
			c.Dir = tape.Right
		},
	},
	{
		name: "L(252) < -> PDx >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(252))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.P, tape.D, tape.X(1))
			c.Dir = tape.Right
		},
	},

	{
		name: "> PD3x -> L(2301) D > P",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right &&
				itemAt(c.Right, 0, tape.P) && itemAt(c.Right, 1, tape.D) &&
				itemAt(c.Right, 2, tape.C(3)) && kindAt(c.Right, 3, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Right.ConsumeRun(3)
			c.Right.Push(tape.P)
			c.Left.Push(tape.L(2301), tape.D)
		},
	},
	{
		name: "> PDDx -> 21D >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right &&
				itemAt(c.Right, 0, tape.P) && itemAt(c.Right, 1, tape.D) &&
				itemAt(c.Right, 2, tape.D) && kindAt(c.Right, 3, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Right.ConsumeRun(3)
			c.Left.Push(tape.C(2), tape.C(1), tape.D)
		},
	},

	// Composite reduction chain 13 -> ... -> P1D.
	{
		name: "2 > 3 -> L(432) >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Left, 0, tape.C(2)) &&
				itemAt(c.Right, 0, tape.C(3))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(432))
			c.Right.Truncate(1)
		},
	},
	{
		name: "L(432) < -> L(401) x >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(432))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(401), tape.X(1))
			c.Dir = tape.Right
		},
	},
	{
		name: "L(401) < -> L(62) >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(401))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(62))
			c.Dir = tape.Right
		},
	},
	{
		name: "L(62) < -> L(31) x >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(62))
		},
		apply: func(c *tape.Configuration) {
			c.Left.Pop()
			c.Left.Push(tape.L(31), tape.X(1))
			c.Dir = tape.Right
		},
	},
	{
		name: "x L(31) < -> P1D >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemAt(c.Left, 0, tape.L(31)) &&
				kindAt(c.Left, 1, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Left.ConsumeRun(1)
			c.Left.Push(tape.P, tape.C(1), tape.D)
			c.Dir = tape.Right
		},
	},

	// Run/pivot/delimiter interactions.
	{
		name: "> P x^n -> x^n > P",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Right, 0, tape.P) &&
				kindAt(c.Right, 1, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Left.PushRun(expAt(c.Right, 1))
			c.Right.Truncate(2)
			c.Right.Push(tape.P)
		},
	},
	{
		name: "> PDP -> 1D >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right &&
				c.Right.EndsWith(tape.P, tape.D, tape.P)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Truncate(3)
			c.Left.Push(tape.C(1), tape.D)
		},
	},
	{
		name: "> PDx -> 1D > P",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Right, 0, tape.P) &&
				itemAt(c.Right, 1, tape.D) && kindAt(c.Right, 2, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Right.ConsumeRun(2)
			c.Right.Push(tape.P)
			c.Left.Push(tape.C(1), tape.D)
		},
	},
	{
		name: "> P3x -> < PDP",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Right, 0, tape.P) &&
				itemAt(c.Right, 1, tape.C(3)) && kindAt(c.Right, 2, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			c.Right.ConsumeRun(2)
			c.Right.Push(tape.P, tape.D, tape.P)
			c.Dir = tape.Left
		},
	},
	{
		name: "> P end -> < P",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && len(c.Right) == 1 && c.Right[0] == tape.P
		},
		apply: func(c *tape.Configuration) {
			c.Dir = tape.Left
		},
	},
	{
		name: "> PP -> x >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && c.Right.EndsWith(tape.P, tape.P)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Truncate(2)
			c.Left.PushRun(1)
		},
	},
	{
		name: "> D -> D >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && kindAt(c.Right, 0, tape.KindDelim)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Pop()
			c.Left.Push(tape.D)
		},
	},
	{
		name: "> x -> x >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && kindAt(c.Right, 0, tape.KindRun)
		},
		apply: func(c *tape.Configuration) {
			compact := expAt(c.Right, 0) == blockBThreshold
			c.Left.PushRun(expAt(c.Right, 0))
			if compact && c.Left.EndsWith(blockBMotif...) {
				c.Left.Truncate(len(blockBMotif))
				c.Left.PushBlock(blockB, 1)
			}
			c.Right.Pop()
		},
	},

	// Block pass-through and expansion.
	{
		name: "> b -> b >",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemBlock(c.Right, 0, blockB)
		},
		apply: func(c *tape.Configuration) {
			c.Left.PushBlock(blockB, expAt(c.Right, 0))
			c.Right.Pop()
		},
	},
	{
		name: "b < -> < b",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemBlock(c.Left, 0, blockB)
		},
		apply: func(c *tape.Configuration) {
			c.Right.Push(c.Left.Pop())
		},
	},
	{
		name: "c^n < -> c^(n-1) expanded-c <",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Left && itemBlock(c.Left, 0, blockC)
		},
		apply: func(c *tape.Configuration) {
			c.Left.ConsumeBlock()
		},
	},
	{
		name: "> P b -> c > P",
		match: func(c *tape.Configuration) bool {
			return c.Dir == tape.Right && itemAt(c.Right, 0, tape.P) &&
				itemBlock(c.Right, 1, blockB)
		},
		apply: func(c *tape.Configuration) {
			c.Left.Push(tape.E(blockC, expAt(c.Right, 1)))
			c.Right.Truncate(2)
		},
	},
}

func itemBlock(t tape.Tape, depth int, id uint8) bool {
	it, ok := t.At(depth)
	return ok && it.Kind == tape.KindBlock && it.Block == id
}
