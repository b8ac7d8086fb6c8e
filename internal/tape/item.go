package tape

import (
	"fmt"
	"strconv"
)

// Kind discriminates the closed set of tape symbols.
type Kind uint8

const (
	KindDelim Kind = iota
	KindPivot
	KindCounter
	KindRun
	KindReduced
	KindBlock
	KindSentinel
)

// Item is one symbol of the compressed tape alphabet. It is a small value
// type comparable with ==; fields not used by a kind are zero.
type Item struct {
	Kind    Kind
	Counter uint8  // KindCounter: 0..3
	Exp     uint64 // KindRun, KindBlock: repetition count
	Code    uint16 // KindReduced: reduction-chain code
	Block   uint8  // KindBlock: block id, written as 'a'+Block
}

// D is the literal delimiter symbol.
var D = Item{Kind: KindDelim}

// P is the literal pivot symbol.
var P = Item{Kind: KindPivot}

// Sentinel marks tape positions that are provably never reached.
var Sentinel = Item{Kind: KindSentinel}

// C returns a counter symbol.
func C(c uint8) Item { return Item{Kind: KindCounter, Counter: c} }

// X returns a run of exp repetitions of the base motif.
func X(exp uint64) Item { return Item{Kind: KindRun, Exp: exp} }

// L returns the intermediate result of a reduction chain.
func L(code uint16) Item { return Item{Kind: KindReduced, Code: code} }

// E returns a counted block symbol.
func E(block uint8, exp uint64) Item { return Item{Kind: KindBlock, Block: block, Exp: exp} }

func (it Item) String() string {
	switch it.Kind {
	case KindDelim:
		return "D"
	case KindPivot:
		return "P"
	case KindCounter:
		return strconv.Itoa(int(it.Counter))
	case KindRun:
		return fmt.Sprintf("x^%d", it.Exp)
	case KindReduced:
		return fmt.Sprintf("L(%d)", it.Code)
	case KindBlock:
		return fmt.Sprintf("%c^%d", 'a'+it.Block, it.Exp)
	case KindSentinel:
		return "!"
	}
	return fmt.Sprintf("Item(%d)", it.Kind)
}

// blockExpansions holds the fixed literal expansion of each known block id.
// Consuming one repetition of a block appends its expansion to the tape.
var blockExpansions = [...]Tape{
	// a: 2 x^7640 D x^10344
	{C(2), X(7640), D, X(10344)},
	// b: D x^72142 D x^3076 D x^1538 D x^300 D x^30826
	{D, X(72142), D, X(3076), D, X(1538), D, X(300), D, X(30826)},
	// c: 1D x^72141 1D x^3075 1D x^1537 1D x^299 1D x^30825
	{C(1), D, X(72141), C(1), D, X(3075), C(1), D, X(1537), C(1), D, X(299), C(1), D, X(30825)},
}

// BlockExpansion returns the fixed literal expansion for a block id. The
// returned tape is shared; callers must not mutate it.
func BlockExpansion(id uint8) Tape {
	if int(id) >= len(blockExpansions) {
		panic(fmt.Sprintf("tape: no expansion for block %c", 'a'+id))
	}
	return blockExpansions[id]
}
