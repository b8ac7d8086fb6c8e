package tape

import "testing"

func TestPushRunMergesTrailingRun(t *testing.T) {
	tp := Tape{D, X(3)}
	tp.PushRun(4)
	if !tp.EndsWith(D, X(7)) {
		t.Fatalf("tape = %v, want D x^7", tp)
	}
	if len(tp) != 2 {
		t.Fatalf("len = %d, want 2", len(tp))
	}
}

func TestPushRunOntoNonRunAppends(t *testing.T) {
	tp := Tape{P}
	tp.PushRun(1)
	if !tp.EndsWith(P, X(1)) {
		t.Fatalf("tape = %v, want P x^1", tp)
	}
}

func TestPushRunOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on exponent overflow")
		}
	}()
	tp := Tape{X(^uint64(0))}
	tp.PushRun(1)
}

func TestPushBlockMergesSameID(t *testing.T) {
	tp := Tape{E(1, 2)}
	tp.PushBlock(1, 3)
	if !tp.EndsWith(E(1, 5)) || len(tp) != 1 {
		t.Fatalf("tape = %v, want b^5", tp)
	}

	tp.PushBlock(0, 1)
	if !tp.EndsWith(E(1, 5), E(0, 1)) {
		t.Fatalf("tape = %v, want b^5 a^1", tp)
	}
}

func TestConsumeRunDecrements(t *testing.T) {
	tp := Tape{D, X(2)}
	tp.ConsumeRun(0)
	if !tp.EndsWith(D, X(1)) {
		t.Fatalf("tape = %v, want D x^1", tp)
	}
	tp.ConsumeRun(0)
	if !tp.EndsWith(D) || len(tp) != 1 {
		t.Fatalf("tape = %v, want D", tp)
	}
}

func TestConsumeRunTrimsExtraItems(t *testing.T) {
	// Run at depth 2 with two trailing items recognized alongside it.
	tp := Tape{P, X(5), C(3), D}
	tp.ConsumeRun(2)
	if !tp.EndsWith(P, X(4)) || len(tp) != 2 {
		t.Fatalf("tape = %v, want P x^4", tp)
	}

	// When the run is exhausted it is removed together with the extras.
	tp = Tape{P, X(1), C(3), D}
	tp.ConsumeRun(2)
	if !tp.EndsWith(P) || len(tp) != 1 {
		t.Fatalf("tape = %v, want P", tp)
	}
}

func TestConsumeBlockExpandsAndDecrements(t *testing.T) {
	tp := Tape{E(2, 2)}
	tp.ConsumeBlock()
	want := append(Tape{E(2, 1)}, BlockExpansion(2)...)
	if !tapesEqual(tp, want) {
		t.Fatalf("tape = %v, want %v", tp, want)
	}

	tp = Tape{E(2, 1)}
	tp.ConsumeBlock()
	if !tapesEqual(tp, BlockExpansion(2)) {
		t.Fatalf("tape = %v, want bare expansion", tp)
	}
}

func TestBlockExpansionsMatchNotation(t *testing.T) {
	sources := []string{
		"2 x^7640 D x^10344",
		"D x^72142 D x^3076 D x^1538 D x^300 D x^30826",
		"1D x^72141 1D x^3075 1D x^1537 1D x^299 1D x^30825",
	}
	for id, src := range sources {
		want, err := ParseTape(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if !tapesEqual(BlockExpansion(uint8(id)), want) {
			t.Fatalf("expansion %c = %v, want %v", 'a'+id, BlockExpansion(uint8(id)), want)
		}
	}
}

func TestAtAndEndsWith(t *testing.T) {
	tp := Tape{P, D, C(3)}
	if it, ok := tp.At(0); !ok || it != C(3) {
		t.Fatalf("At(0) = %v %v, want C(3)", it, ok)
	}
	if it, ok := tp.At(2); !ok || it != P {
		t.Fatalf("At(2) = %v %v, want P", it, ok)
	}
	if _, ok := tp.At(3); ok {
		t.Fatalf("At(3) should be out of range")
	}
	if !tp.EndsWith(D, C(3)) {
		t.Fatalf("EndsWith(D, 3) = false")
	}
	if tp.EndsWith(D, C(2)) {
		t.Fatalf("EndsWith(D, 2) = true, want false")
	}
}
