package game

import "testing"

func TestKeyboardNeverDowngrades(t *testing.T) {
	var k Keyboard
	k.Update('a', Correct)
	k.Update('a', Present)
	k.Update('a', Absent)
	if got := k.State('a'); got != Correct {
		t.Fatalf("a = %v, want correct", got)
	}

	k.Update('b', Absent)
	k.Update('b', Present)
	if got := k.State('b'); got != Present {
		t.Fatalf("b = %v, want present", got)
	}
	k.Update('b', Absent)
	if got := k.State('b'); got != Present {
		t.Fatalf("b downgraded to %v", got)
	}
}

func TestKeyboardOrderIndependent(t *testing.T) {
	seq := []LetterState{Absent, Correct, Present, Absent}
	var fwd, rev Keyboard
	for _, s := range seq {
		fwd.Update('q', s)
	}
	for i := len(seq) - 1; i >= 0; i-- {
		rev.Update('q', seq[i])
	}
	if fwd.State('q') != rev.State('q') || fwd.State('q') != Correct {
		t.Fatalf("fwd=%v rev=%v, want correct for both", fwd.State('q'), rev.State('q'))
	}
}

func TestKeyboardSnapshotAndReset(t *testing.T) {
	var k Keyboard
	k.Record("crane", Evaluate("crane", "crate"))
	snap := k.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("snapshot has %d letters, want 5: %v", len(snap), snap)
	}
	if snap["n"] != Absent || snap["c"] != Correct {
		t.Fatalf("unexpected snapshot %v", snap)
	}
	if _, ok := snap["z"]; ok {
		t.Fatal("untouched letter present in snapshot")
	}

	k.Reset()
	if len(k.Snapshot()) != 0 || k.State('c') != Unknown {
		t.Fatal("reset did not clear feedback")
	}
}

func TestKeyboardIgnoresNonLetters(t *testing.T) {
	var k Keyboard
	k.Update('A', Correct)
	k.Update('1', Correct)
	if len(k.Snapshot()) != 0 {
		t.Fatalf("expected no feedback, got %v", k.Snapshot())
	}
}
