package termui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robalobadob/lumiere-wordle/internal/game"
)

func TestRowPlainOutput(t *testing.T) {
	p := New(&bytes.Buffer{})
	row := p.Row("crane", game.Evaluate("crane", "crate"))
	for _, l := range []string{"C", "R", "A", "N", "E"} {
		if !strings.Contains(row, l) {
			t.Fatalf("row %q missing %s", row, l)
		}
	}
	if strings.Contains(row, "\x1b[") {
		t.Fatalf("non-terminal writer got escape codes: %q", row)
	}
}

func TestBoardHasSixRows(t *testing.T) {
	p := New(&bytes.Buffer{})
	b := p.Board([]game.Attempt{{Guess: "crane", Result: game.Evaluate("crane", "crate")}})
	if n := strings.Count(b, "\n") + 1; n != game.MaxAttempts {
		t.Fatalf("board has %d rows, want %d:\n%s", n, game.MaxAttempts, b)
	}
}

func TestKeyboardLayout(t *testing.T) {
	p := New(&bytes.Buffer{})
	var k game.Keyboard
	k.Update('q', game.Absent)
	out := p.Keyboard(k.State)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("keyboard has %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Q") || !strings.Contains(lines[2], "M") {
		t.Fatalf("unexpected keyboard:\n%s", out)
	}
}
