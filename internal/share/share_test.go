package share

import (
	"testing"
	"time"

	"github.com/robalobadob/lumiere-wordle/internal/game"
)

func TestGrid(t *testing.T) {
	attempts := []game.Attempt{
		{Guess: "crane", Result: game.Evaluate("crane", "crate")},
		{Guess: "crate", Result: game.Evaluate("crate", "crate")},
	}
	want := "🟩🟩🟩⬜🟩\n🟩🟩🟩🟩🟩\n"
	if got := Grid(attempts); got != want {
		t.Fatalf("Grid = %q, want %q", got, want)
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                     "00:00",
		59 * time.Second:                      "00:59",
		90*time.Second + 400*time.Millisecond: "01:30",
		75 * time.Minute:                      "75:00",
		-time.Second:                          "00:00",
	}
	for d, want := range cases {
		if got := FormatElapsed(d); got != want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestTextDaily(t *testing.T) {
	r := game.Result{
		Mode:   game.Daily,
		Status: game.Won,
		Attempts: []game.Attempt{
			{Guess: "trace", Result: game.Evaluate("trace", "crate")},
			{Guess: "crate", Result: game.Evaluate("crate", "crate")},
		},
		Solution: "crate",
	}
	want := "Lumiere Daily\nSolved in 01:05 • 2/6\n\n🟨🟩🟩🟨🟩\n🟩🟩🟩🟩🟩\n"
	if got := Text(r, 65*time.Second); got != want {
		t.Fatalf("Text =\n%s\nwant\n%s", got, want)
	}
	if got := Title(r, 65*time.Second); got != "Solved in 01:05 • 2/6" {
		t.Fatalf("Title = %q", got)
	}
}

func TestTextChallengeLost(t *testing.T) {
	r := game.Result{
		Mode:     game.Challenge,
		Code:     "MjEzMDU1Mg",
		Status:   game.Lost,
		Solution: "error",
	}
	want := "Lumiere Challenge MjEzMDU1Mg\nFailed in 00:10 • 0/6\n\n"
	if got := Text(r, 10*time.Second); got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
	if got := Title(r, 10*time.Second); got != "Failed in 00:10 • Word: ERROR" {
		t.Fatalf("Title = %q", got)
	}
}
