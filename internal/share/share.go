// Package share turns a finished session into the text players paste to
// each other: a header line, the outcome, and one tile row per guess.
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/lumiere-wordle/internal/game"
)

// Tile returns the emoji square for a letter state.
func Tile(s game.LetterState) string {
	switch s {
	case game.Correct:
		return "🟩"
	case game.Present:
		return "🟨"
	default:
		return "⬜"
	}
}

// Grid renders one line of tiles per attempt.
func Grid(attempts []game.Attempt) string {
	var b strings.Builder
	for _, a := range attempts {
		for _, s := range a.Result {
			b.WriteString(Tile(s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatElapsed renders d as mm:ss (minutes keep growing past 59).
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Title is the headline shown when a session ends.
func Title(r game.Result, elapsed time.Duration) string {
	if r.Status == game.Won {
		return fmt.Sprintf("Solved in %s • %d/%d", FormatElapsed(elapsed), len(r.Attempts), game.MaxAttempts)
	}
	return fmt.Sprintf("Failed in %s • Word: %s", FormatElapsed(elapsed), strings.ToUpper(r.Solution))
}

// Text is the full share message for a finished session.
func Text(r game.Result, elapsed time.Duration) string {
	var b strings.Builder
	if r.Mode == game.Challenge {
		fmt.Fprintf(&b, "Lumiere Challenge %s\n", r.Code)
	} else {
		b.WriteString("Lumiere Daily\n")
	}
	outcome := "Failed"
	if r.Status == game.Won {
		outcome = "Solved"
	}
	fmt.Fprintf(&b, "%s in %s • %d/%d\n\n", outcome, FormatElapsed(elapsed), len(r.Attempts), game.MaxAttempts)
	b.WriteString(Grid(r.Attempts))
	return b.String()
}
