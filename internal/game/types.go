// internal/game/types.go
//
// Core type definitions for the Wordle rule engine.
// Defines:
//   - LetterState: per-letter feedback (absent/present/correct), ordered by priority.
//   - GuessResult: the five states for one scored guess.
//   - Attempt, Status, Mode: the pieces of a session's public state.

package game

import "fmt"

const (
	// WordLength is the number of letters in every guess and solution.
	WordLength = 5
	// MaxAttempts is the number of guesses a session allows before it is lost.
	MaxAttempts = 6
)

// LetterState represents the evaluation result for a single letter.
// The numeric value doubles as the priority used by the keyboard tracker:
//   - Absent (1):  letter is not in the solution (or all copies are used up).
//   - Present (2): letter is in the solution at another position.
//   - Correct (3): letter is in the solution at this position.
//
// The zero value, Unknown, means "no feedback yet".
type LetterState uint8

const (
	Unknown LetterState = iota
	Absent
	Present
	Correct
)

// Priority returns the ordering weight of s (Unknown is 0).
func (s LetterState) Priority() int { return int(s) }

func (s LetterState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its lowercase name for JSON payloads.
func (s LetterState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a lowercase state name.
func (s *LetterState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*s = Absent
	case "present":
		*s = Present
	case "correct":
		*s = Correct
	case "unknown", "":
		*s = Unknown
	default:
		return fmt.Errorf("game: unknown letter state %q", string(b))
	}
	return nil
}

// GuessResult holds the states for one guess, index-aligned with its letters.
type GuessResult [WordLength]LetterState

// Solved reports whether every slot is Correct.
func (r GuessResult) Solved() bool {
	for _, s := range r {
		if s != Correct {
			return false
		}
	}
	return true
}

// Attempt is one accepted guess together with its score.
type Attempt struct {
	Guess  string      `json:"guess"`
	Result GuessResult `json:"result"`
}

// Status is the coarse state of a session.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

// Terminal reports whether no further guesses can be accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// MarshalText renders the status as "playing" | "won" | "lost".
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Mode records how a session's solution was chosen.
type Mode uint8

const (
	Daily Mode = iota
	Challenge
)

func (m Mode) String() string {
	if m == Challenge {
		return "challenge"
	}
	return "daily"
}

// MarshalText renders the mode as "daily" | "challenge".
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses "daily" | "challenge".
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMode maps "daily" / "challenge" (empty means daily) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "daily":
		return Daily, nil
	case "challenge":
		return Challenge, nil
	default:
		return Daily, fmt.Errorf("game: unknown mode %q", s)
	}
}
