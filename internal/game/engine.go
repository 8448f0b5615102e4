// internal/game/engine.go
//
// Game state machine for a single Wordle session.
// Responsibilities:
//   - Start sessions (daily or challenge) with a fresh attempt list and keyboard.
//   - Validate guesses (length, dictionary, terminal state) in that order.
//   - Score accepted guesses via Evaluate and feed the keyboard tracker.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary is injected; the engine never loads words itself.
//   - A Game is not safe for concurrent use; callers serialize SubmitGuess.
//   - Reveal pacing is a caller concern: results are returned fully computed.
package game

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Rejection reasons returned by SubmitGuess. All are recoverable.
var (
	ErrWrongLength     = errors.New("wrong length")
	ErrNotInDictionary = errors.New("not in word list")
	ErrGameOver        = errors.New("game over")
	ErrInvalidSolution = errors.New("invalid solution")
)

// Dictionary is the guess-validity lookup the engine needs.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Game holds the state of one session. Fields change only through Start and
// SubmitGuess (and the buffer commands that end in SubmitGuess).
type Game struct {
	id       string
	dict     Dictionary
	now      func() time.Time
	mode     Mode
	code     string
	solution string
	attempts []Attempt
	status   Status
	keyboard Keyboard
	pending  []byte
	started  time.Time
	finished time.Time
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithClock overrides the time source used for the session timer.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New constructs an idle game bound to dict. Call Start before submitting guesses.
func New(dict Dictionary, opts ...Option) *Game {
	g := &Game{
		id:   uuid.NewString(),
		dict: dict,
		now:  time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Start begins a new session, discarding attempts, keyboard feedback, the
// input buffer and the timer. It is the only way out of a terminal state.
// code is the challenge code for Challenge sessions and ignored for Daily.
func (g *Game) Start(solution string, mode Mode, code string) error {
	solution = strings.ToLower(strings.TrimSpace(solution))
	if len(solution) != WordLength || !isAlpha(solution) {
		return ErrInvalidSolution
	}
	g.solution = solution
	g.mode = mode
	g.code = ""
	if mode == Challenge {
		g.code = code
	}
	g.attempts = make([]Attempt, 0, MaxAttempts)
	g.status = InProgress
	g.keyboard = Keyboard{}
	g.pending = g.pending[:0]
	g.started = time.Time{}
	g.finished = time.Time{}
	return nil
}

// SubmitGuess validates and scores input, mutating the session.
//
// Validation order:
//   - ErrWrongLength if input is not exactly WordLength characters. Input is
//     taken as is; surrounding whitespace counts toward the length.
//   - ErrNotInDictionary if the lowercased word is not an allowed guess.
//   - ErrGameOver if the session is already won or lost.
//
// State transitions:
//   - guess == solution → Won.
//   - else the MaxAttempts-th guess → Lost.
func (g *Game) SubmitGuess(input string) (GuessResult, error) {
	if utf8.RuneCountInString(input) != WordLength {
		return GuessResult{}, ErrWrongLength
	}
	guess := strings.ToLower(input)
	if len(guess) != WordLength || !isAlpha(guess) || g.dict == nil || !g.dict.IsAllowed(guess) {
		return GuessResult{}, ErrNotInDictionary
	}
	if g.status.Terminal() || g.solution == "" {
		return GuessResult{}, ErrGameOver
	}

	if g.started.IsZero() {
		g.started = g.now()
	}
	res := Evaluate(guess, g.solution)
	g.attempts = append(g.attempts, Attempt{Guess: guess, Result: res})
	g.keyboard.Record(guess, res)

	switch {
	case guess == g.solution:
		g.status = Won
	case len(g.attempts) >= MaxAttempts:
		g.status = Lost
	}
	if g.status.Terminal() {
		g.finished = g.now()
	}
	return res, nil
}

// AppendLetter adds r to the input buffer. It reports false when r is not a
// letter, the buffer is full, or the session is over.
func (g *Game) AppendLetter(r rune) bool {
	if g.status.Terminal() || len(g.pending) >= WordLength {
		return false
	}
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
		r += 'a' - 'A'
	default:
		return false
	}
	g.pending = append(g.pending, byte(r))
	return true
}

// Backspace removes the last buffered letter, reporting whether one was removed.
func (g *Game) Backspace() bool {
	if g.status.Terminal() || len(g.pending) == 0 {
		return false
	}
	g.pending = g.pending[:len(g.pending)-1]
	return true
}

// Submit sends the buffered letters through SubmitGuess. The buffer is cleared
// only when the guess is accepted.
func (g *Game) Submit() (GuessResult, error) {
	res, err := g.SubmitGuess(string(g.pending))
	if err != nil {
		return res, err
	}
	g.pending = g.pending[:0]
	return res, nil
}

// Pending returns the buffered, not yet submitted letters.
func (g *Game) Pending() string { return string(g.pending) }

func (g *Game) ID() string       { return g.id }
func (g *Game) Mode() Mode       { return g.mode }
func (g *Game) Code() string     { return g.code }
func (g *Game) Status() Status   { return g.status }
func (g *Game) Solution() string { return g.solution }

// Attempts returns a copy of the accepted guesses in order.
func (g *Game) Attempts() []Attempt {
	out := make([]Attempt, len(g.attempts))
	copy(out, g.attempts)
	return out
}

// Remaining is the number of guesses left before the session is lost.
func (g *Game) Remaining() int {
	if g.status.Terminal() {
		return 0
	}
	return MaxAttempts - len(g.attempts)
}

// LetterState returns the keyboard feedback for letter.
func (g *Game) LetterState(letter byte) LetterState { return g.keyboard.State(letter) }

// Keyboard returns a snapshot of per-letter feedback.
func (g *Game) Keyboard() map[string]LetterState { return g.keyboard.Snapshot() }

// Elapsed is the time from the first accepted guess to the end of the session
// (or to now while it is still running). Zero before the first guess.
func (g *Game) Elapsed() time.Duration {
	if g.started.IsZero() {
		return 0
	}
	if !g.finished.IsZero() {
		return g.finished.Sub(g.started)
	}
	return g.now().Sub(g.started)
}

// Result is the public record of a session, consumed by share formatting.
type Result struct {
	Mode     Mode      `json:"mode"`
	Code     string    `json:"code,omitempty"`
	Status   Status    `json:"status"`
	Attempts []Attempt `json:"attempts"`
	// Solution is only filled in once the session is terminal.
	Solution string `json:"solution,omitempty"`
}

// Result snapshots the session.
func (g *Game) Result() Result {
	r := Result{
		Mode:     g.mode,
		Code:     g.code,
		Status:   g.status,
		Attempts: g.Attempts(),
	}
	if g.status.Terminal() {
		r.Solution = g.solution
	}
	return r
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
