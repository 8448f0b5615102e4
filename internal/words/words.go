// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Build a Dictionary from a solution list and a guess list.
//   - Keep the invariant Solutions ⊆ Guesses (solutions are merged in at build time).
//   - Load lists from files (newline-separated) or fall back to embedded defaults.
//
// Word Lists:
//   - "solutions": candidate daily/challenge words, ordered (the daily index addresses them).
//   - "guesses":   every word accepted as input; always includes the solutions.
//
// Loading behavior (Load):
//   1. Both paths set → solutions from the first, guesses from the second.
//   2. Only the guesses path set → that file serves as both lists.
//   3. Neither set → embedded defaults from the assets package.
//
// Constraints:
//   • Words must be 5 lowercase letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase.

package words

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lumiere-wordle/assets"
)

// Length is the number of letters in a word.
const Length = 5

// ErrNoSolutions is returned when a dictionary would have no solutions.
var ErrNoSolutions = errors.New("words: solutions list is empty")

// Dictionary holds the solution list and the guess set.
// It is immutable once built and safe for concurrent readers.
type Dictionary struct {
	solutions []string
	solSet    mapset.Set[string]
	guesses   mapset.Set[string]
}

// New builds a Dictionary. Invalid entries are dropped, solutions keep their
// first-seen order, and every solution is added to the guess set.
func New(solutions, guesses []string) *Dictionary {
	d := &Dictionary{
		solSet:  mapset.NewSet[string](),
		guesses: mapset.NewSet[string](),
	}
	for _, w := range guesses {
		if w = normalize(w); IsWord(w) {
			d.guesses.Add(w)
		}
	}
	for _, w := range solutions {
		w = normalize(w)
		if !IsWord(w) {
			continue
		}
		if d.solSet.Add(w) {
			d.solutions = append(d.solutions, w)
		}
		d.guesses.Add(w)
	}
	return d
}

// IsAllowed reports whether w is a valid guess. A nil Dictionary allows nothing.
func (d *Dictionary) IsAllowed(w string) bool {
	if d == nil {
		return false
	}
	return d.guesses.Contains(strings.ToLower(w))
}

// IsSolution reports whether w is in the solution list.
func (d *Dictionary) IsSolution(w string) bool {
	if d == nil {
		return false
	}
	return d.solSet.Contains(strings.ToLower(w))
}

// Solutions returns a copy of the ordered solution list.
func (d *Dictionary) Solutions() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.solutions))
	copy(out, d.solutions)
	return out
}

// Solution returns the i-th solution.
func (d *Dictionary) Solution(i int) string { return d.solutions[i] }

// Len is the number of solutions.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.solutions)
}

// Stats returns counts of loaded words: (solutions, guesses).
func (d *Dictionary) Stats() (solutionCount int, guessCount int) {
	if d == nil {
		return 0, 0
	}
	return len(d.solutions), d.guesses.Cardinality()
}

// Load builds a Dictionary from word files, falling back to the embedded lists.
// It fails if no solutions survive loading.
func Load(solutionsPath, guessesPath string) (*Dictionary, error) {
	var solList, guessList []string
	var err error

	switch {
	case solutionsPath != "" && guessesPath != "":
		if solList, err = readWordFile(solutionsPath); err != nil {
			return nil, err
		}
		if guessList, err = readWordFile(guessesPath); err != nil {
			return nil, err
		}
	case guessesPath != "":
		if guessList, err = readWordFile(guessesPath); err != nil {
			return nil, err
		}
		solList = guessList
	default:
		if solList, err = assets.SolutionsList(); err != nil {
			return nil, fmt.Errorf("words: embedded solutions: %w", err)
		}
		if guessList, err = assets.GuessesList(); err != nil {
			return nil, fmt.Errorf("words: embedded guesses: %w", err)
		}
	}

	d := New(solList, guessList)
	s, g := d.Stats()
	log.Debug().Int("solutions", s).Int("guesses", g).Int("guessesBeforeMerge", len(guessList)).Msg("word lists loaded")
	if s == 0 {
		return nil, ErrNoSolutions
	}
	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the embedded dictionary, built once.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = Load("", "")
	})
	return defaultDict, defaultErr
}

// readWordFile loads one word per line from a file,
// keeping only valid 5-letter words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	out := lines[:0]
	for _, w := range lines {
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// IsWord reports whether s is exactly 5 lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
