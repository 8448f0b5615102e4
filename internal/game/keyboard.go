package game

// Keyboard aggregates the best feedback seen for each letter during a session.
// A letter's state only ever moves up in priority; Reset is the only way back.
type Keyboard struct {
	states [26]LetterState
}

// Update records s for letter if it outranks what is already stored.
// Bytes outside a–z are ignored.
func (k *Keyboard) Update(letter byte, s LetterState) {
	i := idx(letter)
	if i < 0 || i >= 26 {
		return
	}
	if s.Priority() > k.states[i].Priority() {
		k.states[i] = s
	}
}

// Record feeds every letter of a scored guess, in index order.
func (k *Keyboard) Record(guess string, r GuessResult) {
	for i := 0; i < WordLength && i < len(guess); i++ {
		k.Update(guess[i], r[i])
	}
}

// State returns the stored state for letter, Unknown if none.
func (k *Keyboard) State(letter byte) LetterState {
	i := idx(letter)
	if i < 0 || i >= 26 {
		return Unknown
	}
	return k.states[i]
}

// Snapshot returns the letters with feedback, keyed by the single-letter string.
func (k *Keyboard) Snapshot() map[string]LetterState {
	out := make(map[string]LetterState)
	for i, s := range k.states {
		if s != Unknown {
			out[string(rune('a'+i))] = s
		}
	}
	return out
}

// Reset clears all feedback.
func (k *Keyboard) Reset() { k.states = [26]LetterState{} }
