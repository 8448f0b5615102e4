package game

// Evaluate scores guess against solution using the two-pass rule.
//
// Pass 1:
//   - Mark exact matches Correct; those solution letters are consumed.
//   - Count the remaining (unconsumed) solution letters.
//
// Pass 2:
//   - For each non-Correct slot: if an unconsumed copy of the letter remains,
//     mark Present and consume it; otherwise leave Absent.
//
// A letter repeated in the guess is therefore marked non-Absent at most as many
// times as it occurs in the solution, and exact matches are never taken by an
// earlier Present. Both words must be WordLength lowercase letters.
func Evaluate(guess, solution string) GuessResult {
	var res GuessResult
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		res[i] = Absent
		if guess[i] == solution[i] {
			res[i] = Correct
		} else {
			counts[idx(solution[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25; other bytes fall outside that range.
func idx(b byte) int { return int(b) - 'a' }
