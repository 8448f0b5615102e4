package game

import "testing"

func states(s string) GuessResult {
	var r GuessResult
	for i := 0; i < WordLength; i++ {
		switch s[i] {
		case 'C':
			r[i] = Correct
		case 'P':
			r[i] = Present
		default:
			r[i] = Absent
		}
	}
	return r
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		guess, solution string
		want            string
	}{
		{"crane", "crate", "CCCAC"},
		{"crate", "crate", "CCCCC"},
		{"rocor", "error", "PAACC"},
		{"aabbb", "ababa", "CPPCA"},
		{"speed", "abide", "AAPAP"},
		{"eerie", "abide", "AAAPC"},
		{"llama", "hello", "PPAAA"},
		{"hello", "llama", "AAPPA"},
		{"zzzzz", "crate", "AAAAA"},
		{"trace", "crate", "PCCPC"},
	}
	for _, c := range cases {
		got := Evaluate(c.guess, c.solution)
		if got != states(c.want) {
			t.Errorf("Evaluate(%q, %q) = %v, want %s", c.guess, c.solution, got, c.want)
		}
	}
}

func TestEvaluateSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"crane", "error", "mamma", "aaaaa", "zzzzz"} {
		if r := Evaluate(w, w); !r.Solved() {
			t.Fatalf("Evaluate(%q, %q) = %v, want all correct", w, w, r)
		}
	}
}

// A letter may never be marked non-absent more often than it occurs in the solution.
func TestEvaluateDuplicateBound(t *testing.T) {
	pairs := [][2]string{
		{"aabbb", "ababa"},
		{"rocor", "error"},
		{"aaaaa", "abcde"},
		{"eeeee", "geese"},
		{"sassy", "asses"},
		{"mamma", "maxim"},
	}
	for _, p := range pairs {
		guess, sol := p[0], p[1]
		r := Evaluate(guess, sol)
		var inSol, marked [26]int
		for i := 0; i < WordLength; i++ {
			inSol[sol[i]-'a']++
			if r[i] != Absent {
				marked[guess[i]-'a']++
			}
		}
		for l := 0; l < 26; l++ {
			if marked[l] > inSol[l] {
				t.Errorf("Evaluate(%q, %q): letter %c marked %d times, solution has %d",
					guess, sol, 'a'+l, marked[l], inSol[l])
			}
		}
	}
}

func TestEvaluateExactMatchWins(t *testing.T) {
	// One 'a' in the solution, at index 1; the guess has it at 0 and 1.
	r := Evaluate("aaxyz", "bacde")
	if r[0] != Absent || r[1] != Correct {
		t.Fatalf("got %v, want absent at 0 and correct at 1", r)
	}
}

func TestEvaluateErrorRocorRs(t *testing.T) {
	r := Evaluate("rocor", "error")
	nonAbsentR := 0
	for i, c := range "rocor" {
		if c == 'r' && r[i] != Absent {
			nonAbsentR++
		}
	}
	if nonAbsentR != 2 {
		t.Fatalf("expected 2 non-absent r slots, got %d (%v)", nonAbsentR, r)
	}
	if r[4] != Correct {
		t.Fatalf("trailing r should be correct, got %v", r[4])
	}
}
