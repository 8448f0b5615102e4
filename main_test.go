package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// run executes the CLI against the embedded word lists with a fixed clock on
// the first daily puzzle (cigar).
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WORDS_SOLUTIONS_FILE", "")
	t.Setenv("WORDS_GUESSES_FILE", "")
	t.Setenv("SHARE_LINK", "")

	var out bytes.Buffer
	a := newApp(strings.NewReader(stdin), &out)
	a.now = func() time.Time { return time.Date(2021, 6, 19, 12, 0, 0, 0, time.Local) }
	argv := append([]string{"lumiere", "--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...)
	err := a.command().Run(context.Background(), argv)
	return out.String(), err
}

func TestDailyCommand(t *testing.T) {
	out, err := run(t, "", "daily", "--date", "2021-06-19", "--reveal")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "2021-06-19  day 0  word 1/") || !strings.Contains(out, "CIGAR") {
		t.Fatalf("daily output %q", out)
	}

	out, err = run(t, "", "daily", "--date", "2021-06-20")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "day 1  word 2/") || strings.Contains(out, "REBUT") {
		t.Fatalf("daily output %q", out)
	}

	if _, err := run(t, "", "daily", "--date", "19/06/2021"); err == nil {
		t.Fatal("malformed date accepted")
	}
}

func TestEncodeDecodeCommands(t *testing.T) {
	out, err := run(t, "", "encode", "Crane")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Code: `MTIyMDkxMQ`") {
		t.Fatalf("encode output %q", out)
	}
	if _, err := run(t, "", "encode", "qqqqq"); err == nil {
		t.Fatal("encoded a word outside the list")
	}

	out, err = run(t, "", "decode", "join", "me:", "Code:", "`MTIyMDkxMQ`")
	if err != nil {
		t.Fatal(err)
	}
	if out != "MTIyMDkxMQ  CRANE\n" {
		t.Fatalf("decode output %q", out)
	}
	if _, err := run(t, "", "decode", "!!!"); err == nil {
		t.Fatal("decoded garbage")
	}
}

func TestPlayDailyWin(t *testing.T) {
	out, err := run(t, "abc\nqqqqq\n\ncigar\n", "play", "--date", "2021-06-19")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Lumiere Daily 2021-06-19",
		"Guesses must be 5 letters.",
		"Not in word list.",
		"Lumiere Daily\nSolved in 00:00 • 1/6\n\n🟩🟩🟩🟩🟩",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("play output missing %q:\n%s", want, out)
		}
	}
}

func TestPlayChallengeAbandoned(t *testing.T) {
	out, err := run(t, "slate\n", "play", "--code", "MTIyMDkxMQ")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Lumiere Challenge MTIyMDkxMQ") || !strings.Contains(out, "Game abandoned.") {
		t.Fatalf("play output:\n%s", out)
	}
	if strings.Contains(out, "CRANE") {
		t.Fatal("abandoned game revealed the word")
	}
}
