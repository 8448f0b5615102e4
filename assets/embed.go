// Package assets embeds the default word lists so the engine runs without
// any files configured.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed solutions.txt guesses.txt
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed and lowercased.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// SolutionsList returns the embedded daily/challenge solution list, in file order.
func SolutionsList() ([]string, error) {
	return readEmbedded("solutions.txt")
}

// GuessesList returns the embedded extra-guesses list.
func GuessesList() ([]string, error) {
	return readEmbedded("guesses.txt")
}
