package challenge

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownWord is returned by Resolve when a code decodes to a word the
// dictionary does not accept as a guess.
var ErrUnknownWord = errors.New("challenge: word not in dictionary")

var (
	quotedCode = regexp.MustCompile("`([^`]+)`")
	bareCode   = regexp.MustCompile(`[A-Za-z0-9+/]{4,}=*`)
)

// Dictionary is the guess lookup Resolve validates against.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Extract pulls a code out of free text: a backtick-quoted token wins,
// otherwise the first run of at least four base64 characters that decodes.
func Extract(text string) (string, bool) {
	if m := quotedCode.FindStringSubmatch(text); m != nil {
		if code := strings.TrimSpace(m[1]); code != "" {
			return code, true
		}
	}
	for _, m := range bareCode.FindAllString(text, -1) {
		if _, err := Decode(m); err == nil {
			return m, true
		}
	}
	return "", false
}

// Resolve extracts a code from text, decodes it and checks the word against
// dict. It returns the bare code and the decoded word.
func Resolve(text string, dict Dictionary) (code, word string, err error) {
	code, ok := Extract(text)
	if !ok {
		return "", "", fmt.Errorf("%w: no code found", ErrDecode)
	}
	word, err = Decode(code)
	if err != nil {
		return "", "", err
	}
	if dict == nil || !dict.IsAllowed(word) {
		return "", "", ErrUnknownWord
	}
	return code, word, nil
}

// Invite formats the text a player shares to challenge someone else.
func Invite(code, link string) string {
	var b strings.Builder
	b.WriteString("🧩 LUMIERE WORDLE CHALLENGE\n")
	fmt.Fprintf(&b, "Code: `%s`\n", code)
	if link != "" {
		b.WriteString(link)
		b.WriteString("\n")
	}
	return b.String()
}
