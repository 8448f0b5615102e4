// Package challenge converts a single solution word to and from a short,
// shareable challenge code.
//
// A word is read as a base-26 numeral (a=0 … z=25, first letter most
// significant), XORed with Salt, written in decimal, and the decimal text is
// base64 encoded with the trailing '=' padding removed. The salt only hides the
// word from a casual glance; anyone can decode a code.
package challenge

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Salt is the fixed obfuscation constant. Changing it invalidates every
	// code already shared.
	Salt = 9137

	wordLength = 5
	// space is 26^5, the number of representable words.
	space = 26 * 26 * 26 * 26 * 26
)

var (
	// ErrInvalidWord is returned by Encode for input that is not [a-z]{5}.
	ErrInvalidWord = errors.New("challenge: word must be 5 lowercase letters")
	// ErrDecode is returned (wrapped) for every decode failure.
	ErrDecode = errors.New("challenge: invalid code")
)

// Encode returns the challenge code for word.
func Encode(word string) (string, error) {
	if !isWord(word) {
		return "", ErrInvalidWord
	}
	n := 0
	for i := 0; i < wordLength; i++ {
		n = n*26 + int(word[i]-'a')
	}
	m := n ^ Salt
	return base64.RawStdEncoding.EncodeToString([]byte(strconv.Itoa(m))), nil
}

// Decode returns the word encoded by code. Trailing '=' padding is optional.
// Any malformed input yields an error wrapping ErrDecode; Decode never panics.
func Decode(code string) (word string, err error) {
	defer func() {
		if r := recover(); r != nil {
			word, err = "", fmt.Errorf("%w: %v", ErrDecode, r)
		}
	}()

	token := strings.TrimRight(code, "=")
	if token == "" {
		return "", fmt.Errorf("%w: empty", ErrDecode)
	}
	for i := 0; i < len(token); i++ {
		if !isCodeChar(token[i]) {
			return "", fmt.Errorf("%w: unexpected character %q", ErrDecode, token[i])
		}
	}
	raw, err := base64.RawStdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !isDigits(raw) {
		return "", fmt.Errorf("%w: payload is not a number", ErrDecode)
	}
	m, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: payload out of range", ErrDecode)
	}
	n := m ^ Salt
	if n < 0 || n >= space {
		return "", fmt.Errorf("%w: value out of range", ErrDecode)
	}

	var letters [wordLength]byte
	for i := wordLength - 1; i >= 0; i-- {
		letters[i] = byte('a' + n%26)
		n /= 26
	}
	return string(letters[:]), nil
}

// isDigits reports whether b is a non-empty run of ASCII digits. Signs are
// rejected, so "+9137" and "-5" never decode.
func isDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isCodeChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '/'
}

func isWord(s string) bool {
	if len(s) != wordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
