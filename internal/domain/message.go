package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatProviderMessage turns a raw provider error string into a human
// message. Pipe-delimited lists are joined with commas, slash-delimited
// lists are reduced to their first segment, and the result is capitalized
// (first rune upper, remainder lower).
func FormatProviderMessage(raw string) string {
	msg := strings.TrimSpace(raw)
	switch {
	case strings.Contains(msg, "|"):
		msg = strings.Join(strings.Split(msg, "|"), ", ")
	case strings.Contains(msg, "/"):
		msg = strings.SplitN(msg, "/", 2)[0]
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
