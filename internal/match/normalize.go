package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases s and drops separators (_, - and spaces), so
// "EmailAddress", "email_address" and "email-address" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// TokenizeIdent splits an identifier into lowercase words.
//
//	"OrderID"       -> [order id]
//	"XMLParser"     -> [xml parser]
//	"email_address" -> [email address]
func TokenizeIdent(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

// SnakeCase joins the words of s with underscores.
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordBoundary reports whether a new word starts at runes[i]: a lower to
// upper transition ("orderID") or the last capital of an acronym followed
// by lowercase ("XMLParser").
func wordBoundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
