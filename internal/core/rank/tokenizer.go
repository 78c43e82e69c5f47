package rank

import (
	"strings"
	"unicode"
)

// Tokenize normalises raw text into lowercase word tokens: characters
// that are neither word characters nor whitespace become spaces, the
// result is split on whitespace runs, and tokens of length <= 1 are
// dropped.
//
// Tokenize is pure and deterministic. It must be applied identically
// when indexing documents and when tokenizing queries; scoring relies
// on that symmetry.
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var current strings.Builder
	runes := 0

	flush := func() {
		// Token length is counted in runes, not bytes, so a lone
		// multibyte character is still dropped.
		if runes > 1 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		runes = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
			runes++
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
