package converter

import (
	"regexp"
	"strings"
)

var (
	// Pitch letter or rest marker, optional sharp, up to four digits
	noteGrammar = regexp.MustCompile(`^(?:[A-G]#?|P)\d{0,4}$`)
	// Fractional duration such as 1/8 or 3/16; only the denominator is kept
	fractionGrammar = regexp.MustCompile(`^\d{1,2}/(\d{1,3})$`)
)

// Multi-digit durations accepted as standalone continuation tokens
var wholeDurations = map[string]bool{
	"16":  true,
	"32":  true,
	"64":  true,
	"128": true,
}

// Characters removed from every token before matching
const strippedChars = "\"'`"

// Tokenize splits raw input on whitespace, strips quote characters and drops
// tokens left empty.
func Tokenize(raw string) []string {
	fields := strings.Fields(raw)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Map(func(r rune) rune {
			if strings.ContainsRune(strippedChars, r) {
				return -1
			}
			return r
		}, f)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Normalize brings any mix of BLHELI_32 spacing variants into one token per
// note, e.g. "A#5 8 P 1/8 C6" becomes [A#58 P8 C6]. Durations written as a
// separate word are glued onto the preceding note. Tokens that cannot be used
// are dropped and reported as warnings; the remaining order is preserved.
func Normalize(raw string) ([]string, []Warning) {
	tokens := Tokenize(raw)
	out := make([]string, 0, len(tokens))
	var warnings []Warning

	for i, tok := range tokens {
		digits, isDuration := continuation(tok)
		switch {
		case isDuration && len(out) > 0:
			out[len(out)-1] += digits
		case isDuration:
			warnings = append(warnings, Warning{Kind: WarningLeadingDuration, Token: tok, Position: i})
		case noteGrammar.MatchString(tok):
			out = append(out, tok)
		default:
			warnings = append(warnings, Warning{Kind: WarningUnknownSymbol, Token: tok, Position: i})
		}
	}

	return out, warnings
}

// continuation reports whether tok is a duration belonging to the previous
// note and returns the digits to append to it.
func continuation(tok string) (string, bool) {
	if len(tok) == 1 && isDigit(tok[0]) {
		return tok, true
	}
	if wholeDurations[tok] {
		return tok, true
	}
	if m := fractionGrammar.FindStringSubmatch(tok); m != nil {
		return m[1], true
	}
	return "", false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
