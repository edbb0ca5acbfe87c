package converter

import (
	"regexp"
	"strings"
)

// TokenKind is the shape of a normalized token
type TokenKind int

const (
	KindInvalid TokenKind = iota
	KindNatural
	KindSharp
	KindRest
)

// String returns a readable name for the kind
func (k TokenKind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindSharp:
		return "sharp"
	case KindRest:
		return "rest"
	default:
		return "invalid"
	}
}

// Token is a classified note token.
// Octave is the first digit after the pitch, Duration holds every digit after it.
type Token struct {
	Kind     TokenKind
	Letter   byte
	Octave   string
	Duration string
}

var tokenGrammar = regexp.MustCompile(`^(?:([A-G])(#?)|(P))(\d*)$`)

// Classify matches a normalized token against the note grammar once and
// breaks it into its parts.
func Classify(tok string) Token {
	m := tokenGrammar.FindStringSubmatch(tok)
	if m == nil {
		return Token{Kind: KindInvalid}
	}
	digits := m[4]

	if m[3] != "" {
		return Token{Kind: KindRest, Letter: 'P', Duration: digits}
	}

	t := Token{Kind: KindNatural, Letter: m[1][0]}
	if m[2] != "" {
		t.Kind = KindSharp
	}
	if digits != "" {
		t.Octave = digits[:1]
		t.Duration = digits[1:]
	}
	return t
}

// Pitch returns the RTTTL pitch for the token, lower-cased
func (t Token) Pitch() string {
	switch t.Kind {
	case KindRest:
		return "p"
	case KindSharp:
		return strings.ToLower(string(t.Letter)) + "#" + t.Octave
	case KindNatural:
		return strings.ToLower(string(t.Letter)) + t.Octave
	default:
		return ""
	}
}

// Split separates a normalized token into pitch and duration.
// "A#58" gives (a#5, 8), "P16" gives (p, 16), "C516" gives (c5, 16).
// Tokens outside the grammar give an empty Note.
func Split(tok string) Note {
	t := Classify(tok)
	if t.Kind == KindInvalid {
		return Note{}
	}
	return Note{Pitch: t.Pitch(), Duration: t.Duration}
}

// SplitAll splits every token, keeping order
func SplitAll(tokens []string) []Note {
	notes := make([]Note, len(tokens))
	for i, tok := range tokens {
		notes[i] = Split(tok)
	}
	return notes
}
