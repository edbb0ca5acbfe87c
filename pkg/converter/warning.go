package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrLeadingDuration is reported when a melody starts with a bare duration
	ErrLeadingDuration = errors.New("should not start with a number")
	// ErrUnknownSymbol is reported for tokens outside the note grammar
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// WarningKind classifies a dropped token
type WarningKind int

const (
	// WarningLeadingDuration marks a duration with no note to attach to
	WarningLeadingDuration WarningKind = iota + 1
	// WarningUnknownSymbol marks a token matching no accepted notation
	WarningUnknownSymbol
)

// String returns the kind name used in logs and API responses
func (k WarningKind) String() string {
	switch k {
	case WarningLeadingDuration:
		return "leading_duration"
	case WarningUnknownSymbol:
		return "unknown_symbol"
	default:
		return "unknown"
	}
}

// Warning describes a token dropped during normalization.
// Position is the index of the token after whitespace splitting.
type Warning struct {
	Kind     WarningKind
	Token    string
	Position int
}

func (w Warning) Error() string {
	return fmt.Sprintf("%v: %q at position %d", w.Unwrap(), w.Token, w.Position)
}

// Unwrap lets errors.Is match the sentinel for the warning kind
func (w Warning) Unwrap() error {
	switch w.Kind {
	case WarningLeadingDuration:
		return ErrLeadingDuration
	case WarningUnknownSymbol:
		return ErrUnknownSymbol
	default:
		return nil
	}
}
