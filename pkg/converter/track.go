package converter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Defaults RTTTL players assume when a header leaves a value out
const (
	RTTTLDefaultTempo    = 63
	RTTTLDefaultOctave   = 6
	RTTTLDefaultDuration = 4
)

// ErrNoColon is returned when an RTTTL string has no name section
var ErrNoColon = errors.New("rtttl: missing ':' separator")

// TrackNote is one parsed RTTTL note with header defaults applied
type TrackNote struct {
	Duration int    // note value: 1 whole, 4 quarter, 16 sixteenth
	Pitch    string // c..b with optional sharp, or p
	Octave   int
	Dotted   bool
}

// IsRest reports whether the note is a pause
func (n TrackNote) IsRest() bool {
	return n.Pitch == "p"
}

var semitones = map[string]int{
	"c": 0, "c#": 1, "d": 2, "d#": 3, "e": 4, "e#": 5, "f": 5, "f#": 6,
	"g": 7, "g#": 8, "a": 9, "a#": 10, "b": 11, "b#": 12,
}

// MIDIKey returns the MIDI note number, with a4 at 69
func (n TrackNote) MIDIKey() (uint8, error) {
	semi, ok := semitones[n.Pitch]
	if !ok {
		return 0, fmt.Errorf("rtttl: %q has no MIDI key", n.Pitch)
	}
	key := 12*(n.Octave+1) + semi
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("rtttl: %s%d is outside the MIDI range", n.Pitch, n.Octave)
	}
	return uint8(key), nil
}

// Track is a parsed RTTTL ringtone
type Track struct {
	Name     string
	Tempo    int
	Octave   int
	Duration int
	Notes    []TrackNote
}

var trackNoteGrammar = regexp.MustCompile(`^(\d*)([a-gp]#?)(\.?)(\d?)(\.?)$`)

// ParseTrack parses "name:b=..,o=..,d=..:notes". The defaults section may be
// omitted ("name:notes"), in which case b=63, o=6, d=4 apply.
func ParseTrack(s string) (*Track, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return nil, ErrNoColon
	}

	t := &Track{
		Name:     strings.TrimSpace(parts[0]),
		Tempo:    RTTTLDefaultTempo,
		Octave:   RTTTLDefaultOctave,
		Duration: RTTTLDefaultDuration,
	}
	if len(parts) == 3 {
		if err := t.parseDefaults(parts[1]); err != nil {
			return nil, err
		}
	}

	for i, raw := range strings.Split(parts[len(parts)-1], ",") {
		raw = strings.ToLower(strings.TrimSpace(raw))
		if raw == "" {
			continue
		}
		m := trackNoteGrammar.FindStringSubmatch(raw)
		if m == nil {
			return nil, fmt.Errorf("rtttl: invalid note %q at position %d", raw, i)
		}

		n := TrackNote{
			Duration: t.Duration,
			Pitch:    m[2],
			Octave:   t.Octave,
			Dotted:   m[3] != "" || m[5] != "",
		}
		if m[1] != "" {
			d, err := strconv.Atoi(m[1])
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("rtttl: invalid duration in %q at position %d", raw, i)
			}
			n.Duration = d
		}
		if m[4] != "" {
			n.Octave = int(m[4][0] - '0')
		}
		if n.IsRest() {
			n.Octave = 0
		}
		t.Notes = append(t.Notes, n)
	}

	return t, nil
}

func (t *Track) parseDefaults(section string) error {
	for _, item := range strings.Split(section, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return fmt.Errorf("rtttl: invalid default %q", item)
		}
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("rtttl: invalid default %q: %w", item, err)
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "b":
			if v <= 0 {
				return fmt.Errorf("rtttl: tempo must be positive, got %d", v)
			}
			t.Tempo = v
		case "o":
			t.Octave = v
		case "d":
			if v <= 0 {
				return fmt.Errorf("rtttl: duration must be positive, got %d", v)
			}
			t.Duration = v
		}
	}
	return nil
}
