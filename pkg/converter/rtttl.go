package converter

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize joins notes into an RTTTL note list. No notes gives "".
func Serialize(notes []Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}

// Transcode runs the full pipeline on a raw BLHELI_32 melody and prefixes the
// note list with prefix and a colon. A melody with no usable notes yields
// "prefix:".
func Transcode(prefix, raw string) Result {
	tokens, warnings := Normalize(raw)
	return Result{
		RTTTL:    prefix + ":" + Serialize(SplitAll(tokens)),
		Warnings: warnings,
	}
}

// ToRTTTL is Transcode without the warnings
func ToRTTTL(prefix, raw string) string {
	return Transcode(prefix, raw).RTTTL
}

// WithVoiceNumber inserts n right before the first colon of header, turning
// "name:b=210,o=3,d=4" into "name2:b=210,o=3,d=4". A header without a colon
// gets the number appended.
func WithVoiceNumber(header string, n int) string {
	num := strconv.Itoa(n)
	i := strings.IndexByte(header, ':')
	if i < 0 {
		return header + num
	}
	return header[:i] + num + header[i:]
}

// Header is the RTTTL name and defaults section
type Header struct {
	Name     string
	Tempo    int
	Octave   int
	Duration int
}

// NewHeader builds a header, replacing unusable values with the device defaults:
// empty name, tempo <= 0, octave outside 0..9 and durations that are not a
// power of two.
func NewHeader(d Defaults, name string, tempo, octave, duration int) Header {
	h := Header{Name: name, Tempo: tempo, Octave: octave, Duration: duration}
	if strings.TrimSpace(h.Name) == "" {
		h.Name = d.Name
	}
	if h.Tempo <= 0 {
		h.Tempo = d.Tempo
	}
	if h.Octave < 0 || h.Octave > 9 {
		h.Octave = d.Octave
	}
	if h.Duration <= 0 || h.Duration&(h.Duration-1) != 0 {
		h.Duration = d.Duration
	}
	return h
}

func (h Header) String() string {
	return fmt.Sprintf("%s:b=%d,o=%d,d=%d", h.Name, h.Tempo, h.Octave, h.Duration)
}

// Voice returns the header prefix for ESC voice n
func (h Header) Voice(n int) string {
	return WithVoiceNumber(h.String(), n)
}

// ParseTempo reads a tempo typed by a user. Anything that is not a plain
// positive number gives fallback.
func ParseTempo(text string, fallback int) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return fallback
		}
	}
	tempo, err := strconv.Atoi(text)
	if err != nil || tempo <= 0 {
		return fallback
	}
	return tempo
}
