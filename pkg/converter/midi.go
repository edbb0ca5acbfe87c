package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIConverter renders RTTTL tracks as standard MIDI files for previewing
type MIDIConverter struct {
	ticksPerQuarter uint16
	velocity        uint8
	channel         uint8
}

// NewMIDIConverter creates a new MIDI converter
func NewMIDIConverter() *MIDIConverter {
	return &MIDIConverter{
		ticksPerQuarter: 480,
		velocity:        100,
		channel:         0,
	}
}

// noteTicks returns the length of a note in ticks; a quarter note is one beat
func (m *MIDIConverter) noteTicks(n TrackNote) uint32 {
	whole := uint32(m.ticksPerQuarter) * 4
	ticks := whole / uint32(n.Duration)
	if n.Dotted {
		ticks += ticks / 2
	}
	return ticks
}

// GenerateMIDI creates single-track MIDI data from a Track
func (m *MIDIConverter) GenerateMIDI(track *Track) ([]byte, error) {
	if track == nil {
		return nil, errors.New("nil track")
	}

	tempo := track.Tempo
	if tempo <= 0 {
		tempo = RTTTLDefaultTempo
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(track.Name))
	tr.Add(0, smf.MetaTempo(float64(tempo)))

	// Rests only push the next note-on further out
	var delta uint32
	for i, n := range track.Notes {
		if n.Duration <= 0 {
			return nil, fmt.Errorf("note %d: invalid duration %d", i, n.Duration)
		}
		ticks := m.noteTicks(n)

		if n.IsRest() {
			delta += ticks
			continue
		}

		key, err := n.MIDIKey()
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}

		tr.Add(delta, midi.NoteOn(m.channel, key, m.velocity))
		tr.Add(ticks, midi.NoteOff(m.channel, key))
		delta = 0
	}

	// Trailing rests still count towards the track length
	tr.Close(delta)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteMIDIFile writes MIDI data for a track to a file
func (m *MIDIConverter) WriteMIDIFile(track *Track, filename string) error {
	data, err := m.GenerateMIDI(track)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
