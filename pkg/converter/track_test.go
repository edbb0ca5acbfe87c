package converter

import (
	"errors"
	"testing"
)

func TestParseTrack(t *testing.T) {
	track, err := ParseTrack("test1:b=210,o=3,d=4:8a#5,8p,c6,4e5.,16d")
	if err != nil {
		t.Fatalf("ParseTrack() error = %v", err)
	}

	if track.Name != "test1" || track.Tempo != 210 || track.Octave != 3 || track.Duration != 4 {
		t.Errorf("header = %+v", track)
	}

	want := []TrackNote{
		{Duration: 8, Pitch: "a#", Octave: 5},
		{Duration: 8, Pitch: "p", Octave: 0},
		{Duration: 4, Pitch: "c", Octave: 6},
		{Duration: 4, Pitch: "e", Octave: 5, Dotted: true},
		{Duration: 16, Pitch: "d", Octave: 3},
	}
	if len(track.Notes) != len(want) {
		t.Fatalf("got %d notes, want %d", len(track.Notes), len(want))
	}
	for i := range want {
		if track.Notes[i] != want[i] {
			t.Errorf("note %d = %+v, want %+v", i, track.Notes[i], want[i])
		}
	}
}

func TestParseTrackDefaults(t *testing.T) {
	track, err := ParseTrack("ring:c,e")
	if err != nil {
		t.Fatalf("ParseTrack() error = %v", err)
	}
	if track.Tempo != RTTTLDefaultTempo || track.Octave != RTTTLDefaultOctave || track.Duration != RTTTLDefaultDuration {
		t.Errorf("defaults = b=%d o=%d d=%d", track.Tempo, track.Octave, track.Duration)
	}
	if len(track.Notes) != 2 || track.Notes[0].Octave != 6 {
		t.Errorf("notes = %+v", track.Notes)
	}
}

func TestParseTrackEmptyBody(t *testing.T) {
	track, err := ParseTrack("test:b=210,o=3,d=4:")
	if err != nil {
		t.Fatalf("ParseTrack() error = %v", err)
	}
	if len(track.Notes) != 0 {
		t.Errorf("got %d notes, want 0", len(track.Notes))
	}
}

func TestParseTrackRoundTrip(t *testing.T) {
	rtttl := ToRTTTL("song:b=280,o=3,d=4", "B5 4 P8 A#5 1/16 C6 2")
	track, err := ParseTrack(rtttl)
	if err != nil {
		t.Fatalf("ParseTrack(%q) error = %v", rtttl, err)
	}
	if len(track.Notes) != 4 {
		t.Fatalf("got %d notes, want 4", len(track.Notes))
	}
	if n := track.Notes[2]; n.Pitch != "a#" || n.Octave != 5 || n.Duration != 16 {
		t.Errorf("note 2 = %+v", n)
	}
}

func TestParseTrackErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no colon", "8c5,8d5"},
		{"bad default", "x:b=fast:c"},
		{"missing equals", "x:b210:c"},
		{"zero tempo", "x:b=0:c"},
		{"zero duration default", "x:d=0:c"},
		{"bad note", "x:d=4:8h5"},
		{"zero note duration", "x:d=4:0c5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTrack(tt.input); err == nil {
				t.Errorf("ParseTrack(%q) expected error", tt.input)
			}
		})
	}

	if _, err := ParseTrack("nothing"); !errors.Is(err, ErrNoColon) {
		t.Errorf("ParseTrack() error = %v, want ErrNoColon", err)
	}
}

func TestMIDIKey(t *testing.T) {
	tests := []struct {
		note    TrackNote
		want    uint8
		wantErr bool
	}{
		{TrackNote{Pitch: "a", Octave: 4}, 69, false},
		{TrackNote{Pitch: "c", Octave: 4}, 60, false},
		{TrackNote{Pitch: "a#", Octave: 5}, 82, false},
		{TrackNote{Pitch: "e#", Octave: 4}, 65, false},
		{TrackNote{Pitch: "b", Octave: 9}, 0, true},
		{TrackNote{Pitch: "p"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.note.Pitch, func(t *testing.T) {
			got, err := tt.note.MIDIKey()
			if (err != nil) != tt.wantErr {
				t.Fatalf("MIDIKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MIDIKey() = %d, want %d", got, tt.want)
			}
		})
	}
}
