package devices

import "github.com/james-see/blheli2rtttl/pkg/converter"

// Generic RTTTL constants
const (
	GenericID       = "rtttl"
	GenericTempo    = 210
	GenericOctave   = 5
	GenericDuration = 8
)

// Generic is a plain single-voice RTTTL target such as a phone or buzzer
type Generic struct{}

// NewGeneric creates a new generic RTTTL profile
func NewGeneric() *Generic {
	return &Generic{}
}

func (g *Generic) Name() string { return "Generic RTTTL" }
func (g *Generic) ID() string   { return GenericID }
func (g *Generic) Voices() int  { return 1 }

// Defaults returns the header used for single ringtones
func (g *Generic) Defaults() converter.Defaults {
	return converter.Defaults{
		Name:     "test",
		Tempo:    GenericTempo,
		Octave:   GenericOctave,
		Duration: GenericDuration,
	}
}
