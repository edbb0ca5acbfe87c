package devices

import "github.com/james-see/blheli2rtttl/pkg/converter"

// BlueJay device constants
const (
	BlueJayID       = "bluejay"
	BlueJayVoices   = 4 // one melody per ESC on a quad
	BlueJayTempo    = 210
	BlueJayOctave   = 3
	BlueJayDuration = 4
)

// BlueJay implements the Device interface for BlueJay ESC firmware
type BlueJay struct{}

// NewBlueJay creates a new BlueJay device profile
func NewBlueJay() *BlueJay {
	return &BlueJay{}
}

// Name returns the device name
func (b *BlueJay) Name() string {
	return "BlueJay ESC"
}

// ID returns the device ID
func (b *BlueJay) ID() string {
	return BlueJayID
}

// Voices returns how many ESC melodies can be configured at once
func (b *BlueJay) Voices() int {
	return BlueJayVoices
}

// Defaults returns the header used by the BlueJay configurator
func (b *BlueJay) Defaults() converter.Defaults {
	return converter.Defaults{
		Name:     "test",
		Tempo:    BlueJayTempo,
		Octave:   BlueJayOctave,
		Duration: BlueJayDuration,
	}
}
