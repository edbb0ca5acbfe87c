// Package converter turns BLHELI_32 melody notation into RTTTL tracks for BlueJay ESCs
package converter

import "go.uber.org/zap"

// Note is a single pitch/duration pair ready for RTTTL serialization
type Note struct {
	Pitch    string // lower-cased pitch with octave digit, "p" for rests
	Duration string // duration digits; empty means the header default
}

// String renders the note in RTTTL order (duration first)
func (n Note) String() string {
	return n.Duration + n.Pitch
}

// Defaults are the header values a device falls back to
type Defaults struct {
	Name     string
	Tempo    int
	Octave   int
	Duration int
}

// Result holds the outcome of converting one melody
type Result struct {
	RTTTL    string
	Warnings []Warning
}

// InvalidSymbols returns the tokens that were dropped during normalization
func (r Result) InvalidSymbols() []string {
	symbols := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		symbols = append(symbols, w.Token)
	}
	return symbols
}

// Device describes an ESC firmware target
type Device interface {
	Name() string
	ID() string
	Voices() int
	Defaults() Defaults
}

// Converter handles melody conversions for a device
type Converter struct {
	device Device
	logger *zap.Logger
}

// Option configures a Converter
type Option func(*Converter)

// WithLogger sets the sink for dropped-token diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new Converter with the specified device
func New(device Device, opts ...Option) *Converter {
	c := &Converter{device: device, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetDevice returns the current device
func (c *Converter) GetDevice() Device {
	return c.device
}

// SetDevice sets the device for conversion
func (c *Converter) SetDevice(device Device) {
	c.device = device
}
