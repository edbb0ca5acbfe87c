package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format represents a file format
type Format string

const (
	FormatBLHeli  Format = "blheli"
	FormatRTTTL   Format = "rtttl"
	FormatMIDI    Format = "midi"
	FormatUnknown Format = "unknown"
)

var (
	// ErrUnsupportedConversion is returned for format pairs ConvertFile cannot handle
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrTooManyVoices is returned when more melodies than device voices are given
	ErrTooManyVoices = errors.New("too many voices for device")
)

// DetectFormat detects the format of a file based on extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".blheli":
		return FormatBLHeli
	case ".rtttl", ".rtx":
		return FormatRTTTL
	case ".mid", ".midi":
		return FormatMIDI
	default:
		return FormatUnknown
	}
}

// Header builds a header using the device defaults for unusable values
func (c *Converter) Header(name string, tempo, octave, duration int) Header {
	return NewHeader(c.device.Defaults(), name, tempo, octave, duration)
}

// DefaultHeader returns the device's default header
func (c *Converter) DefaultHeader() Header {
	return c.Header("", 0, -1, 0)
}

// Convert converts a raw melody to an RTTTL track with the given prefix and
// logs every dropped token.
func (c *Converter) Convert(prefix, raw string) Result {
	res := Transcode(prefix, raw)
	for _, w := range res.Warnings {
		c.logger.Warn(w.Unwrap().Error(),
			zap.String("kind", w.Kind.String()),
			zap.String("token", w.Token),
			zap.Int("position", w.Position),
			zap.String("prefix", prefix),
		)
	}
	return res
}

// ConvertVoices converts one melody per ESC voice. Voice i (1-based) uses
// header with i inserted into the name.
func (c *Converter) ConvertVoices(header Header, melodies []string) ([]Result, error) {
	if voices := c.device.Voices(); len(melodies) > voices {
		return nil, fmt.Errorf("%w: %s supports %d, got %d", ErrTooManyVoices, c.device.Name(), voices, len(melodies))
	}

	results := make([]Result, 0, len(melodies))
	for i, melody := range melodies {
		results = append(results, c.Convert(header.Voice(i+1), melody))
	}
	return results, nil
}

// ConvertFile converts a BLHELI_32 melody file to RTTTL text or a MIDI
// preview, or an RTTTL file to MIDI. header is only used for BLHELI_32 input.
func (c *Converter) ConvertFile(inputPath, outputPath string, header Header) (Result, error) {
	inputFormat := DetectFormat(inputPath)
	outputFormat := DetectFormat(outputPath)

	if inputFormat == FormatUnknown {
		// Anything without a known extension is read as melody text
		inputFormat = FormatBLHeli
	}
	if outputFormat == FormatUnknown {
		return Result{}, errors.New("cannot determine output format from filename")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input file: %w", err)
	}

	var res Result
	var outputData []byte

	switch {
	case inputFormat == FormatBLHeli && outputFormat == FormatRTTTL:
		res = c.Convert(header.String(), string(data))
		outputData = []byte(res.RTTTL + "\n")
	case inputFormat == FormatBLHeli && outputFormat == FormatMIDI:
		res = c.Convert(header.String(), string(data))
		outputData, err = c.RTTTLToMIDI(res.RTTTL)
	case inputFormat == FormatRTTTL && outputFormat == FormatMIDI:
		res = Result{RTTTL: strings.TrimSpace(string(data))}
		outputData, err = c.RTTTLToMIDI(res.RTTTL)
	default:
		return Result{}, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, inputFormat, outputFormat)
	}

	if err != nil {
		return res, fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		return res, fmt.Errorf("failed to write output file: %w", err)
	}

	return res, nil
}

// RTTTLToMIDI renders an RTTTL track as a standard MIDI file
func (c *Converter) RTTTLToMIDI(rtttl string) ([]byte, error) {
	track, err := ParseTrack(rtttl)
	if err != nil {
		return nil, err
	}
	return NewMIDIConverter().GenerateMIDI(track)
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"blheli -> rtttl",
		"blheli -> midi",
		"rtttl -> midi",
	}
}
