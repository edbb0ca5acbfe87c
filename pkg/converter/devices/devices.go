// Package devices provides ESC firmware profiles
package devices

import (
	"strings"

	"github.com/james-see/blheli2rtttl/pkg/converter"
)

// Lookup returns the device registered under name or one of its aliases
func Lookup(name string) (converter.Device, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BlueJayID, "blue-jay", "bj":
		return NewBlueJay(), true
	case GenericID, "generic":
		return NewGeneric(), true
	default:
		return nil, false
	}
}

// All returns every known device
func All() []converter.Device {
	return []converter.Device{NewBlueJay(), NewGeneric()}
}
