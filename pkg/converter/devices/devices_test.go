package devices

import (
	"errors"
	"testing"

	"github.com/james-see/blheli2rtttl/pkg/converter"
)

func TestBlueJayName(t *testing.T) {
	bj := NewBlueJay()
	if bj.Name() != "BlueJay ESC" {
		t.Errorf("Name() = %q, want %q", bj.Name(), "BlueJay ESC")
	}
	if bj.ID() != BlueJayID {
		t.Errorf("ID() = %q, want %q", bj.ID(), BlueJayID)
	}
	if bj.Voices() != 4 {
		t.Errorf("Voices() = %d, want 4", bj.Voices())
	}
}

func TestDefaultHeaders(t *testing.T) {
	tests := []struct {
		device converter.Device
		want   string
	}{
		{NewBlueJay(), "test:b=210,o=3,d=4"},
		{NewGeneric(), "test:b=210,o=5,d=8"},
	}

	for _, tt := range tests {
		t.Run(tt.device.ID(), func(t *testing.T) {
			got := converter.New(tt.device).DefaultHeader().String()
			if got != tt.want {
				t.Errorf("DefaultHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		found  bool
	}{
		{"bluejay", BlueJayID, true},
		{"BlueJay", BlueJayID, true},
		{" bj ", BlueJayID, true},
		{"rtttl", GenericID, true},
		{"generic", GenericID, true},
		{"am32", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, ok := Lookup(tt.name)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && dev.ID() != tt.wantID {
				t.Errorf("Lookup(%q).ID() = %q, want %q", tt.name, dev.ID(), tt.wantID)
			}
		})
	}
}

func TestAllDevicesHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range All() {
		if seen[d.ID()] {
			t.Errorf("duplicate device ID %q", d.ID())
		}
		seen[d.ID()] = true
	}
	if len(seen) != 2 {
		t.Errorf("All() returned %d devices, want 2", len(seen))
	}
}

func TestConvertVoicesBlueJay(t *testing.T) {
	conv := converter.New(NewBlueJay())
	header := conv.Header("song", 280, 3, 4)

	melodies := []string{"D5 8 E5 8", "A#5 8 P8", "C6 1/4", "G5 16"}
	results, err := conv.ConvertVoices(header, melodies)
	if err != nil {
		t.Fatalf("ConvertVoices() error = %v", err)
	}

	want := []string{
		"song1:b=280,o=3,d=4:8d5,8e5",
		"song2:b=280,o=3,d=4:8a#5,8p",
		"song3:b=280,o=3,d=4:4c6",
		"song4:b=280,o=3,d=4:16g5",
	}
	for i, res := range results {
		if res.RTTTL != want[i] {
			t.Errorf("voice %d = %q, want %q", i+1, res.RTTTL, want[i])
		}
	}
}

func TestConvertVoicesGenericTooMany(t *testing.T) {
	conv := converter.New(NewGeneric())
	_, err := conv.ConvertVoices(conv.DefaultHeader(), []string{"C5 4", "D5 4"})
	if !errors.Is(err, converter.ErrTooManyVoices) {
		t.Errorf("ConvertVoices() error = %v, want ErrTooManyVoices", err)
	}
}
