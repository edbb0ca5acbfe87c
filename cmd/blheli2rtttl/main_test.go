package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	t.Cleanup(func() {
		inputFile, outputFile = "", ""
	})
	err := rootCmd.Execute()
	return out.String() + errOut.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", "D5 8 E5 8 G5 8 X", "--device", "bluejay", "--name", "cli", "--tempo", "300")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.Contains(out, "cli:b=300,o=3,d=4:8d5,8e5,8g5") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Invalid symbols: X") {
		t.Errorf("invalid symbols not reported: %q", out)
	}
}

func TestConvertCommandGenericDevice(t *testing.T) {
	out, err := execute(t, "convert", "A#5 8 P8", "--device", "rtttl", "--name", "ring", "--tempo", "210")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.Contains(out, "ring:b=210,o=5,d=8:8a#5,8p") {
		t.Errorf("output = %q", out)
	}
}

func TestVoicesCommand(t *testing.T) {
	out, err := execute(t, "voices", "D5 8", "E5 8", "--name", "quad", "--tempo", "210", "--device", "bluejay")
	if err != nil {
		t.Fatalf("voices error = %v", err)
	}
	for _, want := range []string{"ESC1: quad1:b=210,o=3,d=4:8d5", "ESC2: quad2:b=210,o=3,d=4:8e5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestUnknownDevice(t *testing.T) {
	if _, err := execute(t, "convert", "C5", "--device", "am32"); err == nil {
		t.Error("expected error for unknown device")
	}
}

func TestWriteTrack(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "convert", "C6 1/4", "--device", "bluejay", "--name", "f", "--tempo", "210", "-o", filepath.Join(dir, "f.rtttl"))
	if err != nil {
		t.Fatalf("convert error = %v (%s)", err, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "f.rtttl"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "f:b=210,o=3,d=4:4c6\n" {
		t.Errorf("file = %q", data)
	}
}
