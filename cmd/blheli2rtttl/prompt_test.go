package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/james-see/blheli2rtttl/pkg/converter"
	"github.com/james-see/blheli2rtttl/pkg/converter/devices"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	conv := converter.New(devices.NewBlueJay())
	if err := newPrompter(conv, strings.NewReader(input), &out).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestPromptSession(t *testing.T) {
	input := strings.Join([]string{
		"song",
		"280",
		"D5 8 E5 8 G5 8",
		"A#5 8 P8 J#6",
		"exit",
		"n",
	}, "\n") + "\n"

	out := runSession(t, input)

	for _, want := range []string{
		`Header is "song:b=280,o=3,d=4"`,
		"song1:b=280,o=3,d=4:8d5,8e5,8g5",
		"song2:b=280,o=3,d=4:8a#5,8p",
		"Invalid symbols: J#6",
		"##### ALL MELODIES #####",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "song3:") {
		t.Error("exit should stop voice entry")
	}
}

func TestPromptDefaults(t *testing.T) {
	out := runSession(t, "\nfast\nC6 1/4\nexit\nn\n")
	if !strings.Contains(out, `Header is "test:b=210,o=3,d=4"`) {
		t.Errorf("expected default header\n%s", out)
	}
	if !strings.Contains(out, "test1:b=210,o=3,d=4:4c6") {
		t.Errorf("expected converted voice\n%s", out)
	}
}

func TestPromptFourVoicesThenContinue(t *testing.T) {
	input := "a\n100\nC5 4\nD5 4\nE5 4\nF5 4\ny\nb\n\nexit\nmaybe\n"
	out := runSession(t, input)

	if !strings.Contains(out, "a4:b=100,o=3,d=4:4f5") {
		t.Errorf("fourth voice missing\n%s", out)
	}
	if strings.Contains(out, "ESC5") {
		t.Error("only four voices should be asked for")
	}
	if !strings.Contains(out, `Header is "b:b=210,o=3,d=4"`) {
		t.Errorf("second round header missing\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "Invalid input") {
		t.Errorf("unknown answer should end with Invalid input\n%s", out)
	}
}

func TestPromptEndOfInput(t *testing.T) {
	out := runSession(t, "song\n")
	if strings.Contains(out, "Header is") {
		t.Error("session should stop when input ends before the tempo")
	}
}
