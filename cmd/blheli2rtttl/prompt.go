package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/blheli2rtttl/pkg/converter"
)

const notationHelp = `Melody formatting is:
"A#58 P8 G516" OR
"A#5 8 P4 G5 16" OR
"A#5 1/8 P 1/8 G5 1/16" OR mixed
Additional spaces are removed`

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B8EEA"))
	voiceStyle  = lipgloss.NewStyle().Bold(true)
)

// prompter runs the line-based session: name, tempo, then one melody per ESC
type prompter struct {
	conv *converter.Converter
	in   *bufio.Scanner
	out  io.Writer
}

func newPrompter(conv *converter.Converter, in io.Reader, out io.Writer) *prompter {
	return &prompter{conv: conv, in: bufio.NewScanner(in), out: out}
}

// ask prints question and reads one line. ok is false once input is exhausted.
func (p *prompter) ask(question string) (string, bool) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimRight(p.in.Text(), "\r"), true
}

// Run loops until the user declines to continue or input ends
func (p *prompter) Run() error {
	fmt.Fprintln(p.out, bannerStyle.Render("##### WELCOME TO THE BLHELI_32 to BLUE JAY MUSIC CONVERTER #####"))
	defaults := p.conv.GetDevice().Defaults()

	for {
		fmt.Fprintln(p.out, "----------------------------------------")
		name, ok := p.ask(fmt.Sprintf("Enter your melody name (default is %q): ", defaults.Name))
		if !ok {
			return p.in.Err()
		}
		speed, ok := p.ask(fmt.Sprintf("Enter your speed (default is %d): ", defaults.Tempo))
		if !ok {
			return p.in.Err()
		}

		header := p.conv.Header(strings.TrimSpace(name), converter.ParseTempo(speed, defaults.Tempo), -1, 0)
		fmt.Fprintf(p.out, "Header is %q\n", header.String())
		fmt.Fprintln(p.out, notationHelp)

		var melodies []string
		for i := 1; i <= p.conv.GetDevice().Voices(); i++ {
			melody, ok := p.ask(fmt.Sprintf("Enter your melody for ESC%d: (type \"exit\" to exit) ", i))
			if !ok || melody == "exit" {
				break
			}
			res := p.conv.Convert(header.Voice(i), melody)
			melodies = append(melodies, res.RTTTL)
			if invalid := res.InvalidSymbols(); len(invalid) > 0 {
				fmt.Fprintf(p.out, "Invalid symbols: %s\n", strings.Join(invalid, ", "))
			}
			fmt.Fprintf(p.out, "\n%s\n%s\n\n", voiceStyle.Render(fmt.Sprintf("ESC%d:", i)), res.RTTTL)
		}

		fmt.Fprintln(p.out, "\n##### ALL MELODIES #####")
		for _, m := range melodies {
			fmt.Fprintln(p.out, m)
		}

		answer, ok := p.ask("\nDo you want to continue? (y/n) ")
		switch {
		case !ok:
			return p.in.Err()
		case answer == "y":
			continue
		case answer == "n":
			return nil
		default:
			fmt.Fprintln(p.out, "Invalid input")
			return nil
		}
	}
}
