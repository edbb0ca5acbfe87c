// Package main is the entry point for the blheli2rtttl CLI
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/blheli2rtttl/pkg/api"
	"github.com/james-see/blheli2rtttl/pkg/config"
	"github.com/james-see/blheli2rtttl/pkg/converter"
	"github.com/james-see/blheli2rtttl/pkg/converter/devices"
	"github.com/james-see/blheli2rtttl/pkg/logging"
	"github.com/james-see/blheli2rtttl/pkg/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile string
	deviceName string
	songName   string
	tempo      int
	logLevel   string
	inputFile  string
	outputFile string
	serverPort int
)

// Loaded in PersistentPreRunE
var (
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blheli2rtttl",
	Short: "Convert BLHELI_32 melodies to RTTTL for BlueJay ESCs",
	Long: `blheli2rtttl converts melodies written in BLHELI_32 notation into
RTTTL tracks that can be pasted into the BlueJay configurator.

Accepted melody notation (spacing can be mixed):
  "A#58 P8 G516"
  "A#5 8 P4 G5 16"
  "A#5 1/8 P 1/8 G5 1/16"

Examples:
  blheli2rtttl convert "D5 8 E5 8 G5 8"
  blheli2rtttl convert -i melody.txt -o melody.rtttl
  blheli2rtttl voices "D5 8 E5 8" "A#5 8 P8"
  blheli2rtttl midi "test:b=210,o=3,d=4:8d5,8e5" -o preview.mid
  blheli2rtttl prompt
  blheli2rtttl tui
  blheli2rtttl serve --port 8080`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [melody]",
	Short: "Convert one melody to an RTTTL track",
	Long: `Converts a melody given as an argument, read from --input or piped on stdin.
With both --input and --output the result is written to a file; a .mid output
renders a MIDI preview instead of RTTTL text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var voicesCmd = &cobra.Command{
	Use:   "voices <melody> [melody...]",
	Short: "Convert one melody per ESC with numbered track names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVoices,
}

var midiCmd = &cobra.Command{
	Use:   "midi <rtttl>",
	Short: "Render an RTTTL track as a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDI,
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactive line-based converter",
	RunE:  runPrompt,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "Target device (bluejay, rtttl)")
	rootCmd.PersistentFlags().StringVarP(&songName, "name", "n", "", "Melody name for the header")
	rootCmd.PersistentFlags().IntVarP(&tempo, "tempo", "t", 0, "Tempo in beats per minute")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// convert command
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Melody text file")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .rtttl or .mid file path")

	// midi command
	midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path (required)")
	_ = midiCmd.MarkFlagRequired("output")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "Server port")

	// Add commands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(voicesCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config file and lets explicitly set flags override it
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("device") {
		cfg.Device = deviceName
	}
	if flags.Changed("name") {
		cfg.Name = songName
	}
	if flags.Changed("tempo") {
		cfg.Tempo = tempo
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("port") {
		cfg.Server.Port = serverPort
	}

	logger, err = logging.New(cfg.LogLevel)
	return err
}

func getConverter() (*converter.Converter, error) {
	device, ok := devices.Lookup(cfg.Device)
	if !ok {
		return nil, fmt.Errorf("unknown device %q", cfg.Device)
	}
	return converter.New(device, converter.WithLogger(logger)), nil
}

func getHeader(conv *converter.Converter) converter.Header {
	return conv.Header(cfg.Name, cfg.Tempo, -1, 0)
}

func printInvalid(w io.Writer, res converter.Result) {
	if invalid := res.InvalidSymbols(); len(invalid) > 0 {
		fmt.Fprintf(w, "Invalid symbols: %s\n", strings.Join(invalid, ", "))
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, err := getConverter()
	if err != nil {
		return err
	}
	header := getHeader(conv)

	if inputFile != "" && outputFile != "" {
		fmt.Printf("Converting %s -> %s\n", inputFile, outputFile)
		res, err := conv.ConvertFile(inputFile, outputFile, header)
		if err != nil {
			return err
		}
		printInvalid(cmd.ErrOrStderr(), res)
		fmt.Println("Conversion complete!")
		return nil
	}

	var melody string
	switch {
	case len(args) == 1:
		melody = args[0]
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return err
		}
		melody = string(data)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		melody = string(data)
	}

	res := conv.Convert(header.String(), melody)
	printInvalid(cmd.ErrOrStderr(), res)

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.RTTTL)
		return nil
	}
	return writeTrack(outputFile, conv, res.RTTTL)
}

func writeTrack(path string, conv *converter.Converter, rtttl string) error {
	var data []byte
	switch converter.DetectFormat(path) {
	case converter.FormatMIDI:
		var err error
		data, err = conv.RTTTLToMIDI(rtttl)
		if err != nil {
			return err
		}
	case converter.FormatRTTTL, converter.FormatBLHeli:
		data = []byte(rtttl + "\n")
	default:
		return fmt.Errorf("cannot determine output format from %s", filepath.Base(path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runVoices(cmd *cobra.Command, args []string) error {
	conv, err := getConverter()
	if err != nil {
		return err
	}

	results, err := conv.ConvertVoices(getHeader(conv), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		fmt.Fprintf(out, "ESC%d: %s\n", i+1, res.RTTTL)
		printInvalid(cmd.ErrOrStderr(), res)
	}
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	conv, err := getConverter()
	if err != nil {
		return err
	}

	data, err := conv.RTTTLToMIDI(args[0])
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return err
	}

	fmt.Printf("Rendered %s\n", outputFile)
	return nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	conv, err := getConverter()
	if err != nil {
		return err
	}
	return newPrompter(conv, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

func runTUI(cmd *cobra.Command, args []string) error {
	conv, err := getConverter()
	if err != nil {
		return err
	}
	return tui.Run(conv)
}

func runServe(cmd *cobra.Command, args []string) error {
	if _, ok := devices.Lookup(cfg.Device); !ok {
		return fmt.Errorf("unknown device %q", cfg.Device)
	}

	fmt.Printf("Starting API server on port %d...\n", cfg.Server.Port)
	return api.StartServer(cfg.Server.Port,
		api.WithLogger(logger),
		api.WithDefaultDevice(cfg.Device),
	)
}
