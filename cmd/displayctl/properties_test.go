package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"testing"

	"github.com/1broseidon/displayctl/display"
)

func parseProps(t *testing.T, args ...string) (display.PropertySet, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var pf propertyFlags
	pf.register(fs)
	err := fs.Parse(args)
	return pf.props, err
}

func TestPropertyFlags_AllProperties(t *testing.T) {
	props, err := parseProps(t,
		"--position", "1920,0",
		"--resolution", "2560x1440",
		"--orientation", "Left",
		"--fixedoutput", "Center",
		"--frequency", "144",
	)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if props.Position == nil || *props.Position != (display.Position{X: 1920, Y: 0}) {
		t.Errorf("expected position 1920,0, got %v", props.Position)
	}
	if props.Resolution == nil || *props.Resolution != (display.Resolution{Width: 2560, Height: 1440}) {
		t.Errorf("expected resolution 2560x1440, got %v", props.Resolution)
	}
	if props.Orientation == nil || *props.Orientation != display.OrientationLeft {
		t.Errorf("expected orientation Left, got %v", props.Orientation)
	}
	if props.FixedOutput == nil || *props.FixedOutput != display.FixedOutputCenter {
		t.Errorf("expected fixedoutput Center, got %v", props.FixedOutput)
	}
	if props.Frequency == nil || *props.Frequency != 144 {
		t.Errorf("expected frequency 144, got %v", props.Frequency)
	}
}

func TestPropertyFlags_NoFlags(t *testing.T) {
	props, err := parseProps(t)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !props.Empty() {
		t.Errorf("expected empty property set, got %s", props)
	}
}

func TestPropertyFlags_DuplicateRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"position", []string{"--position", "0,0", "--position", "10,10"}},
		{"resolution", []string{"--resolution", "800x600", "--resolution", "1024x768"}},
		{"orientation", []string{"--orientation", "Left", "--orientation", "Right"}},
		{"fixedoutput", []string{"--fixedoutput", "Center", "--fixedoutput", "Stretch"}},
		{"frequency", []string{"--frequency", "60", "--frequency", "75"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseProps(t, tt.args...); err == nil {
				t.Fatalf("expected duplicate --%s to be rejected", tt.name)
			}
		})
	}
}

func TestPropertyFlags_MalformedValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"position", []string{"--position", "abc"}},
		{"resolution", []string{"--resolution", "1920"}},
		{"orientation", []string{"--orientation", "Diagonal"}},
		{"fixedoutput", []string{"--fixedoutput", "Zoom"}},
		{"frequency", []string{"--frequency", "fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseProps(t, tt.args...); err == nil {
				t.Fatalf("expected malformed --%s to be rejected", tt.name)
			}
		})
	}
}

func TestPropValue_DuplicateIsParseError(t *testing.T) {
	v := &propValue{name: "position", parse: func(string) error { return nil }}
	if err := v.Set("0,0"); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	err := v.Set("1,1")
	var perr *display.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestFail_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"parse error", &display.ParseError{Property: "position", Input: "abc", Reason: "not a number"}, 2},
		{"wrapped parse error", fmt.Errorf("properties: %w", &display.ParseError{Property: "frequency", Reason: "must be positive"}), 2},
		{"runtime error", errors.New("connection refused"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fail(tt.err); got != tt.want {
				t.Errorf("expected exit code %d, got %d", tt.want, got)
			}
		})
	}
}

// Usage errors are reported before any X connection is opened, so these
// paths are safe to drive without a display server.
func TestRunCommands_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func([]string) int
		args []string
		want int
	}{
		{"set-primary missing id", runSetPrimary, []string{}, 2},
		{"set-primary unexpected arg", runSetPrimary, []string{"--id", "0", "extra"}, 2},
		{"set-primary help", runSetPrimary, []string{"-h"}, 0},
		{"properties missing id", runProperties, []string{"--position", "0,0"}, 2},
		{"properties no properties", runProperties, []string{"--id", "0"}, 2},
		{"properties duplicate property", runProperties, []string{"--id", "0", "--orientation", "Left", "--orientation", "Right"}, 2},
		{"properties malformed resolution", runProperties, []string{"--id", "0", "--resolution", "huge"}, 2},
		{"primary no properties", runPrimary, []string{}, 2},
		{"primary unknown flag", runPrimary, []string{"--bogus"}, 2},
		{"info unknown flag", runInfo, []string{"--bogus"}, 2},
		{"info unexpected arg", runInfo, []string{"leftover"}, 2},
		{"mcp no subcommand", runMCP, []string{}, 2},
		{"mcp unknown subcommand", runMCP, []string{"bogus"}, 2},
		{"mcp help", runMCP, []string{"help"}, 0},
		{"tui help", runTUI, []string{"help"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(tt.args); got != tt.want {
				t.Errorf("expected exit code %d, got %d", tt.want, got)
			}
		})
	}
}
