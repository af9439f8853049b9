package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/displayctl/display"
	"github.com/1broseidon/displayctl/x11"
)

// displayJSON is the JSON encoding of one display for info --json.
type displayJSON struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Connected bool          `json:"connected"`
	Active    bool          `json:"active"`
	Primary   bool          `json:"primary"`
	MMWidth   int           `json:"mm_width,omitempty"`
	MMHeight  int           `json:"mm_height,omitempty"`
	Settings  *settingsJSON `json:"settings,omitempty"`
	Modes     []modeJSON    `json:"modes,omitempty"`
}

// settingsJSON mirrors display.Settings with flat coordinates.
type settingsJSON struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
	FixedOutput string `json:"fixed_output"`
	Frequency   int    `json:"frequency"`
}

type modeJSON struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Frequency int  `json:"frequency"`
	Preferred bool `json:"preferred,omitempty"`
	Current   bool `json:"current,omitempty"`
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.Int("id", -1, "Show only the display with this id")
	jsonOut := fs.Bool("json", false, "Emit JSON instead of text")
	modes := fs.Bool("modes", false, "Include the advertised mode list")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: displayctl info [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show all displays with their id, name, connection state and settings.")
		fmt.Fprintln(os.Stderr, "Positions are relative to the primary display.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	conn, err := x11.NewConnection()
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	set, err := conn.QueryDisplays()
	if err != nil {
		return fail(err)
	}

	displays := set.Displays()
	if *id >= 0 {
		d, err := set.Get(*id)
		if err != nil {
			return fail(err)
		}
		displays = []display.Display{d}
	}

	if *jsonOut {
		if err := writeDisplaysJSON(os.Stdout, displays, *modes); err != nil {
			return fail(err)
		}
		return 0
	}
	for _, d := range displays {
		printDisplay(os.Stdout, d, *modes)
	}
	return 0
}

func printDisplay(w io.Writer, d display.Display, modes bool) {
	tag := ""
	if d.Primary {
		tag = " (primary)"
	}
	fmt.Fprintf(w, "display %d: %s%s\n", d.ID, d.Name, tag)
	fmt.Fprintf(w, "  status:      %s\n", displayStatus(d))
	if d.Active {
		s := d.Settings
		fmt.Fprintf(w, "  position:    %s\n", s.Position)
		fmt.Fprintf(w, "  resolution:  %s\n", s.Resolution)
		fmt.Fprintf(w, "  frequency:   %d Hz\n", s.Frequency)
		fmt.Fprintf(w, "  orientation: %s\n", s.Orientation)
		fmt.Fprintf(w, "  fixedoutput: %s\n", s.FixedOutput)
	}
	if d.MMWidth > 0 && d.MMHeight > 0 {
		fmt.Fprintf(w, "  size:        %dx%d mm\n", d.MMWidth, d.MMHeight)
	}
	if modes && len(d.Modes) > 0 {
		fmt.Fprintln(w, "  modes:")
		for _, m := range d.Modes {
			marks := ""
			if m.Current {
				marks += "*"
			}
			if m.Preferred {
				marks += "+"
			}
			if marks != "" {
				marks = " " + marks
			}
			fmt.Fprintf(w, "    %s%s\n", m, marks)
		}
	}
}

func displayStatus(d display.Display) string {
	switch {
	case d.Active:
		return "active"
	case d.Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

func writeDisplaysJSON(w io.Writer, displays []display.Display, modes bool) error {
	out := make([]displayJSON, 0, len(displays))
	for _, d := range displays {
		dj := displayJSON{
			ID:        d.ID,
			Name:      d.Name,
			Connected: d.Connected,
			Active:    d.Active,
			Primary:   d.Primary,
			MMWidth:   d.MMWidth,
			MMHeight:  d.MMHeight,
		}
		if d.Active {
			s := d.Settings
			dj.Settings = &settingsJSON{
				X:           s.Position.X,
				Y:           s.Position.Y,
				Width:       s.Resolution.Width,
				Height:      s.Resolution.Height,
				Orientation: s.Orientation.String(),
				FixedOutput: s.FixedOutput.String(),
				Frequency:   s.Frequency,
			}
		}
		if modes {
			for _, m := range d.Modes {
				dj.Modes = append(dj.Modes, modeJSON{
					Width:     m.Width,
					Height:    m.Height,
					Frequency: m.Frequency,
					Preferred: m.Preferred,
					Current:   m.Current,
				})
			}
		}
		out = append(out, dj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
