package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/1broseidon/displayctl/display"
	"github.com/1broseidon/displayctl/x11"
)

func (m *model) startEditing(d display.Display) {
	s := d.Settings
	m.editID = d.ID
	m.fPosition = s.Position.String()
	m.fResolution = s.Resolution.String()
	m.fOrientation = s.Orientation.String()
	m.fFixedOutput = s.FixedOutput.String()
	m.fFrequency = strconv.Itoa(s.Frequency)

	orientOpts := []huh.Option[string]{
		huh.NewOption("Default", "Default"),
		huh.NewOption("UpsideDown", "UpsideDown"),
		huh.NewOption("Right", "Right"),
		huh.NewOption("Left", "Left"),
	}
	fixedOpts := []huh.Option[string]{
		huh.NewOption("Default", "Default"),
		huh.NewOption("Stretch", "Stretch"),
		huh.NewOption("Center", "Center"),
	}

	w := m.width - 4
	if w < 40 {
		w = 40
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("position").
				Title(fmt.Sprintf("Position of %s", d.Name)).
				Description("x,y relative to the primary display").
				Validate(validatePosition).
				Value(&m.fPosition),

			huh.NewInput().
				Key("resolution").
				Title("Resolution").
				Description(modesHint(d)).
				Validate(validateResolution).
				Value(&m.fResolution),

			huh.NewSelect[string]().
				Key("orientation").
				Title("Orientation").
				Options(orientOpts...).
				Value(&m.fOrientation),

			huh.NewSelect[string]().
				Key("fixedoutput").
				Title("Fixed Output").
				Description("Scaling when the picture does not fill the panel").
				Options(fixedOpts...).
				Value(&m.fFixedOutput),

			huh.NewInput().
				Key("frequency").
				Title("Frequency").
				Description("Refresh rate in Hz").
				Validate(validateFrequency).
				Value(&m.fFrequency),
		),
	).WithWidth(w).WithShowHelp(true).WithShowErrors(true)

	m.editing = true
}

// applyForm converts the form values into a property change and applies it.
// Only fields the user actually changed are sent, so an untouched resolution
// still follows an orientation change instead of pinning the old size.
func (m *model) applyForm() tea.Cmd {
	props, err := m.formProperties()
	if err != nil {
		m.statusText = err.Error()
		return nil
	}
	if props.Empty() {
		m.statusText = "nothing changed"
		return nil
	}

	id := m.editID
	return applyCmd(fmt.Sprintf("display %d updated", id), func(set *x11.Set) error {
		return set.SetProperties(id, props)
	})
}

// formProperties diffs the form values against the display's current
// settings and returns the changed fields.
func (m *model) formProperties() (display.PropertySet, error) {
	d, err := display.Find(m.displays, m.editID)
	if err != nil {
		return display.PropertySet{}, err
	}
	cur := d.Settings

	var props display.PropertySet

	pos, err := display.ParsePosition(m.fPosition)
	if err != nil {
		return display.PropertySet{}, err
	}
	if pos != cur.Position {
		props.Position = &pos
	}

	res, err := display.ParseResolution(m.fResolution)
	if err != nil {
		return display.PropertySet{}, err
	}
	if res != cur.Resolution {
		props.Resolution = &res
	}

	orient, err := display.ParseOrientation(m.fOrientation)
	if err != nil {
		return display.PropertySet{}, err
	}
	if orient != cur.Orientation {
		props.Orientation = &orient
	}

	fixed, err := display.ParseFixedOutput(m.fFixedOutput)
	if err != nil {
		return display.PropertySet{}, err
	}
	if fixed != cur.FixedOutput {
		props.FixedOutput = &fixed
	}

	hz, err := display.ParseFrequency(m.fFrequency)
	if err != nil {
		return display.PropertySet{}, err
	}
	if hz != cur.Frequency {
		props.Frequency = &hz
	}

	return props, nil
}

func validatePosition(s string) error {
	_, err := display.ParsePosition(s)
	return err
}

func validateResolution(s string) error {
	_, err := display.ParseResolution(s)
	return err
}

func validateFrequency(s string) error {
	_, err := display.ParseFrequency(s)
	return err
}

// modesHint lists a few of the display's mode sizes as examples.
func modesHint(d display.Display) string {
	seen := make(map[string]bool)
	var names []string
	for _, mode := range d.Modes {
		r := display.Resolution{Width: mode.Width, Height: mode.Height}
		if seen[r.String()] {
			continue
		}
		seen[r.String()] = true
		names = append(names, r.String())
		if len(names) == 4 {
			break
		}
	}
	if len(names) == 0 {
		return "WIDTHxHEIGHT"
	}
	return "WIDTHxHEIGHT, e.g. " + strings.Join(names, ", ")
}
