package display

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a display origin on the virtual desktop. The primary display
// sits at (0,0) and other displays are placed relative to it, so coordinates
// may be negative.
type Position struct {
	X int
	Y int
}

// ParsePosition parses "x,y" with signed integer coordinates.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, &ParseError{Property: "position", Input: s, Reason: "want two comma-separated coordinates"}
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, &ParseError{Property: "position", Input: s, Reason: fmt.Sprintf("bad x coordinate %q", parts[0])}
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, &ParseError{Property: "position", Input: s, Reason: fmt.Sprintf("bad y coordinate %q", parts[1])}
	}
	return Position{X: x, Y: y}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Resolution is a display size in pixels as observed on the desktop.
type Resolution struct {
	Width  int
	Height int
}

// ParseResolution parses "<width>x<height>" with unsigned decimal dimensions.
func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return Resolution{}, &ParseError{Property: "resolution", Input: s, Reason: "want <width>x<height>"}
	}
	w, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Resolution{}, &ParseError{Property: "resolution", Input: s, Reason: fmt.Sprintf("bad width %q", parts[0])}
	}
	h, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Resolution{}, &ParseError{Property: "resolution", Input: s, Reason: fmt.Sprintf("bad height %q", parts[1])}
	}
	return Resolution{Width: int(w), Height: int(h)}, nil
}

// Oriented returns the resolution as observed under the given orientation.
// The 90° and 270° orientations swap width and height; applying the same
// orientation twice restores the original, so Oriented is its own inverse.
func (r Resolution) Oriented(o Orientation) Resolution {
	if o == OrientationRight || o == OrientationLeft {
		return Resolution{Width: r.Height, Height: r.Width}
	}
	return r
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Orientation is the rotation of a display's picture.
type Orientation int

const (
	// OrientationDefault is the unrotated landscape orientation
	OrientationDefault Orientation = iota
	// OrientationUpsideDown rotates the picture by 180°
	OrientationUpsideDown
	// OrientationRight rotates the picture by 270° (portrait)
	OrientationRight
	// OrientationLeft rotates the picture by 90° (portrait flipped)
	OrientationLeft
)

// ParseOrientation parses an orientation name, case-insensitively. The
// landscape/portrait synonyms are accepted alongside the canonical names.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "default", "landscape":
		return OrientationDefault, nil
	case "upsidedown", "landscapeflipped":
		return OrientationUpsideDown, nil
	case "right", "portrait":
		return OrientationRight, nil
	case "left", "portraitflipped":
		return OrientationLeft, nil
	default:
		return OrientationDefault, &ParseError{Property: "orientation", Input: s, Reason: "want Default, UpsideDown, Right or Left"}
	}
}

// String returns the canonical orientation name
func (o Orientation) String() string {
	switch o {
	case OrientationDefault:
		return "Default"
	case OrientationUpsideDown:
		return "UpsideDown"
	case OrientationRight:
		return "Right"
	case OrientationLeft:
		return "Left"
	default:
		return "unknown"
	}
}

// FixedOutput is the scaling policy a display applies when the picture does
// not fill the panel.
type FixedOutput int

const (
	// FixedOutputDefault leaves scaling to the driver's default policy
	FixedOutputDefault FixedOutput = iota
	// FixedOutputStretch stretches the picture to fill the panel
	FixedOutputStretch
	// FixedOutputCenter centers the picture without scaling
	FixedOutputCenter
)

// ParseFixedOutput parses a fixed-output mode name, case-insensitively.
func ParseFixedOutput(s string) (FixedOutput, error) {
	switch strings.ToLower(s) {
	case "default":
		return FixedOutputDefault, nil
	case "stretch":
		return FixedOutputStretch, nil
	case "center":
		return FixedOutputCenter, nil
	default:
		return FixedOutputDefault, &ParseError{Property: "fixedoutput", Input: s, Reason: "want Default, Stretch or Center"}
	}
}

// String returns the canonical fixed-output mode name
func (f FixedOutput) String() string {
	switch f {
	case FixedOutputDefault:
		return "Default"
	case FixedOutputStretch:
		return "Stretch"
	case FixedOutputCenter:
		return "Center"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a refresh rate in whole hertz.
func ParseFrequency(s string) (int, error) {
	hz, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, &ParseError{Property: "frequency", Input: s, Reason: "want a whole number of hertz"}
	}
	return int(hz), nil
}
