package display

import (
	"strconv"
	"strings"
)

// PropertySet carries the property changes of one invocation. Each field is
// supplied at most once; nil fields leave the display's current value
// untouched.
type PropertySet struct {
	Position    *Position
	Resolution  *Resolution
	Orientation *Orientation
	FixedOutput *FixedOutput
	Frequency   *int
}

// Empty reports whether no property was supplied.
func (p PropertySet) Empty() bool {
	return p.Position == nil && p.Resolution == nil && p.Orientation == nil &&
		p.FixedOutput == nil && p.Frequency == nil
}

// Overlay applies the supplied fields onto s and returns the result. When the
// orientation changes without an explicit resolution, the display keeps its
// mode and the observed resolution follows the rotation.
func (p PropertySet) Overlay(s Settings) Settings {
	out := s
	if p.Orientation != nil {
		out.Resolution = s.Resolution.Oriented(s.Orientation).Oriented(*p.Orientation)
		out.Orientation = *p.Orientation
	}
	if p.Position != nil {
		out.Position = *p.Position
	}
	if p.Resolution != nil {
		out.Resolution = *p.Resolution
	}
	if p.FixedOutput != nil {
		out.FixedOutput = *p.FixedOutput
	}
	if p.Frequency != nil {
		out.Frequency = *p.Frequency
	}
	return out
}

func (p PropertySet) String() string {
	var parts []string
	if p.Position != nil {
		parts = append(parts, "position "+p.Position.String())
	}
	if p.Resolution != nil {
		parts = append(parts, "resolution "+p.Resolution.String())
	}
	if p.Orientation != nil {
		parts = append(parts, "orientation "+p.Orientation.String())
	}
	if p.FixedOutput != nil {
		parts = append(parts, "fixedoutput "+p.FixedOutput.String())
	}
	if p.Frequency != nil {
		parts = append(parts, "frequency "+strconv.Itoa(*p.Frequency))
	}
	if len(parts) == 0 {
		return "no properties"
	}
	return strings.Join(parts, ", ")
}
