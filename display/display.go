package display

import "fmt"

// Settings is the live configuration of one active display. Resolution is
// the size observed on the desktop, after orientation is applied.
type Settings struct {
	Position    Position
	Resolution  Resolution
	Orientation Orientation
	FixedOutput FixedOutput
	Frequency   int // Hz
}

func (s Settings) String() string {
	return fmt.Sprintf("%s at %s, %d Hz, %s, %s",
		s.Resolution, s.Position, s.Frequency, s.Orientation, s.FixedOutput)
}

// Mode is one advertised mode of a display.
type Mode struct {
	Width     int
	Height    int
	Frequency int // Hz, rounded
	Preferred bool
	Current   bool
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%d", m.Width, m.Height, m.Frequency)
}

// Display is one entry of the OS display enumeration. ID is the position in
// enumeration order and is stable only within a single enumeration. Settings
// is meaningful only when Active is true.
type Display struct {
	ID        int
	Name      string
	Connected bool
	Active    bool
	Primary   bool
	MMWidth   int // physical width, millimeters
	MMHeight  int
	Settings  Settings
	Modes     []Mode
}

// Find returns the display with the given id.
func Find(displays []Display, id int) (Display, error) {
	for _, d := range displays {
		if d.ID == id {
			return d, nil
		}
	}
	return Display{}, fmt.Errorf("display %d: %w", id, ErrUnknownDisplay)
}

// FindPrimary returns the primary display.
func FindPrimary(displays []Display) (Display, error) {
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return Display{}, ErrNoPrimary
}
