package display

import "fmt"

// ShiftToOrigin re-bases the arrangement so the display with primaryID sits
// at (0,0). Every other active display moves by the negative of the new
// primary's current position, which keeps the relative geometry intact.
// Inactive displays keep their (empty) settings and cannot become primary.
// The input slice is not modified.
func ShiftToOrigin(displays []Display, primaryID int) ([]Display, error) {
	target, err := Find(displays, primaryID)
	if err != nil {
		return nil, err
	}
	if !target.Active {
		return nil, fmt.Errorf("display %d: %w", primaryID, ErrInactiveDisplay)
	}

	delta := target.Settings.Position
	out := make([]Display, len(displays))
	for i, d := range displays {
		if d.Active {
			d.Settings.Position.X -= delta.X
			d.Settings.Position.Y -= delta.Y
		}
		d.Primary = d.ID == primaryID
		out[i] = d
	}
	return out, nil
}
