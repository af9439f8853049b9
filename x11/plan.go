package x11

import (
	"fmt"
	"math"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb/randr"
)

// screenGeom is the root framebuffer size in pixels and millimeters.
type screenGeom struct {
	width, height     uint16
	mmWidth, mmHeight uint32
}

// crtcStep is one SetCrtcConfig request.
type crtcStep struct {
	name     string
	crtc     randr.Crtc
	x, y     int16
	mode     randr.Mode
	rotation uint16
	outputs  []randr.Output
}

// scalingStep is one scaling mode property write.
type scalingStep struct {
	name   string
	output randr.Output
	value  string
}

// changePlan is everything Apply will send, in sending order. An empty plan
// means the staged state equals the server state and nothing is written.
type changePlan struct {
	resize     *screenGeom
	disables   []crtcStep
	configs    []crtcStep
	scaling    []scalingStep
	primary    randr.Output
	setPrimary bool
}

func (p changePlan) empty() bool {
	return p.resize == nil && len(p.configs) == 0 && len(p.scaling) == 0 && !p.setPrimary
}

// buildPlan diffs the staged state against the enumerated state. Staged
// positions are primary-relative; the plan normalizes the active arrangement
// so its minimum corner lands on the framebuffer origin, since crtc
// coordinates cannot be negative. Relative geometry is unchanged by that
// translation.
func buildPlan(entries []entry, screen screenGeom, curPrimary randr.Output, stagedPrimaryID int, primaryDirty bool) (changePlan, error) {
	var plan changePlan

	type placement struct {
		e       *entry
		fb      display.Position
		mode    randr.Mode
		size    display.Resolution
		changed bool
	}
	var active []placement

	minX, minY := math.MaxInt, math.MaxInt
	for i := range entries {
		e := &entries[i]
		if !e.disp.Active {
			continue
		}
		if e.staged.Position.X < minX {
			minX = e.staged.Position.X
		}
		if e.staged.Position.Y < minY {
			minY = e.staged.Position.Y
		}
		active = append(active, placement{e: e})
	}

	maxX, maxY := 0, 0
	for i := range active {
		p := &active[i]
		e := p.e
		cur := e.disp.Settings
		st := e.staged

		p.fb = display.Position{X: st.Position.X - minX, Y: st.Position.Y - minY}
		p.size = st.Resolution

		wantMode := st.Resolution.Oriented(st.Orientation)
		curMode := cur.Resolution.Oriented(cur.Orientation)
		if wantMode == curMode && st.Frequency == cur.Frequency {
			p.mode = e.mode
		} else {
			id, err := pickMode(e.modes, wantMode, st.Frequency, e.hzExplicit, cur.Frequency)
			if err != nil {
				return changePlan{}, fmt.Errorf("display %d (%s): %w", e.disp.ID, e.disp.Name, err)
			}
			p.mode = id
		}

		if p.fb.X < 0 || p.fb.Y < 0 || p.fb.X > math.MaxInt16 || p.fb.Y > math.MaxInt16 {
			return changePlan{}, fmt.Errorf("display %d (%s): position %s out of range", e.disp.ID, e.disp.Name, st.Position)
		}
		if right := p.fb.X + p.size.Width; right > maxX {
			maxX = right
		}
		if bottom := p.fb.Y + p.size.Height; bottom > maxY {
			maxY = bottom
		}

		p.changed = p.fb != e.fb || p.mode != e.mode || st.Orientation != cur.Orientation
	}

	if len(active) == 0 {
		return plan, nil
	}
	if maxX > math.MaxUint16 || maxY > math.MaxUint16 {
		return changePlan{}, fmt.Errorf("arrangement %dx%d exceeds the maximum screen size", maxX, maxY)
	}

	newW, newH := uint16(maxX), uint16(maxY)
	if newW != screen.width || newH != screen.height {
		plan.resize = &screenGeom{
			width:    newW,
			height:   newH,
			mmWidth:  mmForPixels(newW, screen.width, screen.mmWidth),
			mmHeight: mmForPixels(newH, screen.height, screen.mmHeight),
		}
	}

	for _, p := range active {
		e := p.e
		if !p.changed {
			continue
		}
		step := crtcStep{
			name:     e.disp.Name,
			crtc:     e.crtc,
			x:        int16(p.fb.X),
			y:        int16(p.fb.Y),
			mode:     p.mode,
			rotation: rotationFor(e.staged.Orientation),
			outputs:  e.crtcOutputs,
		}
		// A crtc still at its old place can stick out of a shrinking
		// framebuffer; it must be off while the screen is resized.
		cur := e.disp.Settings
		if plan.resize != nil &&
			(e.fb.X+cur.Resolution.Width > int(newW) || e.fb.Y+cur.Resolution.Height > int(newH)) {
			plan.disables = append(plan.disables, crtcStep{
				name:     e.disp.Name,
				crtc:     e.crtc,
				rotation: randr.RotationRotate0,
			})
		}
		plan.configs = append(plan.configs, step)
	}

	for _, p := range active {
		e := p.e
		curFixed := fixedOutputFromScaling(e.scaling)
		if e.staged.FixedOutput == curFixed {
			continue
		}
		if e.scaling == "" && e.scalingValid == nil {
			return changePlan{}, fmt.Errorf("display %d (%s): output has no scaling mode property, cannot set fixed-output %s",
				e.disp.ID, e.disp.Name, e.staged.FixedOutput)
		}
		value := scalingForFixedOutput(e.staged.FixedOutput, e.scalingValid)
		if value == e.scaling {
			continue
		}
		plan.scaling = append(plan.scaling, scalingStep{
			name:   e.disp.Name,
			output: e.output,
			value:  value,
		})
	}

	if primaryDirty {
		for i := range entries {
			e := &entries[i]
			if e.disp.ID == stagedPrimaryID && e.output != curPrimary {
				plan.primary = e.output
				plan.setPrimary = true
			}
		}
	}

	return plan, nil
}

// mmForPixels scales a physical size to a new pixel size, keeping the
// current DPI. Without a usable reference it assumes 96 DPI.
func mmForPixels(px, refPx uint16, refMM uint32) uint32 {
	if refPx == 0 || refMM == 0 {
		return uint32(math.Round(float64(px) * 25.4 / 96.0))
	}
	return uint32(math.Round(float64(px) * float64(refMM) / float64(refPx)))
}
