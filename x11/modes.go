package x11

import (
	"fmt"
	"math"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb/randr"
)

// modeInfo is one advertised mode of an output. Width and height are the
// mode's own dimensions, before any rotation.
type modeInfo struct {
	id        randr.Mode
	width     int
	height    int
	hz        int
	preferred bool
}

// modeRefresh computes a mode's refresh rate in whole hertz. Double-scan
// modes sweep every line twice and interlaced modes deliver half frames, so
// the effective vertical total is adjusted before dividing.
func modeRefresh(mi randr.ModeInfo) int {
	vtotal := float64(mi.Vtotal)
	if mi.ModeFlags&randr.ModeFlagDoubleScan != 0 {
		vtotal *= 2
	}
	if mi.ModeFlags&randr.ModeFlagInterlace != 0 {
		vtotal /= 2
	}
	if mi.Htotal == 0 || vtotal == 0 {
		return 0
	}
	return int(math.Round(float64(mi.DotClock) / (float64(mi.Htotal) * vtotal)))
}

// pickMode selects a mode for the wanted size from an output's advertised
// list. want is the mode size before rotation. When hzExplicit is set the
// rate must match exactly; otherwise the current rate is kept when the new
// size offers it, then the output's preferred mode, then the highest rate.
func pickMode(modes []modeInfo, want display.Resolution, hz int, hzExplicit bool, curHz int) (randr.Mode, error) {
	var candidates []modeInfo
	for _, m := range modes {
		if m.width == want.Width && m.height == want.Height {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no %dx%d mode advertised", want.Width, want.Height)
	}

	if hzExplicit {
		for _, m := range candidates {
			if m.hz == hz {
				return m.id, nil
			}
		}
		return 0, fmt.Errorf("no %dx%d mode at %d Hz advertised", want.Width, want.Height, hz)
	}

	for _, m := range candidates {
		if m.hz == curHz {
			return m.id, nil
		}
	}
	for _, m := range candidates {
		if m.preferred {
			return m.id, nil
		}
	}
	best := candidates[0]
	for _, m := range candidates[1:] {
		if m.hz > best.hz {
			best = m
		}
	}
	return best.id, nil
}

// rotationFor maps an orientation onto the RandR rotation bit.
func rotationFor(o display.Orientation) uint16 {
	switch o {
	case display.OrientationLeft:
		return randr.RotationRotate90
	case display.OrientationUpsideDown:
		return randr.RotationRotate180
	case display.OrientationRight:
		return randr.RotationRotate270
	default:
		return randr.RotationRotate0
	}
}

// orientationFor maps a RandR rotation onto an orientation. Reflection bits
// are ignored.
func orientationFor(rotation uint16) display.Orientation {
	switch rotation & (randr.RotationRotate0 | randr.RotationRotate90 | randr.RotationRotate180 | randr.RotationRotate270) {
	case randr.RotationRotate90:
		return display.OrientationLeft
	case randr.RotationRotate180:
		return display.OrientationUpsideDown
	case randr.RotationRotate270:
		return display.OrientationRight
	default:
		return display.OrientationDefault
	}
}
