package x11

import (
	"strings"
	"testing"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb/randr"
)

var testScreen = screenGeom{width: 3840, height: 1080, mmWidth: 1016, mmHeight: 286}

// twoEntries builds a primary at the origin and a second display to its
// right, both 1920x1080@60. The first output exposes a scaling mode
// property, the second does not.
func twoEntries() []entry {
	a := entry{
		disp: display.Display{
			ID: 0, Name: "eDP-1", Connected: true, Active: true, Primary: true,
			Settings: display.Settings{
				Position:   display.Position{X: 0, Y: 0},
				Resolution: display.Resolution{Width: 1920, Height: 1080},
				Frequency:  60,
			},
		},
		output:       100,
		crtc:         200,
		crtcOutputs:  []randr.Output{100},
		fb:           display.Position{X: 0, Y: 0},
		mode:         11,
		modes:        testModes(),
		scaling:      scalingNone,
		scalingValid: []string{scalingNone, scalingFull, scalingCenter, scalingFullAspect},
	}
	a.staged = a.disp.Settings

	b := entry{
		disp: display.Display{
			ID: 1, Name: "HDMI-1", Connected: true, Active: true,
			Settings: display.Settings{
				Position:   display.Position{X: 1920, Y: 0},
				Resolution: display.Resolution{Width: 1920, Height: 1080},
				Frequency:  60,
			},
		},
		output:      101,
		crtc:        201,
		crtcOutputs: []randr.Output{101},
		fb:          display.Position{X: 1920, Y: 0},
		mode:        11,
		modes:       testModes(),
	}
	b.staged = b.disp.Settings

	return []entry{a, b}
}

func TestBuildPlan_NoChangesIsEmpty(t *testing.T) {
	plan, err := buildPlan(twoEntries(), testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.empty() {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestBuildPlan_MoveRightResizesScreen(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.Position = display.Position{X: 2000, Y: 0}

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.configs) != 1 || plan.configs[0].crtc != 201 {
		t.Fatalf("expected one config for crtc 201, got %+v", plan.configs)
	}
	if plan.configs[0].x != 2000 || plan.configs[0].y != 0 {
		t.Fatalf("expected crtc at 2000,0, got %d,%d", plan.configs[0].x, plan.configs[0].y)
	}
	if plan.resize == nil || plan.resize.width != 3920 || plan.resize.height != 1080 {
		t.Fatalf("expected 3920x1080 resize, got %+v", plan.resize)
	}
	// DPI preserved: 3920 * 1016mm / 3840px.
	if plan.resize.mmWidth != 1037 {
		t.Fatalf("expected 1037mm width, got %d", plan.resize.mmWidth)
	}
	if len(plan.disables) != 0 {
		t.Fatalf("growing screen needs no disables, got %+v", plan.disables)
	}
}

func TestBuildPlan_NegativePositionNormalizes(t *testing.T) {
	// The second display moves to the left of the primary. Crtc coordinates
	// cannot be negative, so the whole arrangement slides right instead.
	entries := twoEntries()
	entries[1].staged.Position = display.Position{X: -1920, Y: 0}

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.configs) != 2 {
		t.Fatalf("expected both crtcs to move, got %+v", plan.configs)
	}
	byCrtc := map[randr.Crtc][2]int16{}
	for _, cfg := range plan.configs {
		byCrtc[cfg.crtc] = [2]int16{cfg.x, cfg.y}
	}
	if byCrtc[201] != [2]int16{0, 0} {
		t.Fatalf("expected crtc 201 at 0,0, got %v", byCrtc[201])
	}
	if byCrtc[200] != [2]int16{1920, 0} {
		t.Fatalf("expected crtc 200 at 1920,0, got %v", byCrtc[200])
	}
	if plan.resize != nil {
		t.Fatalf("same bounding box should not resize, got %+v", plan.resize)
	}
}

func TestBuildPlan_ShrinkDisablesOutOfBoundsCrtc(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.Resolution = display.Resolution{Width: 800, Height: 600}

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.resize == nil || plan.resize.width != 2720 || plan.resize.height != 1080 {
		t.Fatalf("expected 2720x1080 resize, got %+v", plan.resize)
	}
	if len(plan.disables) != 1 || plan.disables[0].crtc != 201 {
		t.Fatalf("expected crtc 201 disabled before shrinking, got %+v", plan.disables)
	}
	if len(plan.configs) != 1 || plan.configs[0].mode != 30 {
		t.Fatalf("expected crtc 201 reconfigured to mode 30, got %+v", plan.configs)
	}
}

func TestBuildPlan_PrimaryChangeAloneTouchesNoCrtc(t *testing.T) {
	// After the shift the second display is the origin and the first sits at
	// -1920,0. Normalization puts both back on their current crtc positions,
	// so only the primary output changes.
	entries := twoEntries()
	entries[0].staged.Position = display.Position{X: -1920, Y: 0}
	entries[1].staged.Position = display.Position{X: 0, Y: 0}

	plan, err := buildPlan(entries, testScreen, 100, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.configs) != 0 || len(plan.disables) != 0 || plan.resize != nil {
		t.Fatalf("expected geometry untouched, got %+v", plan)
	}
	if !plan.setPrimary || plan.primary != 101 {
		t.Fatalf("expected primary output 101, got %+v", plan)
	}
}

func TestBuildPlan_PrimaryAlreadySet(t *testing.T) {
	plan, err := buildPlan(twoEntries(), testScreen, 100, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.setPrimary {
		t.Fatalf("primary unchanged, expected no primary step")
	}
}

func TestBuildPlan_RotationKeepsMode(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.Orientation = display.OrientationLeft
	entries[1].staged.Resolution = display.Resolution{Width: 1080, Height: 1920}

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.configs) != 1 {
		t.Fatalf("expected one config, got %+v", plan.configs)
	}
	cfg := plan.configs[0]
	if cfg.mode != 11 {
		t.Fatalf("rotation should keep the current mode, got %d", cfg.mode)
	}
	if cfg.rotation != randr.RotationRotate90 {
		t.Fatalf("expected rotate90, got %d", cfg.rotation)
	}
	if plan.resize == nil || plan.resize.width != 3000 || plan.resize.height != 1920 {
		t.Fatalf("expected 3000x1920 resize, got %+v", plan.resize)
	}
	if len(plan.disables) != 1 || plan.disables[0].crtc != 201 {
		t.Fatalf("expected crtc 201 disabled while shrinking width, got %+v", plan.disables)
	}
}

func TestBuildPlan_ExplicitFrequency(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.Frequency = 144
	entries[1].hzExplicit = true

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.configs) != 1 || plan.configs[0].mode != 10 {
		t.Fatalf("expected mode 10 for 144 Hz, got %+v", plan.configs)
	}

	entries = twoEntries()
	entries[1].staged.Frequency = 85
	entries[1].hzExplicit = true
	if _, err := buildPlan(entries, testScreen, 100, 0, false); err == nil {
		t.Fatalf("expected error for unadvertised rate")
	} else if !strings.Contains(err.Error(), "85 Hz") {
		t.Fatalf("error should name the rate, got %v", err)
	}
}

func TestBuildPlan_UnknownResolution(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.Resolution = display.Resolution{Width: 2560, Height: 1440}

	_, err := buildPlan(entries, testScreen, 100, 0, false)
	if err == nil {
		t.Fatalf("expected error for unadvertised size")
	}
	if !strings.Contains(err.Error(), "HDMI-1") || !strings.Contains(err.Error(), "2560x1440") {
		t.Fatalf("error should name display and size, got %v", err)
	}
}

func TestBuildPlan_ScalingSteps(t *testing.T) {
	entries := twoEntries()
	entries[0].staged.FixedOutput = display.FixedOutputStretch

	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.scaling) != 1 || plan.scaling[0].output != 100 || plan.scaling[0].value != scalingFull {
		t.Fatalf("expected Full write on output 100, got %+v", plan.scaling)
	}
	if len(plan.configs) != 0 {
		t.Fatalf("scaling change should not touch crtcs, got %+v", plan.configs)
	}

	// Back to Default prefers the aspect-preserving value.
	entries = twoEntries()
	entries[0].scaling = scalingFull
	entries[0].disp.Settings.FixedOutput = display.FixedOutputStretch
	entries[0].staged = entries[0].disp.Settings
	entries[0].staged.FixedOutput = display.FixedOutputDefault

	plan, err = buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.scaling) != 1 || plan.scaling[0].value != scalingFullAspect {
		t.Fatalf("expected Full aspect write, got %+v", plan.scaling)
	}
}

func TestBuildPlan_ScalingUnsupported(t *testing.T) {
	entries := twoEntries()
	entries[1].staged.FixedOutput = display.FixedOutputCenter

	_, err := buildPlan(entries, testScreen, 100, 0, false)
	if err == nil {
		t.Fatalf("expected error for output without the property")
	}
	if !strings.Contains(err.Error(), "scaling mode") {
		t.Fatalf("error should name the missing property, got %v", err)
	}
}

func TestBuildPlan_NoActiveDisplays(t *testing.T) {
	entries := twoEntries()
	for i := range entries {
		entries[i].disp.Active = false
	}
	plan, err := buildPlan(entries, testScreen, 100, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.empty() {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestMMForPixels(t *testing.T) {
	if got := mmForPixels(3840, 1920, 508); got != 1016 {
		t.Fatalf("expected 1016, got %d", got)
	}
	// 96 DPI fallback: 1920 px is 508mm.
	if got := mmForPixels(1920, 0, 0); got != 508 {
		t.Fatalf("expected 508, got %d", got)
	}
}
