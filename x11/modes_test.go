package x11

import (
	"testing"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb/randr"
)

func TestModeRefresh(t *testing.T) {
	tests := []struct {
		name string
		mi   randr.ModeInfo
		want int
	}{
		{
			name: "1080p60",
			mi:   randr.ModeInfo{DotClock: 148500000, Htotal: 2200, Vtotal: 1125},
			want: 60,
		},
		{
			name: "1080p144",
			mi:   randr.ModeInfo{DotClock: 325080000, Htotal: 2000, Vtotal: 1129},
			want: 144,
		},
		{
			name: "doublescan halves the sweep",
			mi:   randr.ModeInfo{DotClock: 40000000, Htotal: 1056, Vtotal: 628, ModeFlags: randr.ModeFlagDoubleScan},
			want: 30,
		},
		{
			name: "interlace doubles the rate",
			mi:   randr.ModeInfo{DotClock: 74250000, Htotal: 2200, Vtotal: 1125, ModeFlags: randr.ModeFlagInterlace},
			want: 60,
		},
		{
			name: "zero totals",
			mi:   randr.ModeInfo{DotClock: 148500000},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeRefresh(tt.mi); got != tt.want {
				t.Fatalf("modeRefresh = %d, want %d", got, tt.want)
			}
		})
	}
}

func testModes() []modeInfo {
	return []modeInfo{
		{id: 10, width: 1920, height: 1080, hz: 144, preferred: true},
		{id: 11, width: 1920, height: 1080, hz: 60},
		{id: 12, width: 1920, height: 1080, hz: 50},
		{id: 20, width: 1280, height: 720, hz: 60},
		{id: 21, width: 1280, height: 720, hz: 50},
		{id: 30, width: 800, height: 600, hz: 75},
	}
}

func TestPickMode_ExplicitRate(t *testing.T) {
	id, err := pickMode(testModes(), display.Resolution{Width: 1920, Height: 1080}, 60, true, 144)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected mode 11, got %d", id)
	}

	if _, err := pickMode(testModes(), display.Resolution{Width: 1920, Height: 1080}, 75, true, 144); err == nil {
		t.Fatalf("expected error for unadvertised rate")
	}
}

func TestPickMode_KeepsCurrentRate(t *testing.T) {
	// Size change with no explicit rate sticks to the current 60 Hz.
	id, err := pickMode(testModes(), display.Resolution{Width: 1280, Height: 720}, 60, false, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 20 {
		t.Fatalf("expected mode 20, got %d", id)
	}
}

func TestPickMode_FallsBackToPreferredThenFastest(t *testing.T) {
	// Current rate unavailable at the new size, preferred mode matches.
	id, err := pickMode(testModes(), display.Resolution{Width: 1920, Height: 1080}, 0, false, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 10 {
		t.Fatalf("expected preferred mode 10, got %d", id)
	}

	// No preferred candidate either, highest rate wins.
	id, err = pickMode(testModes(), display.Resolution{Width: 1280, Height: 720}, 0, false, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 20 {
		t.Fatalf("expected fastest mode 20, got %d", id)
	}
}

func TestPickMode_UnknownSize(t *testing.T) {
	if _, err := pickMode(testModes(), display.Resolution{Width: 2560, Height: 1440}, 0, false, 60); err == nil {
		t.Fatalf("expected error for unadvertised size")
	}
}

func TestRotationMapping(t *testing.T) {
	tests := []struct {
		o display.Orientation
		r uint16
	}{
		{display.OrientationDefault, randr.RotationRotate0},
		{display.OrientationLeft, randr.RotationRotate90},
		{display.OrientationUpsideDown, randr.RotationRotate180},
		{display.OrientationRight, randr.RotationRotate270},
	}

	for _, tt := range tests {
		if got := rotationFor(tt.o); got != tt.r {
			t.Fatalf("rotationFor(%v) = %d, want %d", tt.o, got, tt.r)
		}
		if got := orientationFor(tt.r); got != tt.o {
			t.Fatalf("orientationFor(%d) = %v, want %v", tt.r, got, tt.o)
		}
	}

	// Reflection bits do not disturb the mapping.
	if got := orientationFor(randr.RotationRotate90 | randr.RotationReflectX); got != display.OrientationLeft {
		t.Fatalf("reflected rotation mapped to %v", got)
	}
}
