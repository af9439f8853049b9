package x11

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// entry pairs one reported display with the native state needed to change it.
type entry struct {
	disp         display.Display
	output       randr.Output
	crtc         randr.Crtc     // 0 when the output drives no crtc
	crtcOutputs  []randr.Output // outputs currently driven by that crtc
	fb           display.Position
	mode         randr.Mode
	modes        []modeInfo
	scaling      string         // current scaling mode value, "" when absent
	scalingValid []string       // values the output accepts, nil when absent

	staged     display.Settings
	hzExplicit bool
}

// Set is one enumeration of the displays plus the changes staged against it.
// Positions are reported relative to the primary display, which always reads
// as (0,0). A Set reflects the server state at enumeration time; re-query
// rather than reuse one across configuration changes.
type Set struct {
	conn    *Connection
	res     *randr.GetScreenResourcesReply
	screen  screenGeom
	entries []entry

	curPrimary      randr.Output // raw server value, 0 when unset
	stagedPrimaryID int
	primaryDirty    bool
}

// QueryDisplays enumerates all outputs of the root screen in server order.
// Every call re-queries the server.
func (c *Connection) QueryDisplays() (*Set, error) {
	conn := c.XUtil.Conn()

	res, err := randr.GetScreenResources(conn, c.Root).Reply()
	if err != nil {
		return nil, nativeErr("get screen resources", err)
	}
	primary, err := randr.GetOutputPrimary(conn, c.Root).Reply()
	if err != nil {
		return nil, nativeErr("get primary output", err)
	}
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return nil, nativeErr("get screen geometry", err)
	}

	if len(res.Outputs) == 0 {
		return nil, nativeErr("get screen resources", fmt.Errorf("no outputs reported"))
	}

	setup := c.XUtil.Screen()
	screen := screenGeom{
		width:    geom.Width,
		height:   geom.Height,
		mmWidth:  mmForPixels(geom.Width, setup.WidthInPixels, uint32(setup.WidthInMillimeters)),
		mmHeight: mmForPixels(geom.Height, setup.HeightInPixels, uint32(setup.HeightInMillimeters)),
	}

	modeTable := make(map[randr.Mode]randr.ModeInfo, len(res.Modes))
	for _, mi := range res.Modes {
		modeTable[randr.Mode(mi.Id)] = mi
	}

	set := &Set{
		conn:            c,
		res:             res,
		screen:          screen,
		curPrimary:      primary.Output,
		stagedPrimaryID: -1,
	}

	for i, output := range res.Outputs {
		oi, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, nativeErr(fmt.Sprintf("get output %d info", i), err)
		}

		e := entry{
			disp: display.Display{
				ID:        i,
				Name:      string(oi.Name),
				Connected: oi.Connection == randr.ConnectionConnected,
				MMWidth:   int(oi.MmWidth),
				MMHeight:  int(oi.MmHeight),
			},
			output: output,
			crtc:   oi.Crtc,
		}

		for j, m := range oi.Modes {
			mi, ok := modeTable[m]
			if !ok {
				continue
			}
			e.modes = append(e.modes, modeInfo{
				id:        m,
				width:     int(mi.Width),
				height:    int(mi.Height),
				hz:        modeRefresh(mi),
				preferred: j < int(oi.NumPreferred),
			})
		}

		e.scaling, e.scalingValid, err = c.outputScaling(output)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", e.disp.Name, err)
		}

		if oi.Crtc != 0 {
			ci, err := randr.GetCrtcInfo(conn, oi.Crtc, res.ConfigTimestamp).Reply()
			if err != nil {
				return nil, nativeErr(fmt.Sprintf("get crtc info for %s", e.disp.Name), err)
			}
			if ci.Mode != 0 {
				e.disp.Active = true
				e.fb = display.Position{X: int(ci.X), Y: int(ci.Y)}
				e.mode = ci.Mode
				e.crtcOutputs = ci.Outputs
				e.disp.Settings = display.Settings{
					Position:    e.fb,
					Resolution:  display.Resolution{Width: int(ci.Width), Height: int(ci.Height)},
					Orientation: orientationFor(ci.Rotation),
					FixedOutput: fixedOutputFromScaling(e.scaling),
					Frequency:   modeRefresh(modeTable[ci.Mode]),
				}
			}
		}

		set.entries = append(set.entries, e)
	}

	set.rebase()

	for i := range set.entries {
		e := &set.entries[i]
		e.disp.Modes = displayModes(e.modes, e.mode, e.disp.Active)
		e.staged = e.disp.Settings
	}

	active := 0
	for i := range set.entries {
		if set.entries[i].disp.Active {
			active++
		}
	}
	slog.Debug("enumerated displays",
		"outputs", len(set.entries), "active", active,
		"screen", fmt.Sprintf("%dx%d", screen.width, screen.height))

	return set, nil
}

// rebase converts framebuffer positions into primary-relative ones and marks
// the primary display. Without a server-side primary, the active display
// closest to the framebuffer origin stands in.
func (s *Set) rebase() {
	primaryIdx := -1
	for i := range s.entries {
		e := &s.entries[i]
		if e.disp.Active && e.output == s.curPrimary {
			primaryIdx = i
			break
		}
	}
	if primaryIdx < 0 {
		best := -1
		for i := range s.entries {
			e := &s.entries[i]
			if !e.disp.Active {
				continue
			}
			if best < 0 || absInt(e.fb.X)+absInt(e.fb.Y) < absInt(s.entries[best].fb.X)+absInt(s.entries[best].fb.Y) {
				best = i
			}
		}
		primaryIdx = best
	}
	if primaryIdx < 0 {
		return
	}

	origin := s.entries[primaryIdx].fb
	for i := range s.entries {
		e := &s.entries[i]
		if !e.disp.Active {
			continue
		}
		e.disp.Primary = i == primaryIdx
		e.disp.Settings.Position.X -= origin.X
		e.disp.Settings.Position.Y -= origin.Y
	}
	s.stagedPrimaryID = s.entries[primaryIdx].disp.ID
}

func displayModes(modes []modeInfo, current randr.Mode, active bool) []display.Mode {
	out := make([]display.Mode, 0, len(modes))
	for _, m := range modes {
		out = append(out, display.Mode{
			Width:     m.width,
			Height:    m.height,
			Frequency: m.hz,
			Preferred: m.preferred,
			Current:   active && m.id == current,
		})
	}
	return out
}

// Displays returns the enumerated display records.
func (s *Set) Displays() []display.Display {
	out := make([]display.Display, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].disp
	}
	return out
}

// Get returns the display with the given id.
func (s *Set) Get(id int) (display.Display, error) {
	return display.Find(s.Displays(), id)
}

// Primary returns the primary display.
func (s *Set) Primary() (display.Display, error) {
	return display.FindPrimary(s.Displays())
}

// SetProperties stages the supplied properties against one display. Nothing
// reaches the server until Apply.
func (s *Set) SetProperties(id int, props display.PropertySet) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	if !e.disp.Active {
		return fmt.Errorf("display %d: %w", id, display.ErrInactiveDisplay)
	}
	e.staged = props.Overlay(e.staged)
	if props.Frequency != nil {
		e.hzExplicit = true
	}
	return nil
}

// SetPrimary stages the given display as primary. All active displays shift
// so the new primary sits at the origin with relative geometry intact.
func (s *Set) SetPrimary(id int) error {
	shifted, err := display.ShiftToOrigin(s.stagedView(), id)
	if err != nil {
		return err
	}
	for i := range s.entries {
		s.entries[i].staged = shifted[i].Settings
	}
	s.stagedPrimaryID = id
	s.primaryDirty = true
	return nil
}

func (s *Set) entry(id int) (*entry, error) {
	for i := range s.entries {
		if s.entries[i].disp.ID == id {
			return &s.entries[i], nil
		}
	}
	return nil, fmt.Errorf("display %d: %w", id, display.ErrUnknownDisplay)
}

func (s *Set) stagedView() []display.Display {
	out := make([]display.Display, len(s.entries))
	for i := range s.entries {
		d := s.entries[i].disp
		d.Settings = s.entries[i].staged
		d.Primary = d.ID == s.stagedPrimaryID
		out[i] = d
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
