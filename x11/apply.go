package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Apply sends the staged changes to the server as one grabbed sequence.
// Nothing is sent when the staged state matches the enumerated state. After
// a successful Apply the Set is stale; enumerate again for fresh state.
func (s *Set) Apply() error {
	plan, err := buildPlan(s.entries, s.screen, s.curPrimary, s.stagedPrimaryID, s.primaryDirty)
	if err != nil {
		return err
	}
	if plan.empty() {
		slog.Debug("no display changes staged")
		return nil
	}

	conn := s.conn.XUtil.Conn()
	if err := xproto.GrabServerChecked(conn).Check(); err != nil {
		return nativeErr("grab server", err)
	}
	defer func() {
		xproto.UngrabServer(conn)
		conn.Sync()
	}()

	for _, step := range plan.disables {
		slog.Debug("disabling crtc", "display", step.name)
		if err := s.setCrtc("disable crtc", step); err != nil {
			return err
		}
	}

	if plan.resize != nil {
		slog.Debug("resizing screen",
			"px", fmt.Sprintf("%dx%d", plan.resize.width, plan.resize.height),
			"mm", fmt.Sprintf("%dx%d", plan.resize.mmWidth, plan.resize.mmHeight))
		err := randr.SetScreenSizeChecked(conn, s.conn.Root,
			plan.resize.width, plan.resize.height,
			plan.resize.mmWidth, plan.resize.mmHeight).Check()
		if err != nil {
			return nativeErr("set screen size", err)
		}
	}

	for _, step := range plan.scaling {
		slog.Debug("setting scaling mode", "display", step.name, "value", step.value)
		if err := s.conn.setOutputScaling(step.output, step.value); err != nil {
			return fmt.Errorf("display %s: %w", step.name, err)
		}
	}

	for _, step := range plan.configs {
		slog.Debug("configuring crtc",
			"display", step.name,
			"pos", fmt.Sprintf("%d,%d", step.x, step.y),
			"mode", step.mode,
			"rotation", step.rotation)
		if err := s.setCrtc("set crtc config", step); err != nil {
			return err
		}
	}

	if plan.setPrimary {
		slog.Debug("setting primary output", "output", plan.primary)
		if err := randr.SetOutputPrimaryChecked(conn, s.conn.Root, plan.primary).Check(); err != nil {
			return nativeErr("set primary output", err)
		}
	}

	slog.Info("display changes applied",
		"crtcs", len(plan.configs),
		"resized", plan.resize != nil,
		"primary", plan.setPrimary)
	return nil
}

func (s *Set) setCrtc(op string, step crtcStep) error {
	reply, err := randr.SetCrtcConfig(s.conn.XUtil.Conn(), step.crtc,
		xproto.TimeCurrentTime, s.res.ConfigTimestamp,
		step.x, step.y, step.mode, step.rotation, step.outputs).Reply()
	if err != nil {
		return nativeErr(fmt.Sprintf("%s (%s)", op, step.name), err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return statusErr(fmt.Sprintf("%s (%s)", op, step.name), reply.Status)
	}
	return nil
}
