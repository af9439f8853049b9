package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/displayctl/display"
	"github.com/1broseidon/displayctl/x11"
)

// withDisplays opens a fresh X connection, queries the current displays and
// hands the set to fn. Every tool call sees live state; nothing is cached
// between calls.
func withDisplays(fn func(*x11.Set) error) error {
	conn, err := x11.NewConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	set, err := conn.QueryDisplays()
	if err != nil {
		return err
	}
	return fn(set)
}

// targetDisplay resolves the optional id argument, defaulting to the primary.
func targetDisplay(set *x11.Set, id *int) (display.Display, error) {
	if id == nil {
		return set.Primary()
	}
	return set.Get(*id)
}

func (s *Server) handleListDisplays(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDisplaysInput) (*mcpsdk.CallToolResult, ListDisplaysOutput, error) {
	var out ListDisplaysOutput
	err := withDisplays(func(set *x11.Set) error {
		displays := set.Displays()
		out.Displays = make([]DisplayInfo, 0, len(displays))
		for _, d := range displays {
			out.Displays = append(out.Displays, displayInfo(d))
		}
		return nil
	})
	if err != nil {
		return nil, ListDisplaysOutput{}, err
	}
	return nil, out, nil
}

func displayInfo(d display.Display) DisplayInfo {
	info := DisplayInfo{
		ID:        d.ID,
		Name:      d.Name,
		Connected: d.Connected,
		Active:    d.Active,
		Primary:   d.Primary,
	}
	if d.Active {
		s := d.Settings
		info.X = s.Position.X
		info.Y = s.Position.Y
		info.Width = s.Resolution.Width
		info.Height = s.Resolution.Height
		info.Frequency = s.Frequency
		info.Orientation = s.Orientation.String()
		info.FixedOutput = s.FixedOutput.String()
	}
	return info
}

func (s *Server) handleListModes(_ context.Context, _ *mcpsdk.CallToolRequest, args ListModesInput) (*mcpsdk.CallToolResult, ListModesOutput, error) {
	var out ListModesOutput
	err := withDisplays(func(set *x11.Set) error {
		d, err := set.Get(args.ID)
		if err != nil {
			return err
		}
		out.ID = d.ID
		out.Name = d.Name
		out.Modes = make([]ModeInfo, 0, len(d.Modes))
		for _, m := range d.Modes {
			out.Modes = append(out.Modes, ModeInfo{
				Width:     m.Width,
				Height:    m.Height,
				Frequency: m.Frequency,
				Preferred: m.Preferred,
				Current:   m.Current,
			})
		}
		return nil
	})
	if err != nil {
		return nil, ListModesOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleSetPrimary(_ context.Context, _ *mcpsdk.CallToolRequest, args SetPrimaryInput) (*mcpsdk.CallToolResult, SetPrimaryOutput, error) {
	var out SetPrimaryOutput
	err := withDisplays(func(set *x11.Set) error {
		if err := set.SetPrimary(args.ID); err != nil {
			return err
		}
		if err := set.Apply(); err != nil {
			return err
		}
		d, err := set.Get(args.ID)
		if err != nil {
			return err
		}
		out = SetPrimaryOutput{ID: d.ID, Name: d.Name}
		return nil
	})
	if err != nil {
		return nil, SetPrimaryOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleSetProperties(_ context.Context, _ *mcpsdk.CallToolRequest, args SetPropertiesInput) (*mcpsdk.CallToolResult, SetPropertiesOutput, error) {
	props, err := parseProperties(args)
	if err != nil {
		return nil, SetPropertiesOutput{}, err
	}

	var out SetPropertiesOutput
	err = withDisplays(func(set *x11.Set) error {
		target, err := targetDisplay(set, args.ID)
		if err != nil {
			return err
		}
		if err := set.SetProperties(target.ID, props); err != nil {
			return err
		}
		if err := set.Apply(); err != nil {
			return err
		}
		out = SetPropertiesOutput{ID: target.ID, Name: target.Name, Applied: props.String()}
		return nil
	})
	if err != nil {
		return nil, SetPropertiesOutput{}, err
	}
	return nil, out, nil
}

// parseProperties converts the string-typed tool arguments into a
// PropertySet using the same parsers as the CLI flags.
func parseProperties(args SetPropertiesInput) (display.PropertySet, error) {
	var props display.PropertySet
	if args.Position != nil {
		v, err := display.ParsePosition(*args.Position)
		if err != nil {
			return display.PropertySet{}, err
		}
		props.Position = &v
	}
	if args.Resolution != nil {
		v, err := display.ParseResolution(*args.Resolution)
		if err != nil {
			return display.PropertySet{}, err
		}
		props.Resolution = &v
	}
	if args.Orientation != nil {
		v, err := display.ParseOrientation(*args.Orientation)
		if err != nil {
			return display.PropertySet{}, err
		}
		props.Orientation = &v
	}
	if args.FixedOutput != nil {
		v, err := display.ParseFixedOutput(*args.FixedOutput)
		if err != nil {
			return display.PropertySet{}, err
		}
		props.FixedOutput = &v
	}
	if args.Frequency != nil {
		props.Frequency = args.Frequency
	}
	return props, nil
}
