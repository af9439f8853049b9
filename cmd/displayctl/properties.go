package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/displayctl/display"
	"github.com/1broseidon/displayctl/x11"
)

// propValue adapts one property parser to flag.Value and rejects a second
// occurrence of the same flag, which the property grammar forbids.
type propValue struct {
	name  string
	parse func(string) error
	seen  bool
}

func (v *propValue) String() string { return "" }

func (v *propValue) Set(s string) error {
	if v.seen {
		return &display.ParseError{Property: v.name, Reason: "supplied more than once"}
	}
	if err := v.parse(s); err != nil {
		return err
	}
	v.seen = true
	return nil
}

// propertyFlags collects the property flags shared by the primary and
// properties commands into a PropertySet.
type propertyFlags struct {
	props display.PropertySet
}

func (p *propertyFlags) register(fs *flag.FlagSet) {
	fs.Var(&propValue{name: "position", parse: func(s string) error {
		v, err := display.ParsePosition(s)
		if err != nil {
			return err
		}
		p.props.Position = &v
		return nil
	}}, "position", "Position as x,y relative to the primary display")

	fs.Var(&propValue{name: "resolution", parse: func(s string) error {
		v, err := display.ParseResolution(s)
		if err != nil {
			return err
		}
		p.props.Resolution = &v
		return nil
	}}, "resolution", "Resolution as WIDTHxHEIGHT")

	fs.Var(&propValue{name: "orientation", parse: func(s string) error {
		v, err := display.ParseOrientation(s)
		if err != nil {
			return err
		}
		p.props.Orientation = &v
		return nil
	}}, "orientation", "Orientation: Default, UpsideDown, Right or Left")

	fs.Var(&propValue{name: "fixedoutput", parse: func(s string) error {
		v, err := display.ParseFixedOutput(s)
		if err != nil {
			return err
		}
		p.props.FixedOutput = &v
		return nil
	}}, "fixedoutput", "Scaling mode: Default, Stretch or Center")

	fs.Var(&propValue{name: "frequency", parse: func(s string) error {
		v, err := display.ParseFrequency(s)
		if err != nil {
			return err
		}
		p.props.Frequency = &v
		return nil
	}}, "frequency", "Refresh rate in Hz")
}

// fail prints err and maps it onto the exit code contract: 2 for parse
// errors, 1 for native and runtime failures.
func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	var perr *display.ParseError
	if errors.As(err, &perr) {
		return 2
	}
	return 1
}

// changeDisplays runs one staged change against the live display set.
func changeDisplays(fn func(*x11.Set) error) int {
	conn, err := x11.NewConnection()
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	set, err := conn.QueryDisplays()
	if err != nil {
		return fail(err)
	}
	if err := fn(set); err != nil {
		return fail(err)
	}
	if err := set.Apply(); err != nil {
		return fail(err)
	}
	return 0
}

func runSetPrimary(args []string) int {
	fs := flag.NewFlagSet("set-primary", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.Int("id", -1, "Display id to make primary")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: displayctl set-primary --id <id>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Make a display the primary display. It becomes the origin and every")
		fmt.Fprintln(os.Stderr, "other display keeps its position relative to it.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if *id < 0 {
		fmt.Fprintln(os.Stderr, "set-primary requires --id")
		fs.Usage()
		return 2
	}
	return changeDisplays(func(set *x11.Set) error {
		return set.SetPrimary(*id)
	})
}

func runPrimary(args []string) int {
	fs := flag.NewFlagSet("primary", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var pf propertyFlags
	pf.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: displayctl primary [property flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Change properties of the current primary display. Properties that are")
		fmt.Fprintln(os.Stderr, "not given keep their current value.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if pf.props.Empty() {
		fmt.Fprintln(os.Stderr, "primary requires at least one property flag")
		fs.Usage()
		return 2
	}
	return changeDisplays(func(set *x11.Set) error {
		prim, err := set.Primary()
		if err != nil {
			return err
		}
		return set.SetProperties(prim.ID, pf.props)
	})
}

func runProperties(args []string) int {
	fs := flag.NewFlagSet("properties", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.Int("id", -1, "Display id to change")
	var pf propertyFlags
	pf.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: displayctl properties --id <id> [property flags]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Change properties of one display. Properties that are not given keep")
		fmt.Fprintln(os.Stderr, "their current value.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if *id < 0 {
		fmt.Fprintln(os.Stderr, "properties requires --id")
		fs.Usage()
		return 2
	}
	if pf.props.Empty() {
		fmt.Fprintln(os.Stderr, "properties requires at least one property flag")
		fs.Usage()
		return 2
	}
	return changeDisplays(func(set *x11.Set) error {
		return set.SetProperties(*id, pf.props)
	})
}
