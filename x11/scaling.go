package x11

import (
	"fmt"

	"github.com/1broseidon/displayctl/display"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

// The fixed-output policy rides on the "scaling mode" output property that
// KMS drivers expose on scaler-capable connectors. The property is an atom
// enumeration; outputs without it cannot force a scaling policy.
const (
	scalingProp       = "scaling mode"
	scalingFull       = "Full"
	scalingCenter     = "Center"
	scalingFullAspect = "Full aspect"
	scalingNone       = "None"
)

// fixedOutputFromScaling maps a scaling mode value onto a fixed-output mode.
// Only the two forced policies are distinguished; every other value, and a
// missing property, reads as Default.
func fixedOutputFromScaling(value string) display.FixedOutput {
	switch value {
	case scalingFull:
		return display.FixedOutputStretch
	case scalingCenter:
		return display.FixedOutputCenter
	default:
		return display.FixedOutputDefault
	}
}

// scalingForFixedOutput maps a fixed-output mode onto the property value to
// write. Default prefers the driver's aspect-preserving policy when the
// output advertises it and falls back to no scaling.
func scalingForFixedOutput(f display.FixedOutput, valid []string) string {
	switch f {
	case display.FixedOutputStretch:
		return scalingFull
	case display.FixedOutputCenter:
		return scalingCenter
	default:
		for _, v := range valid {
			if v == scalingFullAspect {
				return scalingFullAspect
			}
		}
		return scalingNone
	}
}

// outputScaling reads an output's scaling mode value and the values the
// output accepts. A missing property yields "" and a nil valid list.
func (c *Connection) outputScaling(output randr.Output) (value string, valid []string, err error) {
	atom, err := xprop.Atm(c.XUtil, scalingProp)
	if err != nil {
		return "", nil, fmt.Errorf("intern %q: %w", scalingProp, err)
	}

	listed, err := randr.ListOutputProperties(c.XUtil.Conn(), output).Reply()
	if err != nil {
		return "", nil, nativeErr("list output properties", err)
	}
	found := false
	for _, a := range listed.Atoms {
		if a == atom {
			found = true
			break
		}
	}
	if !found {
		return "", nil, nil
	}

	reply, err := randr.GetOutputProperty(c.XUtil.Conn(), output, atom,
		xproto.GetPropertyTypeAny, 0, 1, false, false).Reply()
	if err != nil {
		return "", nil, nativeErr("get output property", err)
	}
	if reply.Format != 32 || reply.NumItems < 1 || len(reply.Data) < 4 {
		return "", nil, nil
	}
	name, err := xprop.AtomName(c.XUtil, xproto.Atom(xgb.Get32(reply.Data)))
	if err != nil {
		return "", nil, fmt.Errorf("name scaling mode atom: %w", err)
	}

	query, err := randr.QueryOutputProperty(c.XUtil.Conn(), output, atom).Reply()
	if err != nil {
		return "", nil, nativeErr("query output property", err)
	}
	if !query.Range {
		for _, v := range query.ValidValues {
			n, err := xprop.AtomName(c.XUtil, xproto.Atom(v))
			if err != nil {
				return "", nil, fmt.Errorf("name scaling mode atom: %w", err)
			}
			valid = append(valid, n)
		}
	}
	return name, valid, nil
}

// setOutputScaling writes an output's scaling mode property.
func (c *Connection) setOutputScaling(output randr.Output, value string) error {
	prop, err := xprop.Atm(c.XUtil, scalingProp)
	if err != nil {
		return fmt.Errorf("intern %q: %w", scalingProp, err)
	}
	atom, err := xprop.Atm(c.XUtil, value)
	if err != nil {
		return fmt.Errorf("intern %q: %w", value, err)
	}

	data := make([]byte, 4)
	xgb.Put32(data, uint32(atom))
	err = randr.ChangeOutputPropertyChecked(c.XUtil.Conn(), output, prop,
		xproto.AtomAtom, 32, xproto.PropModeReplace, 1, data).Check()
	if err != nil {
		return nativeErr("change output property", err)
	}
	return nil
}
