package mcp

// ListDisplaysInput is the input for the list_displays tool.
type ListDisplaysInput struct{}

// DisplayInfo describes one display in list_displays output. The settings
// fields are zero for displays that are not active.
type DisplayInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Connected   bool   `json:"connected"`
	Active      bool   `json:"active"`
	Primary     bool   `json:"primary"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Frequency   int    `json:"frequency"`
	Orientation string `json:"orientation,omitempty"`
	FixedOutput string `json:"fixed_output,omitempty"`
}

// ListDisplaysOutput is the output for the list_displays tool.
type ListDisplaysOutput struct {
	Displays []DisplayInfo `json:"displays"`
}

// ListModesInput is the input for the list_modes tool.
type ListModesInput struct {
	ID int `json:"id" jsonschema:"required,Display id from list_displays"`
}

// ModeInfo describes one advertised mode.
type ModeInfo struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Frequency int  `json:"frequency"`
	Preferred bool `json:"preferred,omitempty"`
	Current   bool `json:"current,omitempty"`
}

// ListModesOutput is the output for the list_modes tool.
type ListModesOutput struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Modes []ModeInfo `json:"modes"`
}

// SetPrimaryInput is the input for the set_primary tool.
type SetPrimaryInput struct {
	ID int `json:"id" jsonschema:"required,Display id to make primary"`
}

// SetPrimaryOutput is the output for the set_primary tool.
type SetPrimaryOutput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SetPropertiesInput is the input for the set_properties tool. Property
// values use the same syntax as the CLI flags.
type SetPropertiesInput struct {
	ID          *int    `json:"id,omitempty" jsonschema:"Display id to change (default: the primary display)"`
	Position    *string `json:"position,omitempty" jsonschema:"Position as x,y relative to the primary display"`
	Resolution  *string `json:"resolution,omitempty" jsonschema:"Resolution as WIDTHxHEIGHT"`
	Orientation *string `json:"orientation,omitempty" jsonschema:"One of Default, UpsideDown, Right, Left"`
	FixedOutput *string `json:"fixedoutput,omitempty" jsonschema:"Scaling mode: one of Default, Stretch, Center"`
	Frequency   *int    `json:"frequency,omitempty" jsonschema:"Refresh rate in Hz"`
}

// SetPropertiesOutput is the output for the set_properties tool.
type SetPropertiesOutput struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Applied string `json:"applied"`
}
