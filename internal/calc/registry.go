package calc

import (
	"errors"
	"fmt"
)

// ErrUnknownCalculator is returned by Lookup for an id not in the registry.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Field describes one input of a calculator form.
type Field struct {
	ID      string
	Label   string
	Unit    string
	Default string
	// Options turns the field into a select.
	Options []string
}

// Output is one labelled display value.
type Output struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Calculator binds a formula to its form fields.
type Calculator struct {
	ID      string
	Title   string
	Summary string
	Fields  []Field
	Eval    func(in map[string]string) []Output
}

// Evaluate runs the calculator, filling missing fields with "" so the
// formula sees them as blank.
func (c Calculator) Evaluate(in map[string]string) []Output {
	vals := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		vals[f.ID] = in[f.ID]
	}
	return c.Eval(vals)
}

// Defaults returns the prefilled value of every field.
func (c Calculator) Defaults() map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		out[f.ID] = f.Default
	}
	return out
}

var registry = []Calculator{
	{
		ID:      "trace",
		Title:   "Trace Width (IPC-2221)",
		Summary: "Minimum trace width for a current and temperature rise.",
		Fields: []Field{
			{ID: "curr", Label: "Current", Unit: "A", Default: "1"},
			{ID: "temp", Label: "Temp rise", Unit: "°C", Default: "10"},
			{ID: "thick", Label: "Copper", Unit: "oz", Default: "1"},
			{ID: "layer", Label: "Layer", Default: LayerExternal, Options: []string{LayerExternal, LayerInternal}},
		},
		Eval: func(in map[string]string) []Output {
			r := TraceWidth(in["curr"], in["temp"], in["thick"], in["layer"])
			return []Output{{"Width", r.Mils}, {"Width (metric)", r.MM}}
		},
	},
	{
		ID:      "divider",
		Title:   "Voltage Divider",
		Summary: "Unloaded output of a two-resistor divider.",
		Fields: []Field{
			{ID: "vin", Label: "Vin", Unit: "V", Default: "5"},
			{ID: "r1", Label: "R1", Unit: "Ω", Default: "10000"},
			{ID: "r2", Label: "R2", Unit: "Ω", Default: "10000"},
		},
		Eval: func(in map[string]string) []Output {
			r := Divider(in["vin"], in["r1"], in["r2"])
			return []Output{{"Vout", r.Display}}
		},
	},
	{
		ID:      "led",
		Title:   "LED Series Resistor",
		Summary: "Current-limiting resistor and its dissipation.",
		Fields: []Field{
			{ID: "vs", Label: "Supply", Unit: "V", Default: "5"},
			{ID: "vf", Label: "Forward voltage", Unit: "V", Default: "2"},
			{ID: "if", Label: "Forward current", Unit: "mA", Default: "20"},
		},
		Eval: func(in map[string]string) []Output {
			r := LEDResistor(in["vs"], in["vf"], in["if"])
			return []Output{{"Resistor", r.R}, {"Power", r.P}}
		},
	},
	{
		ID:      "ohm",
		Title:   "Ohm's Law",
		Summary: "Enter any two of U, R and I.",
		Fields: []Field{
			{ID: "u", Label: "Voltage U", Unit: "V"},
			{ID: "r", Label: "Resistance R", Unit: "Ω"},
			{ID: "i", Label: "Current I", Unit: "A"},
		},
		Eval: func(in map[string]string) []Output {
			r := OhmsLaw(in["u"], in["r"], in["i"])
			return []Output{{"U", r.U}, {"R", r.R}, {"I", r.I}, {"P", r.P}}
		},
	},
	{
		ID:      "convert",
		Title:   "Mil ↔ mm",
		Summary: "Editing either field updates the other.",
		Fields: []Field{
			{ID: "mil", Label: "Mil", Unit: "mil", Default: "10"},
			{ID: "mm", Label: "Millimetre", Unit: "mm"},
		},
		Eval: func(in map[string]string) []Output {
			return []Output{{"mil → mm", MilToMM(in["mil"])}, {"mm → mil", MMToMil(in["mm"])}}
		},
	},
	{
		ID:      "reactance",
		Title:   "Reactance",
		Summary: "Capacitive and inductive reactance at a frequency.",
		Fields: []Field{
			{ID: "f", Label: "Frequency", Unit: "kHz", Default: "1000"},
			{ID: "c", Label: "Capacitance", Unit: "nF", Default: "1"},
			{ID: "l", Label: "Inductance", Unit: "µH", Default: "10"},
		},
		Eval: func(in map[string]string) []Output {
			r := Reactance(in["f"], in["c"], in["l"])
			return []Output{{"Xc", r.Xc}, {"Xl", r.Xl}}
		},
	},
	{
		ID:      "battery",
		Title:   "Battery Life",
		Summary: "Runtime estimate from capacity and average load.",
		Fields: []Field{
			{ID: "cap", Label: "Capacity", Unit: "mAh", Default: "2000"},
			{ID: "curr", Label: "Load", Unit: "mA", Default: "100"},
			{ID: "derate", Label: "Derating", Default: fmt.Sprint(DefaultDerating)},
		},
		Eval: func(in map[string]string) []Output {
			r := BatteryLife(in["cap"], in["curr"], in["derate"])
			return []Output{{"Runtime", r.H}, {"Runtime (days)", r.D}}
		},
	},
	{
		ID:      "microstrip",
		Title:   "Microstrip Impedance (IPC-2141)",
		Summary: "Surface microstrip characteristic impedance.",
		Fields: []Field{
			{ID: "w", Label: "Trace width W", Unit: "mil", Default: "10"},
			{ID: "h", Label: "Dielectric height H", Unit: "mil", Default: "5"},
			{ID: "t", Label: "Copper thickness T", Unit: "mil", Default: "1.4"},
			{ID: "er", Label: "Er", Default: "4.5"},
		},
		Eval: func(in map[string]string) []Output {
			r := Microstrip(in["w"], in["h"], in["t"], in["er"])
			out := []Output{{"Z0", r.Display}}
			if r.Display != None && !r.InRange {
				out = append(out, Output{"Note", "outside 0.1<W/H<3, 1<Er<15"})
			}
			return out
		},
	},
}

// All returns the calculators in display order.
func All() []Calculator {
	out := make([]Calculator, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a calculator by id.
func Lookup(id string) (Calculator, error) {
	for _, c := range registry {
		if c.ID == id {
			return c, nil
		}
	}
	return Calculator{}, fmt.Errorf("%w: %q", ErrUnknownCalculator, id)
}
