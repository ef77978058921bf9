package calc

import "math"

// Layer placement of a PCB trace.
const (
	LayerExternal = "external"
	LayerInternal = "internal"
)

// IPC-2221 constants.
const (
	kExternal  = 0.048
	kInternal  = 0.024
	tempExp    = 0.44
	areaExp    = 0.725
	milsPerOz  = 1.378
	mmPerMil   = 0.0254
	z0Numer    = 87.0
	z0ErOffset = 1.41
)

// TraceResult is the required trace width.
type TraceResult struct {
	WidthMils float64
	WidthMM   float64
	Mils      string
	MM        string
}

// TraceWidth sizes a trace for the given current (A), temperature rise (°C)
// and copper weight (oz) per IPC-2221. Any layer other than "external" is
// treated as internal.
func TraceWidth(current, tempRise, thickness, layer string) TraceResult {
	i, dt, oz := ParseFloat(current), ParseFloat(tempRise), ParseFloat(thickness)
	if !positive(i, dt, oz) {
		return TraceResult{WidthMils: math.NaN(), WidthMM: math.NaN(), Mils: None, MM: None}
	}

	k := kInternal
	if layer == LayerExternal {
		k = kExternal
	}
	area := math.Pow(i/(k*math.Pow(dt, tempExp)), 1/areaExp)
	mils := area / (oz * milsPerOz)
	mm := mils * mmPerMil

	return TraceResult{
		WidthMils: mils,
		WidthMM:   mm,
		Mils:      withUnit(mils, 2, "mils"),
		MM:        withUnit(mm, 3, "mm"),
	}
}

// MicrostripResult is the characteristic impedance of a surface microstrip.
type MicrostripResult struct {
	Z0      float64
	Display string
	// InRange reports whether W/H and Er are inside the window the
	// approximation is published for (0.1 < W/H < 3.0, 1 < Er < 15).
	InRange bool
}

// Microstrip evaluates the IPC-2141 surface microstrip approximation for
// trace width W, dielectric height H, copper thickness T (same length unit)
// and relative permittivity Er.
func Microstrip(width, height, thickness, er string) MicrostripResult {
	w, h, t, e := ParseFloat(width), ParseFloat(height), ParseFloat(thickness), ParseFloat(er)
	if !positive(w, h, t, e) {
		return MicrostripResult{Z0: math.NaN(), Display: None}
	}

	z0 := z0Numer / math.Sqrt(e+z0ErOffset) * math.Log(5.98*h/(0.8*w+t))
	ratio := w / h
	return MicrostripResult{
		Z0:      z0,
		Display: withUnit(z0, 2, "Ω"),
		InRange: ratio > 0.1 && ratio < 3.0 && e > 1 && e < 15,
	}
}

// MilToMM converts a mil value to millimetres for the paired mm field.
// Invalid input clears the field.
func MilToMM(mil string) string {
	v := ParseFloat(mil)
	if math.IsNaN(v) {
		return ""
	}
	return Fixed(v*mmPerMil, 4)
}

// MMToMil is the inverse of MilToMM.
func MMToMil(mm string) string {
	v := ParseFloat(mm)
	if math.IsNaN(v) {
		return ""
	}
	return Fixed(v/mmPerMil, 2)
}
