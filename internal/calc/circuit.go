package calc

import "math"

// DividerResult is the unloaded output of a resistive divider.
type DividerResult struct {
	Vout    float64
	Display string
}

// Divider computes Vout = Vin·R2/(R1+R2).
func Divider(vin, r1, r2 string) DividerResult {
	v, a, b := ParseFloat(vin), ParseFloat(r1), ParseFloat(r2)
	if anyNaN(v, a, b) {
		return DividerResult{Vout: math.NaN(), Display: None}
	}
	if a+b == 0 {
		return DividerResult{Vout: math.NaN(), Display: DivErr}
	}
	out := v * (b / (a + b))
	return DividerResult{Vout: out, Display: withUnit(out, 3, "V")}
}

// LEDResult is the series resistor for an LED and the power it dissipates.
type LEDResult struct {
	Ohms      float64
	MilliWatt float64
	R         string
	P         string
}

// LEDResistor sizes the series resistor for supply voltage vs, forward
// voltage vf and forward current ifwd in mA.
func LEDResistor(vs, vf, ifwd string) LEDResult {
	s, f, i := ParseFloat(vs), ParseFloat(vf), ParseFloat(ifwd)
	if anyNaN(s, f, i) || i <= 0 {
		return LEDResult{Ohms: math.NaN(), MilliWatt: math.NaN(), R: None, P: None}
	}

	amps := i / 1000
	r := (s - f) / amps
	p := (s - f) * amps
	if r < 0 {
		return LEDResult{Ohms: r, MilliWatt: math.NaN(), R: LEDInvert, P: None}
	}
	return LEDResult{
		Ohms:      r,
		MilliWatt: p * 1000,
		R:         withUnit(r, 1, "Ω"),
		P:         withUnit(p*1000, 1, "mW"),
	}
}

// OhmResult holds the solved quantities of Ohm's law plus power.
type OhmResult struct {
	Volts, Ohms, Amps, Watts float64
	U, R, I, P               string
}

// OhmsLaw solves the missing one of U, R and I. Fewer than two known values
// leave every output at the sentinel. With all three present nothing is
// recomputed and P = U·I.
func OhmsLaw(u, r, i string) OhmResult {
	fu, fr, fi := ParseFloat(u), ParseFloat(r), ParseFloat(i)

	known := 0
	for _, v := range []float64{fu, fr, fi} {
		if !math.IsNaN(v) {
			known++
		}
	}
	if known < 2 {
		nan := math.NaN()
		return OhmResult{Volts: nan, Ohms: nan, Amps: nan, Watts: nan, U: None, R: None, I: None, P: None}
	}

	switch {
	case math.IsNaN(fu):
		fu = fr * fi
	case math.IsNaN(fr):
		if fi != 0 {
			fr = fu / fi
		} else {
			fr = math.Inf(1)
		}
	case math.IsNaN(fi):
		if fr != 0 {
			fi = fu / fr
		} else {
			fi = math.Inf(1)
		}
	}
	p := fu * fi

	return OhmResult{
		Volts: fu, Ohms: fr, Amps: fi, Watts: p,
		U: orNone(fu, 2, "V"),
		R: orNone(fr, 2, "Ω"),
		I: orNone(fi, 3, "A"),
		P: orNone(p, 3, "W"),
	}
}

func orNone(v float64, prec int, unit string) string {
	if math.IsNaN(v) {
		return None
	}
	return withUnit(v, prec, unit)
}

// ReactanceResult holds capacitive and inductive reactance, each computed
// only when its own inputs are valid.
type ReactanceResult struct {
	XcOhms, XlOhms float64
	Xc, Xl         string
}

// Reactance evaluates Xc and Xl at frequency f (kHz) for capacitance c (nF)
// and inductance l (µH).
func Reactance(f, c, l string) ReactanceResult {
	ff, fc, fl := ParseFloat(f), ParseFloat(c), ParseFloat(l)
	res := ReactanceResult{XcOhms: math.NaN(), XlOhms: math.NaN(), Xc: None, Xl: None}

	hz := ff * 1e3
	if positive(ff, fc) {
		res.XcOhms = 1 / (2 * math.Pi * hz * fc * 1e-9)
		res.Xc = withUnit(res.XcOhms, 2, "Ω")
	}
	if positive(ff, fl) {
		res.XlOhms = 2 * math.Pi * hz * fl * 1e-6
		res.Xl = withUnit(res.XlOhms, 2, "Ω")
	}
	return res
}

// DefaultDerating is the usable fraction of nominal battery capacity.
const DefaultDerating = 0.85

// BatteryResult is the estimated runtime of a battery.
type BatteryResult struct {
	Hours, Days float64
	H, D        string
}

// BatteryLife estimates runtime from capacity (mAh) and load current (mA).
// A blank, unparseable or zero derating falls back to DefaultDerating.
func BatteryLife(capacity, current, derating string) BatteryResult {
	capmAh, load, d := ParseFloat(capacity), ParseFloat(current), ParseFloat(derating)
	if math.IsNaN(d) || d == 0 {
		d = DefaultDerating
	}
	if !positive(capmAh, load) {
		return BatteryResult{Hours: math.NaN(), Days: math.NaN(), H: None, D: None}
	}

	hours := capmAh * d / load
	days := hours / 24
	return BatteryResult{
		Hours: hours,
		Days:  days,
		H:     withUnit(hours, 1, "h"),
		D:     withUnit(days, 2, "d"),
	}
}
