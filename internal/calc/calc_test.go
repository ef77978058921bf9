package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{"  3.5", 3.5},
		{"12abc", 12},
		{".5", 0.5},
		{"5.", 5},
		{"-2.25e2", -225},
		{"1e", 1},
		{"0x10", 0},
		{"+7", 7},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloat(tt.in))
		})
	}

	for _, in := range []string{"", "   ", "abc", "-", ".", "e5"} {
		assert.True(t, math.IsNaN(ParseFloat(in)), "%q should be NaN", in)
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "1.50", Fixed(1.5, 2))
	assert.Equal(t, "0.254", Fixed(0.254, 3))
	assert.Equal(t, "Infinity", Fixed(math.Inf(1), 2))
	assert.Equal(t, "-Infinity", Fixed(math.Inf(-1), 2))
	assert.Equal(t, "0.00", Fixed(0, 2))
	assert.Equal(t, "3", Fixed(2.5, 0))
	assert.Equal(t, "-0.13", Fixed(-0.125, 2))
	assert.Equal(t, "0.0010", Fixed(0.001, 4))
	assert.Equal(t, "1e+21", Fixed(1e21, 2))
}

func TestFixedRoundsTiesUp(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ohm current", OhmsLaw("1", "16", "").I, "0.063 A"},
		{"ohm voltage", OhmsLaw("", "0.5", "0.25").U, "0.13 V"},
		{"battery hours", BatteryLife("1", "4", "1").H, "0.3 h"},
		{"led resistor", LEDResistor("1", "0", "4000").R, "0.3 Ω"},
		// 1.005 is stored just below the tie, so it rounds down.
		{"below tie", Fixed(1.005, 2), "1.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTraceWidth(t *testing.T) {
	ext := TraceWidth("1", "10", "1", LayerExternal)
	assert.Equal(t, "11.83 mils", ext.Mils)
	assert.Equal(t, "0.300 mm", ext.MM)

	in := TraceWidth("1", "10", "1", LayerInternal)
	assert.Equal(t, "30.76 mils", in.Mils)
	assert.Equal(t, "0.781 mm", in.MM)

	// Anything other than "external" sizes as an inner layer.
	assert.Equal(t, in, TraceWidth("1", "10", "1", "bogus"))

	for _, c := range [][3]string{{"0", "10", "1"}, {"1", "-1", "1"}, {"1", "10", ""}, {"x", "10", "1"}} {
		r := TraceWidth(c[0], c[1], c[2], LayerExternal)
		assert.Equal(t, None, r.Mils)
		assert.Equal(t, None, r.MM)
	}
}

func TestTraceWidthMetricMatchesMils(t *testing.T) {
	for _, cur := range []string{"0.1", "0.5", "2", "7.5"} {
		for _, dt := range []string{"5", "20", "45"} {
			for _, oz := range []string{"0.5", "1", "2"} {
				for _, layer := range []string{LayerExternal, LayerInternal} {
					r := TraceWidth(cur, dt, oz, layer)
					assert.InDelta(t, r.WidthMils*0.0254, r.WidthMM, 1e-9)
					assert.InDelta(t, ParseFloat(r.Mils)*0.0254, ParseFloat(r.MM), 0.001)
				}
			}
		}
	}
}

func TestDivider(t *testing.T) {
	assert.Equal(t, "5.000 V", Divider("10", "1000", "1000").Display)
	assert.Equal(t, "1.650 V", Divider("3.3", "4.7", "4.7").Display)
	assert.Equal(t, "3.300 V", Divider("5", "1700", "3300").Display)
	assert.Equal(t, DivErr, Divider("5", "0", "0").Display)
	assert.Equal(t, DivErr, Divider("5", "100", "-100").Display)
	assert.Equal(t, None, Divider("", "1", "1").Display)
	assert.Equal(t, None, Divider("5", "a", "1").Display)
}

func TestLEDResistor(t *testing.T) {
	r := LEDResistor("5", "2", "20")
	assert.Equal(t, "150.0 Ω", r.R)
	assert.Equal(t, "60.0 mW", r.P)

	inv := LEDResistor("2", "5", "20")
	assert.Equal(t, LEDInvert, inv.R)
	assert.Equal(t, None, inv.P)

	zero := LEDResistor("5", "2", "0")
	assert.Equal(t, None, zero.R)
	assert.Equal(t, None, zero.P)

	assert.Equal(t, None, LEDResistor("5", "", "20").R)
}

func TestOhmsLaw(t *testing.T) {
	tests := []struct {
		name    string
		u, r, i string
		wantU   string
		wantR   string
		wantI   string
		wantP   string
	}{
		{"solve current", "10", "5", "", "10.00 V", "5.00 Ω", "2.000 A", "20.000 W"},
		{"solve voltage", "", "100", "0.05", "5.00 V", "100.00 Ω", "0.050 A", "0.250 W"},
		{"solve resistance", "12", "", "0.5", "12.00 V", "24.00 Ω", "0.500 A", "6.000 W"},
		{"zero current", "10", "", "0", "10.00 V", "Infinity Ω", "0.000 A", "0.000 W"},
		{"zero resistance", "10", "0", "", "10.00 V", "0.00 Ω", "Infinity A", "Infinity W"},
		{"all three echoed", "10", "5", "1", "10.00 V", "5.00 Ω", "1.000 A", "10.000 W"},
		{"one known", "10", "", "", "-", "-", "-", "-"},
		{"none known", "", "x", "", "-", "-", "-", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OhmsLaw(tt.u, tt.r, tt.i)
			assert.Equal(t, tt.wantU, got.U)
			assert.Equal(t, tt.wantR, got.R)
			assert.Equal(t, tt.wantI, got.I)
			assert.Equal(t, tt.wantP, got.P)
		})
	}
}

func TestOhmsLawNaNPower(t *testing.T) {
	// 0 V across 0 Ω: I is infinite and 0·∞ is undefined.
	got := OhmsLaw("0", "0", "")
	assert.Equal(t, "Infinity A", got.I)
	assert.Equal(t, None, got.P)
}

func TestConverterRoundTrip(t *testing.T) {
	mm := MilToMM("10")
	assert.Equal(t, "0.2540", mm)
	assert.Equal(t, "10.00", MMToMil(mm))

	assert.Equal(t, "1.00", MMToMil("0.0254"))
	assert.Equal(t, "", MilToMM(""))
	assert.Equal(t, "", MMToMil("mm"))
}

func TestReactance(t *testing.T) {
	r := Reactance("1000", "1", "")
	assert.Equal(t, "159.15 Ω", r.Xc)
	assert.Equal(t, None, r.Xl)
	assert.InDelta(t, 1/(2*math.Pi*1e6*1e-9), r.XcOhms, 1e-9)

	both := Reactance("1000", "1", "10")
	assert.Equal(t, "159.15 Ω", both.Xc)
	assert.Equal(t, "62.83 Ω", both.Xl)

	onlyL := Reactance("1000", "-1", "10")
	assert.Equal(t, None, onlyL.Xc)
	assert.Equal(t, "62.83 Ω", onlyL.Xl)

	noF := Reactance("0", "1", "10")
	assert.Equal(t, None, noF.Xc)
	assert.Equal(t, None, noF.Xl)
}

func TestBatteryLife(t *testing.T) {
	r := BatteryLife("2000", "100", "")
	assert.Equal(t, "17.0 h", r.H)
	assert.Equal(t, "0.71 d", r.D)

	assert.Equal(t, r, BatteryLife("2000", "100", "abc"))
	assert.Equal(t, r, BatteryLife("2000", "100", "0"))

	full := BatteryLife("2000", "100", "1")
	assert.Equal(t, "20.0 h", full.H)
	assert.Equal(t, "0.83 d", full.D)

	bad := BatteryLife("2000", "0", "")
	assert.Equal(t, None, bad.H)
	assert.Equal(t, None, bad.D)
}

func TestMicrostrip(t *testing.T) {
	r := Microstrip("10", "5", "1.4", "4.5")
	assert.Equal(t, "41.41 Ω", r.Display)
	assert.True(t, r.InRange)

	wide := Microstrip("40", "5", "1.4", "4.5")
	assert.False(t, wide.InRange)

	assert.Equal(t, None, Microstrip("10", "5", "0", "4.5").Display)
	assert.Equal(t, None, Microstrip("10", "", "1.4", "4.5").Display)
}

func TestRegistry(t *testing.T) {
	ids := []string{}
	for _, c := range All() {
		ids = append(ids, c.ID)
		require.NotNil(t, c.Eval, c.ID)
		require.NotEmpty(t, c.Fields, c.ID)
	}
	assert.Equal(t, []string{"trace", "divider", "led", "ohm", "convert", "reactance", "battery", "microstrip"}, ids)

	led, err := Lookup("led")
	require.NoError(t, err)
	out := led.Evaluate(led.Defaults())
	assert.Equal(t, []Output{{"Resistor", "150.0 Ω"}, {"Power", "60.0 mW"}}, out)

	ohm, err := Lookup("ohm")
	require.NoError(t, err)
	out = ohm.Evaluate(map[string]string{"u": "10", "r": "5", "ignored": "1"})
	assert.Equal(t, "2.000 A", out[2].Value)

	ms, err := Lookup("microstrip")
	require.NoError(t, err)
	out = ms.Evaluate(map[string]string{"w": "40", "h": "5", "t": "1.4", "er": "4.5"})
	require.Len(t, out, 2)
	assert.Equal(t, "Note", out[1].Label)

	_, err = Lookup("nope")
	assert.True(t, errors.Is(err, ErrUnknownCalculator))
}
