package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/benchkit/internal/theme"
)

func TestProgressBar(t *testing.T) {
	s := New(&bytes.Buffer{}, "never")
	assert.Equal(t, "#####.....  50%", s.ProgressBar(1, 2, 10))
	assert.Equal(t, ".....   0%", s.ProgressBar(0, 0, 1))
	assert.Equal(t, "########## 100%", s.ProgressBar(5, 5, 10))
}

func TestSetEffective(t *testing.T) {
	s := New(&bytes.Buffer{}, "never")
	s.SetEffective(theme.EffectiveDark)
	assert.True(t, s.Dark())
	s.SetEffective(theme.EffectiveLight)
	assert.False(t, s.Dark())
}

func TestPanelAndRows(t *testing.T) {
	s := New(&bytes.Buffer{}, "never")
	rows := s.Rows([][2]string{{"Vout", "2.500 V"}, {"Resistor", "150.0 Ω"}})
	assert.Equal(t, []string{"Vout      2.500 V", "Resistor  150.0 Ω"}, rows)

	out := s.Panel(rows)
	assert.Contains(t, out, "Vout      2.500 V")
	assert.Contains(t, out, "╭")
}

func TestOK(t *testing.T) {
	prev := Current()
	defer SetTheme(prev)
	SetTheme(New(&bytes.Buffer{}, "never"))

	var buf bytes.Buffer
	OK(&buf, "saved")
	assert.Equal(t, "ok saved\n", buf.String())
}

func TestFail(t *testing.T) {
	prev := Current()
	defer SetTheme(prev)
	SetTheme(New(&bytes.Buffer{}, "never"))

	var buf bytes.Buffer
	Fail(&buf, "bad input")
	assert.Equal(t, "x bad input\n", buf.String())
}
