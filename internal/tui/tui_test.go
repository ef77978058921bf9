package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/checklist"
	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/store"
	"github.com/idilsaglam/benchkit/internal/theme"
	"github.com/idilsaglam/benchkit/internal/ui"
)

func newTestModel(t *testing.T, start string) (Model, *store.Memory) {
	t.Helper()
	return newSchemeModel(t, start, theme.Fixed(false))
}

// newSchemeModel wires one scheme source into both the controller and the
// model, the way the tui command does.
func newSchemeModel(t *testing.T, start string, scheme theme.SchemeSource) (Model, *store.Memory) {
	t.Helper()
	st := &store.Memory{}
	cl := checklist.New(st, []model.Item{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}})
	require.NoError(t, cl.Load())
	m := New(Options{
		Styles:    ui.New(&bytes.Buffer{}, "never"),
		Theme:     theme.NewController(st, scheme, nil),
		Scheme:    scheme,
		Checklist: cl,
		Start:     start,
	})
	return m, st
}

// run feeds msg to m and then feeds back whatever its command returns.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	if cmd != nil {
		out = step(t, out, cmd())
	}
	return out
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestThemeCycle(t *testing.T) {
	m, st := newTestModel(t, "checklist")
	want := []string{"light", "dark", "system"}
	for _, w := range want {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
		v, ok, err := st.Get(theme.StorageKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, w, v)
		assert.Equal(t, theme.Setting(w), m.theme.Setting())
	}
	assert.Contains(t, m.View(), "System (light)")
}

func TestSchemeMsgOnlyInSystemMode(t *testing.T) {
	m, _ := newTestModel(t, "checklist")
	m = step(t, m, SchemeMsg{Dark: true})
	assert.True(t, m.styles.Dark())

	m = step(t, m, keys("t")) // light
	assert.False(t, m.styles.Dark())
	m = step(t, m, SchemeMsg{Dark: true})
	assert.False(t, m.styles.Dark())
}

func TestFocusFollowsTerminalScheme(t *testing.T) {
	dark := false
	m, _ := newSchemeModel(t, "checklist", theme.SchemeFunc(func() bool { return dark }))
	require.False(t, m.styles.Dark())
	assert.Contains(t, m.View(), "System (light)")

	dark = true
	m = run(t, m, tea.FocusMsg{})
	assert.True(t, m.styles.Dark())
	assert.Equal(t, "System (dark)", m.theme.View().Title)

	// Focus reports right after a query are ignored.
	dark = false
	_, cmd := m.Update(tea.FocusMsg{})
	assert.Nil(t, cmd)

	// An explicit choice does not query at all.
	m.lastQuery = time.Time{}
	m = step(t, m, keys("t")) // light
	_, cmd = m.Update(tea.FocusMsg{})
	assert.Nil(t, cmd)

	// Cycling back into system mode re-reads the scheme.
	m = step(t, m, keys("t")) // dark
	m = run(t, m, keys("t"))  // system
	assert.Equal(t, theme.System, m.theme.Setting())
	assert.False(t, m.styles.Dark())
	assert.Equal(t, "System (light)", m.theme.View().Title)
}

func TestTerminalSchemeQuery(t *testing.T) {
	m, _ := newSchemeModel(t, "checklist", theme.Fixed(true))
	m.termScheme = true
	cmd := m.detectScheme()
	require.NotNil(t, cmd)

	q := &schemeQuery{src: theme.Fixed(true)}
	require.NoError(t, q.Run())
	assert.True(t, q.dark)
}

func TestDrawerKeysAndClicks(t *testing.T) {
	m, _ := newTestModel(t, "led")
	assert.False(t, m.DrawerOpen())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, m.DrawerOpen())

	// Inside the links: stays open.
	m = step(t, m, tea.MouseMsg{X: 5, Y: 0 + drawerTop + len(m.pages) + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.DrawerOpen())

	// Outside: closes.
	m = step(t, m, tea.MouseMsg{X: drawerWidth + 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.DrawerOpen())

	// The menu label toggles.
	m = step(t, m, tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.DrawerOpen())

	// Clicking a link opens that page.
	m = step(t, m, tea.MouseMsg{X: 3, Y: drawerTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.DrawerOpen())
	assert.Equal(t, "Trace Width (IPC-2221)", m.Active())
}

func TestDrawerKeyboardSelect(t *testing.T) {
	m, _ := newTestModel(t, "trace")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.DrawerOpen())
	assert.Equal(t, "Voltage Divider", m.Active())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.DrawerOpen())
}

func TestCalculatorRecomputesOnEveryKey(t *testing.T) {
	m, _ := newTestModel(t, "led")
	p := m.pages[m.active].calc
	assert.Equal(t, "150.0 Ω", p.outputs[0].Value)

	// Focus is on Vs ("5"); typing a digit makes it 55.
	m = step(t, m, keys("5"))
	assert.Equal(t, "2650.0 Ω", p.outputs[0].Value)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, calc.None, p.outputs[0].Value)
	_ = m
}

func TestConverterSyncsBothWays(t *testing.T) {
	m, _ := newTestModel(t, "convert")
	p := m.pages[m.active].calc
	require.Equal(t, "mil", p.fields[p.focus].def.ID)
	assert.Equal(t, "10", p.fields[0].input.Value())
	assert.Equal(t, "0.2540", p.fields[1].input.Value())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = step(t, m, keys("2"))
	m = step(t, m, keys("0"))
	assert.Equal(t, "0.5080", p.fields[1].input.Value())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "mm", p.fields[p.focus].def.ID)
	m = step(t, m, keys("0"))
	assert.Equal(t, "0.50800", p.fields[1].input.Value())
	assert.Equal(t, "20.00", p.fields[0].input.Value())

	p.setField("mm", "")
	m = step(t, m, keys("x"))
	assert.Equal(t, "", p.fields[0].input.Value())
	_ = m
}

func TestTraceLayerSelect(t *testing.T) {
	m, _ := newTestModel(t, "trace")
	p := m.pages[m.active].calc
	assert.Equal(t, "11.83 mils", p.outputs[0].Value)

	for i := 0; i < 3; i++ {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, "layer", p.fields[p.focus].def.ID)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "30.76 mils", p.outputs[0].Value)
	assert.Contains(t, m.View(), "internal")
}

func TestChecklistToggle(t *testing.T) {
	m, st := newTestModel(t, "checklist")
	m = step(t, m, keys(" "))
	assert.Equal(t, map[string]string{"a": "checked"}, st.Snapshot())
	assert.Contains(t, m.View(), "[x] Alpha")

	m = step(t, m, keys(" "))
	assert.Empty(t, st.Snapshot())
	assert.Contains(t, m.View(), "[ ] Alpha")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "checklist")
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
