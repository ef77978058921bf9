package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/benchkit/internal/store"
)

type failingStore struct{ store.Memory }

func (f *failingStore) Set(string, string) error { return errors.New("disk full") }

func TestRender(t *testing.T) {
	tests := []struct {
		setting   Setting
		osDark    bool
		effective Effective
		title     string
	}{
		{System, true, EffectiveDark, "System (dark)"},
		{System, false, EffectiveLight, "System (light)"},
		{Light, true, EffectiveLight, "Light Mode"},
		{Dark, false, EffectiveDark, "Dark Mode"},
	}
	for _, tt := range tests {
		t.Run(string(tt.setting), func(t *testing.T) {
			v := Render(tt.setting, tt.osDark)
			assert.Equal(t, tt.effective, v.Effective)
			assert.Equal(t, tt.title, v.Title)
			assert.Equal(t, IconFor(tt.setting), v.Icon)
		})
	}
}

func TestIconFollowsSetting(t *testing.T) {
	v := Render(System, true)
	assert.Equal(t, IconFor(System), v.Icon)
	assert.NotEqual(t, IconFor(Dark), v.Icon)
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(&store.Memory{}, Fixed(true), nil)
	assert.Equal(t, System, c.Setting())
	assert.Equal(t, EffectiveDark, c.View().Effective)

	bogus := store.NewMemory(map[string]string{StorageKey: "sepia"})
	assert.Equal(t, System, NewController(bogus, Fixed(false), nil).Setting())

	stored := store.NewMemory(map[string]string{StorageKey: "dark"})
	c = NewController(stored, Fixed(false), nil)
	assert.Equal(t, Dark, c.Setting())
	assert.Equal(t, "Dark Mode", c.View().Title)
}

func TestController_CycleRoundTrip(t *testing.T) {
	st := &store.Memory{}
	c := NewController(st, Fixed(false), nil)

	want := []Setting{Light, Dark, System}
	for _, s := range want {
		v := c.Cycle()
		assert.Equal(t, s, v.Setting)
		got, ok, err := st.Get(StorageKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, string(s), got)
	}
	assert.Equal(t, System, c.Setting())
}

func TestController_SchemeChanged(t *testing.T) {
	dark := false
	c := NewController(&store.Memory{}, SchemeFunc(func() bool { return dark }), nil)
	assert.Equal(t, EffectiveLight, c.View().Effective)

	dark = true
	v, ok := c.SchemeChanged(true)
	assert.True(t, ok)
	assert.Equal(t, EffectiveDark, v.Effective)
	assert.Equal(t, "System (dark)", v.Title)

	c.Set(Light)
	v, ok = c.SchemeChanged(false)
	assert.False(t, ok)
	assert.Equal(t, EffectiveLight, v.Effective)
	assert.Equal(t, "Light Mode", v.Title)
}

func TestController_PersistFailureStillSwitches(t *testing.T) {
	c := NewController(&failingStore{}, Fixed(false), nil)
	v := c.Cycle()
	assert.Equal(t, Light, v.Setting)
	assert.Equal(t, Light, c.Setting())
}

func TestParseSetting(t *testing.T) {
	for in, want := range map[string]Setting{"light": Light, " Dark ": Dark, "auto": System, "system": System} {
		got, err := ParseSetting(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSetting("sepia")
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestController_CycleUsesLastSeenScheme(t *testing.T) {
	queries := 0
	c := NewController(&store.Memory{}, SchemeFunc(func() bool { queries++; return false }), nil)
	require.Equal(t, 1, queries)

	c.Set(Light)
	_, ok := c.SchemeChanged(true)
	assert.False(t, ok)

	v := c.Set(System)
	assert.Equal(t, EffectiveDark, v.Effective)
	assert.Equal(t, "System (dark)", v.Title)
	assert.Equal(t, 1, queries)

	v = c.Apply()
	assert.Equal(t, EffectiveLight, v.Effective)
	assert.Equal(t, 2, queries)
}
