// Package theme resolves the light/dark/system preference against the
// platform's color scheme and keeps the preference persisted.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/benchkit/internal/store"
)

// StorageKey is the key the setting is persisted under.
const StorageKey = "theme"

// Setting is the user's stored choice.
type Setting string

const (
	System Setting = "system"
	Light  Setting = "light"
	Dark   Setting = "dark"
)

// Effective is the concrete scheme actually shown.
type Effective string

const (
	EffectiveLight Effective = "light"
	EffectiveDark  Effective = "dark"
)

// ErrInvalidSetting is returned by ParseSetting.
var ErrInvalidSetting = errors.New("invalid theme setting")

// ParseSetting validates user input. "auto" is accepted as an alias of system.
func ParseSetting(s string) (Setting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system", "auto":
		return System, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q (want light, dark or system)", ErrInvalidSetting, s)
}

// Next is the click cycle: system → light → dark → system.
func (s Setting) Next() Setting {
	switch s {
	case System:
		return Light
	case Light:
		return Dark
	default:
		return System
	}
}

// Resolve maps a setting to the scheme to show.
func Resolve(s Setting, osDark bool) Effective {
	switch s {
	case Light:
		return EffectiveLight
	case Dark:
		return EffectiveDark
	}
	if osDark {
		return EffectiveDark
	}
	return EffectiveLight
}

// View is everything a toggle control renders.
type View struct {
	Setting   Setting
	Effective Effective
	Title     string
	Icon      Icon
}

// Render computes the View for a setting. The icon follows the setting, not
// the effective scheme, so system mode always shows the monitor icon.
func Render(s Setting, osDark bool) View {
	eff := Resolve(s, osDark)
	title := fmt.Sprintf("System (%s)", eff)
	if s != System {
		name := string(s)
		title = strings.ToUpper(name[:1]) + name[1:] + " Mode"
	}
	return View{Setting: s, Effective: eff, Title: title, Icon: IconFor(s)}
}

// SchemeSource reports whether the platform prefers a dark scheme.
type SchemeSource interface {
	PrefersDark() bool
}

// SchemeFunc adapts a func to SchemeSource.
type SchemeFunc func() bool

func (f SchemeFunc) PrefersDark() bool { return f() }

// Fixed is a SchemeSource with a constant answer.
type Fixed bool

func (f Fixed) PrefersDark() bool { return bool(f) }

// Controller owns the current setting and writes every change through to
// the store. Storage failures are logged and never block a theme change.
//
// Only Apply queries the SchemeSource. Set, Cycle and SchemeChanged resolve
// against the last platform scheme seen, so they never block on a terminal.
type Controller struct {
	store   store.Store
	scheme  SchemeSource
	log     *zap.Logger
	setting Setting
	osDark  bool
	view    View
}

// NewController loads the stored setting. A missing or unrecognised value
// starts in system mode.
func NewController(st store.Store, scheme SchemeSource, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{store: st, scheme: scheme, log: log, setting: System}

	raw, ok, err := st.Get(StorageKey)
	switch {
	case err != nil:
		log.Warn("load theme setting", zap.Error(err))
	case ok:
		if s, err := ParseSetting(raw); err == nil && raw == string(s) {
			c.setting = s
		} else {
			log.Debug("ignoring stored theme", zap.String("value", raw))
		}
	}
	c.Apply()
	return c
}

// Setting is the current stored choice.
func (c *Controller) Setting() Setting { return c.setting }

// View is the last applied view.
func (c *Controller) View() View { return c.view }

// Apply queries the platform scheme and re-resolves the current setting.
func (c *Controller) Apply() View {
	c.osDark = c.scheme.PrefersDark()
	return c.render()
}

func (c *Controller) render() View {
	c.view = Render(c.setting, c.osDark)
	return c.view
}

// Cycle advances system → light → dark → system, persists and reapplies.
func (c *Controller) Cycle() View {
	return c.Set(c.setting.Next())
}

// Set persists an explicit setting and reapplies.
func (c *Controller) Set(s Setting) View {
	c.setting = s
	if err := c.store.Set(StorageKey, string(s)); err != nil {
		c.log.Warn("persist theme setting", zap.String("setting", string(s)), zap.Error(err))
	}
	return c.render()
}

// SchemeChanged records a platform scheme change. Only system mode follows
// it; an explicit light or dark choice is left alone and ok is false.
func (c *Controller) SchemeChanged(osDark bool) (View, bool) {
	c.osDark = osDark
	if c.setting != System {
		return c.view, false
	}
	return c.render(), true
}
