// Package nav models the navigation drawer: a menu control that opens and
// closes a links panel, and dismissal when clicking anywhere else.
package nav

// Target classifies where a click landed.
type Target int

const (
	TargetOutside Target = iota
	TargetToggle
	TargetLinks
)

// Drawer is open/closed state for the menu control and its links panel.
// Both always share the same state. The zero value is closed.
type Drawer struct {
	open bool
}

func (d *Drawer) Open() bool { return d.open }

// Toggle flips the drawer.
func (d *Drawer) Toggle() { d.open = !d.open }

// Close shuts the drawer.
func (d *Drawer) Close() { d.open = false }

// Click routes a click: the control toggles, the links panel keeps the
// drawer as it is and anything else closes it.
func (d *Drawer) Click(t Target) {
	switch t {
	case TargetToggle:
		d.Toggle()
	case TargetOutside:
		d.Close()
	}
}

// Classes returns the CSS classes for the control and the links panel.
func (d *Drawer) Classes() (toggle, links string) {
	if d.open {
		return "menu-toggle open", "nav-links active"
	}
	return "menu-toggle", "nav-links"
}
