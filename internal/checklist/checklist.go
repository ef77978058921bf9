// Package checklist persists per-item checked state. A checked item is
// stored under its id with the value "checked"; unchecking deletes the key.
package checklist

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/store"
)

// CheckedValue is the only value ever written.
const CheckedValue = "checked"

// ErrUnknownItem is returned for ids that are not part of the checklist.
var ErrUnknownItem = errors.New("unknown checklist item")

// Defaults is the built-in PCB design review checklist.
var Defaults = []model.Item{
	{ID: "chk-schematic-erc", Label: "Schematic passes ERC with no unexplained warnings"},
	{ID: "chk-footprints", Label: "Footprints verified against datasheets"},
	{ID: "chk-decoupling", Label: "Decoupling capacitors placed close to every supply pin"},
	{ID: "chk-trace-width", Label: "Power traces sized for their current"},
	{ID: "chk-impedance", Label: "Controlled-impedance nets match the stackup"},
	{ID: "chk-drc", Label: "DRC clean against the fab's rules"},
	{ID: "chk-silkscreen", Label: "Silkscreen legible and off pads"},
	{ID: "chk-mounting", Label: "Mounting holes and keep-outs placed"},
	{ID: "chk-gerbers", Label: "Gerbers and drill files reviewed in a viewer"},
	{ID: "chk-bom", Label: "BOM matches the schematic and parts are in stock"},
}

// Checklist is an ordered set of items bound to a store.
type Checklist struct {
	store store.Store
	items []model.Item
	index map[string]int
}

// New builds a checklist over defs. Checked flags in defs are ignored;
// call Load to read persisted state.
func New(st store.Store, defs []model.Item) *Checklist {
	c := &Checklist{store: st, items: make([]model.Item, len(defs)), index: make(map[string]int, len(defs))}
	for i, d := range defs {
		c.items[i] = model.Item{ID: d.ID, Label: d.Label}
		c.index[d.ID] = i
	}
	return c
}

// Load marks each item checked iff its stored value is CheckedValue.
func (c *Checklist) Load() error {
	for i := range c.items {
		v, ok, err := c.store.Get(c.items[i].ID)
		if err != nil {
			return fmt.Errorf("load %s: %w", c.items[i].ID, err)
		}
		c.items[i].Checked = ok && v == CheckedValue
	}
	return nil
}

// Items returns a copy of the items in order.
func (c *Checklist) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Checked reports the state of one item.
func (c *Checklist) Checked(id string) (bool, error) {
	i, ok := c.index[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return c.items[i].Checked, nil
}

// Set records the state of one item and writes it through.
func (c *Checklist) Set(id string, checked bool) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	var err error
	if checked {
		err = c.store.Set(id, CheckedValue)
	} else {
		err = c.store.Remove(id)
	}
	if err != nil {
		return fmt.Errorf("persist %s: %w", id, err)
	}
	c.items[i].Checked = checked
	return nil
}

// Toggle flips one item and returns its new state.
func (c *Checklist) Toggle(id string) (bool, error) {
	cur, err := c.Checked(id)
	if err != nil {
		return false, err
	}
	if err := c.Set(id, !cur); err != nil {
		return cur, err
	}
	return !cur, nil
}

// Progress counts checked and total items.
func (c *Checklist) Progress() (done, total int) {
	for _, it := range c.items {
		if it.Checked {
			done++
		}
	}
	return done, len(c.items)
}
