package model

// Item is one checklist entry. ID doubles as its storage key, so it must be
// unique across the whole store.
type Item struct {
	ID      string `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Checked bool   `json:"checked" yaml:"-"`
}
