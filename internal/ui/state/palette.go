// Package state holds the section palette: a filterable list of jump
// targets with a cursor and a scroll window.
package state

import "strings"

// Item is one palette entry. ID is the section it jumps to.
type Item struct {
	ID    string
	Label string
	Hint  string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// Palette encapsulates filter, cursor and viewport state.
type Palette struct {
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPalette constructs a palette with the cursor on the first item.
func NewPalette(title string, items []Item) *Palette {
	p := &Palette{
		Title:      title,
		Full:       CloneItems(items),
		LastCursor: -1,
	}
	p.applyFilter()
	return p
}

// IndexOf returns the index for a given item identifier.
func (p *Palette) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	trimmed := strings.TrimPrefix(id, "#")
	if trimmed != id {
		return p.IndexOf(trimmed)
	}
	return -1
}

// Selected returns the item under the cursor.
func (p *Palette) Selected() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}

// Reset clears the filter and moves the cursor to id when present.
func (p *Palette) Reset(id string) {
	p.Filter = ""
	p.FilterCursor = 0
	p.LastCursor = -1
	p.applyFilter()
	p.Cursor = 0
	if idx := p.IndexOf(id); idx >= 0 {
		p.Cursor = idx
	}
	p.ViewportOffset = 0
}
