package tracker

import "strings"

// Link is one navigation entry. Target is the section fragment, e.g. "#about".
type Link struct {
	Label  string
	Target string
}

// Fragment returns the section id the link points at.
func (l Link) Fragment() string {
	return strings.TrimPrefix(l.Target, "#")
}

// Nav is the navigation bar's presentation state: a fixed link collection
// where at most one link carries the active marker, plus the navbar flags.
type Nav struct {
	links    []Link
	active   int
	hidden   bool
	scrolled bool
}

func NewNav(links []Link) *Nav {
	return &Nav{links: append([]Link(nil), links...), active: -1}
}

func (n *Nav) Links() []Link  { return n.links }
func (n *Nav) Hidden() bool   { return n.hidden }
func (n *Nav) Scrolled() bool { return n.scrolled }

// IsActive reports whether link i carries the active marker.
func (n *Nav) IsActive(i int) bool {
	return i >= 0 && i == n.active
}

// Active returns the marked link, if any.
func (n *Nav) Active() (Link, bool) {
	if n.active < 0 || n.active >= len(n.links) {
		return Link{}, false
	}
	return n.links[n.active], true
}

// Highlight clears every marker and marks the link targeting section. An
// empty or unknown section leaves no link marked.
func (n *Nav) Highlight(section string) {
	n.active = -1
	if section == "" {
		return
	}
	for i, link := range n.links {
		if link.Fragment() == section {
			n.active = i
			return
		}
	}
}

// IndexOf returns the link index targeting section, or -1.
func (n *Nav) IndexOf(section string) int {
	for i, link := range n.links {
		if link.Fragment() == section {
			return i
		}
	}
	return -1
}
