package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position.
func (p *Palette) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(p.Filter)
	restore := -1
	p.Filter = query
	runes := []rune(p.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			p.LastCursor = p.Cursor
		}
		p.Cursor = 0
	} else if prevTrimmed != "" {
		restore = p.LastCursor
	}
	p.applyFilter()
	if trimmed != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
			p.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(p.Items) {
			p.Cursor = restore
		} else if len(p.Items) > 0 {
			p.Cursor = 0
		}
		p.LastCursor = -1
	}
}

func (p *Palette) applyFilter() {
	p.Items = FilterItems(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
		return
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (p *Palette) FilterCursorPos() int {
	runes := []rune(p.Filter)
	if p.FilterCursor < 0 {
		return 0
	}
	if p.FilterCursor > len(runes) {
		return len(runes)
	}
	return p.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (p *Palette) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (p *Palette) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (p *Palette) DeleteFilterWordBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	p.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (p *Palette) MoveFilterCursorStart() bool {
	if p.FilterCursorPos() == 0 {
		return false
	}
	p.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (p *Palette) MoveFilterCursorEnd() bool {
	end := len([]rune(p.Filter))
	if p.FilterCursorPos() == end {
		return false
	}
	p.FilterCursor = end
	return true
}

// MoveFilterCursorWordBackward moves the filter cursor one word backward.
func (p *Palette) MoveFilterCursorWordBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	p.FilterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the filter cursor one word forward.
func (p *Palette) MoveFilterCursorWordForward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.FilterCursor = i
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (p *Palette) MoveFilterCursorRuneBackward() bool {
	if p.FilterCursorPos() == 0 {
		return false
	}
	p.FilterCursor = p.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (p *Palette) MoveFilterCursorRuneForward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	p.FilterCursor = pos + 1
	return true
}

// FilterItems returns items matching the supplied filter string: fuzzy
// matches on the label first, then plain substring matches on label, id or hint.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			return CloneItems(filtered)
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		labelLower := strings.ToLower(item.Label)
		idLower := strings.ToLower(item.ID)
		hintLower := strings.ToLower(item.Hint)
		if strings.Contains(labelLower, lower) || strings.Contains(idLower, lower) || strings.Contains(hintLower, lower) {
			filtered = append(filtered, item)
		}
	}
	return CloneItems(filtered)
}

// BestMatchIndex returns the best index for the query among the provided items.
func BestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.ID), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		if len(items) == 0 {
			return -1
		}
		return 0
	}
	return best.OriginalIndex
}
