package state

import (
	"reflect"
	"testing"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	pal := newTestPalette("one", "two", "three")
	pal.Cursor = 2
	pal.SetFilter("two", len("two"))

	if pal.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", pal.Filter)
	}
	if pal.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", pal.FilterCursor)
	}
	if pal.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", pal.Cursor)
	}
	if len(pal.Items) != 1 || pal.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", pal.Items)
	}

	pal.SetFilter("", 0)
	if pal.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", pal.Cursor)
	}
	if pal.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", pal.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	pal := newTestPalette("alpha")

	if !pal.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if pal.Filter != "ab" || pal.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", pal.Filter, pal.FilterCursor)
	}

	pal.FilterCursor = 1
	if !pal.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if pal.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", pal.Filter)
	}
	if pal.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", pal.FilterCursor)
	}

	if !pal.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if pal.Filter != "ab" || pal.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", pal.Filter, pal.FilterCursor)
	}

	pal.SetFilter("abc def", len("abc def"))
	if !pal.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if pal.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", pal.Filter)
	}

	pal.SetFilter("abc", 0)
	if pal.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	pal := newTestPalette("one", "two")
	pal.SetFilter("one two", len("one two"))

	if !pal.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if pal.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", pal.FilterCursor)
	}
	if !pal.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if pal.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", pal.FilterCursor)
	}

	if !pal.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if pal.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", pal.FilterCursor)
	}
	if !pal.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if pal.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", pal.FilterCursor)
	}
	if !pal.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if pal.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", pal.FilterCursor)
	}
	if !pal.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItemsAndClone(t *testing.T) {
	items := []Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected contains match for Beta, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	filtered[0].Label = "changed"
	if items[1].Label != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{
		{ID: "one", Label: "First"},
		{ID: "two", Label: "Second"},
		{ID: "three", Label: "Third"},
	}

	if idx := BestMatchIndex(items, "Second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "two"); idx != 1 {
		t.Fatalf("expected ID match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}
	pal := NewPalette("title", items)
	pal.SetFilter("alp", 3)
	if pal.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", pal.Cursor)
	}
	if !reflect.DeepEqual(pal.Items, []Item{{ID: "1", Label: "Alpha"}}) {
		t.Fatalf("expected filtered items to contain Alpha, got %#v", pal.Items)
	}
}
