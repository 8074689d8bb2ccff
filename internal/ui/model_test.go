package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/motion"
	"github.com/atomicstack/termfolio/internal/splash"
	"github.com/atomicstack/termfolio/internal/testutil"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Harness, s string) {
	for _, r := range s {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(runeKey(string(r)))
	}
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock()
	if opts.Profile.Sections == nil {
		opts.Profile = content.Default()
	}
	opts.Now = clock.Now
	model, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := NewHarness(model)
	h.Start()
	return h, clock
}

func widePage() Options {
	return Options{Width: 120, Height: 30, SkipSplash: true, ReduceMotion: true}
}

func TestSplashAdvancesToPage(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 120, Height: 30, ReduceMotion: true, Rand: rand.New(rand.NewSource(1))})
	m := h.Model()
	if m.phase != phaseSplash {
		t.Fatalf("expected splash phase at start")
	}
	if !strings.Contains(h.View(), "Kevin") {
		t.Fatalf("expected owner on splash, got %q", h.View())
	}
	for i := 0; i < 30 && !m.splash.Complete(); i++ {
		h.Send(splash.TickMsg{})
	}
	if !m.splash.Complete() {
		t.Fatalf("splash never completed, progress %d", m.splash.Progress)
	}
	if m.phase != phaseSplash {
		t.Fatalf("page should wait for the hold after 100%%")
	}
	h.Send(splash.DoneMsg{})
	if m.phase != phasePage {
		t.Fatalf("expected page phase after splash")
	}
	if !strings.Contains(h.View(), "About") {
		t.Fatalf("expected navbar links in page view")
	}
}

func TestEnterSkipsSplash(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 120, Height: 30})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.Model().phase != phasePage {
		t.Fatalf("expected enter to skip the splash")
	}
	if h.Model().tracker.Active() != "home" {
		t.Fatalf("expected home active, got %q", h.Model().tracker.Active())
	}
}

func TestNumberKeyJumpsAndHighlights(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	m := h.Model()
	if m.tracker.Active() != "home" {
		t.Fatalf("expected home active initially, got %q", m.tracker.Active())
	}
	h.Send(runeKey("2"))
	if m.tracker.Active() != "about" {
		t.Fatalf("expected about active after jump, got %q", m.tracker.Active())
	}
	if !m.nav.IsActive(1) || m.nav.IsActive(0) {
		t.Fatalf("expected only the about link highlighted")
	}
	sec, _ := m.doc.section("about")
	if want := sec.start - jumpOffsetWide/m.rowUnits; m.viewport.YOffset != want {
		t.Fatalf("expected offset %d, got %d", want, m.viewport.YOffset)
	}
}

func TestSmoothScrollFinishesOnFrames(t *testing.T) {
	opts := widePage()
	opts.ReduceMotion = false
	h, clock := newTestHarness(t, opts)
	m := h.Model()
	h.Send(runeKey("3"))
	if !m.scroll.Active() {
		t.Fatalf("expected smooth scroll in flight")
	}
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected no movement before the first frame")
	}
	clock.Advance(motion.ScrollDuration / 2)
	h.Send(frameMsg{})
	mid := m.viewport.YOffset
	if mid <= 0 {
		t.Fatalf("expected progress mid scroll, got %d", mid)
	}
	clock.Advance(motion.ScrollDuration)
	h.Send(frameMsg{})
	if m.scroll.Active() {
		t.Fatalf("expected smooth scroll finished")
	}
	if m.tracker.Active() != "skills" {
		t.Fatalf("expected skills active, got %q", m.tracker.Active())
	}
}

func TestNavbarHidesOnScrollDownAndReturns(t *testing.T) {
	h, clock := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("G"))
	if !m.nav.Hidden() {
		t.Fatalf("expected navbar hidden after scrolling down")
	}
	if !m.nav.Scrolled() || !m.tracker.ShowTop() {
		t.Fatalf("expected scrolled style and top button")
	}
	clock.Advance(20 * time.Millisecond)
	h.Send(runeKey("k"))
	if m.nav.Hidden() {
		t.Fatalf("expected navbar shown after scrolling up")
	}
	if !strings.Contains(h.View(), "top (t)") {
		t.Fatalf("expected top button in view")
	}
}

func TestTopKeyReturnsToStart(t *testing.T) {
	h, clock := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("t"))
	if m.viewport.YOffset != 0 {
		t.Fatalf("t should do nothing before the top button shows")
	}
	h.Send(runeKey("G"))
	clock.Advance(20 * time.Millisecond)
	h.Send(runeKey("t"))
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected offset 0, got %d", m.viewport.YOffset)
	}
	if m.tracker.ShowTop() || m.tracker.Active() != "home" {
		t.Fatalf("expected top state restored, active %q", m.tracker.Active())
	}
}

func TestThrottledScrollIsFlushed(t *testing.T) {
	h, clock := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("j"))
	h.Send(runeKey("G"))
	if m.tracker.ShowTop() {
		t.Fatalf("second scroll inside the window should be throttled")
	}
	if !m.throttle.Pending() || !m.flushQueued {
		t.Fatalf("expected a queued trailing flush")
	}
	h.Send(scrollFlushMsg{})
	if m.tracker.ShowTop() {
		t.Fatalf("flush before the window elapses should wait")
	}
	clock.Advance(scrollInterval)
	h.Send(scrollFlushMsg{})
	if !m.tracker.ShowTop() || !m.nav.Hidden() {
		t.Fatalf("expected final position evaluated by the flush")
	}
	if m.throttle.Pending() {
		t.Fatalf("expected pending marker consumed")
	}
}

func TestResizeDebounceIgnoresStaleTicks(t *testing.T) {
	h, _ := newTestHarness(t, Options{SkipSplash: true, ReduceMotion: true})
	m := h.Model()
	if !m.tracker.Narrow() {
		t.Fatalf("expected fallback width to be narrow")
	}
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 30})
	h.Send(tea.WindowSizeMsg{Width: 140, Height: 30})
	h.Send(resizeSettledMsg{tag: 1})
	if !m.tracker.Narrow() {
		t.Fatalf("stale resize tick must not evaluate")
	}
	h.Send(resizeSettledMsg{tag: 2})
	if m.tracker.Narrow() {
		t.Fatalf("expected wide layout after the last resize settled")
	}
}

func TestInitialSizeFollowsResize(t *testing.T) {
	h, _ := newTestHarness(t, Options{InitialWidth: 140, InitialHeight: 30, SkipSplash: true, ReduceMotion: true})
	m := h.Model()
	if m.tracker.Narrow() {
		t.Fatalf("expected initial width to give the wide layout")
	}
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	h.Send(resizeSettledMsg{tag: 1})
	if !m.tracker.Narrow() || m.height != 20 {
		t.Fatalf("expected the reported size to replace the initial one, width %d height %d", m.width, m.height)
	}
}

func TestWideResizeClosesPalette(t *testing.T) {
	h, _ := newTestHarness(t, Options{SkipSplash: true, ReduceMotion: true})
	m := h.Model()
	h.Send(runeKey("/"))
	if !m.paletteOpen {
		t.Fatalf("expected palette open")
	}
	h.Send(tea.WindowSizeMsg{Width: 140, Height: 30})
	h.Send(resizeSettledMsg{tag: 1})
	if m.paletteOpen {
		t.Fatalf("expected palette closed when leaving the narrow layout")
	}
}

func TestNarrowNavbarShowsActiveSection(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 80, Height: 30, SkipSplash: true, ReduceMotion: true})
	view := h.View()
	if !strings.Contains(view, "☰ Home (/)") {
		t.Fatalf("expected collapsed navbar, got %q", strings.SplitN(view, "\n", 2)[0])
	}
}

func TestPaletteFilterAndJump(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("/"))
	typeText(h, "proj")
	if len(m.palette.Items) != 1 || m.palette.Items[0].ID != "projects" {
		t.Fatalf("expected only projects to match, got %+v", m.palette.Items)
	}
	if !strings.Contains(h.View(), "Projects") {
		t.Fatalf("expected filtered item in view")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.paletteOpen {
		t.Fatalf("expected palette closed after selection")
	}
	if m.tracker.Active() != "projects" {
		t.Fatalf("expected projects active, got %q", m.tracker.Active())
	}
}

func TestPaletteEscapeKeepsPosition(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("/"))
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.paletteOpen || m.viewport.YOffset != 0 {
		t.Fatalf("expected palette closed without moving")
	}
}

func TestHeroLineRendersTypedText(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	m := h.Model()
	for i := 0; i < 4; i++ {
		h.Send(m.hero.Pending())
	}
	if m.heroText != "Full" {
		t.Fatalf("expected hero text %q, got %q", "Full", m.heroText)
	}
	if !strings.Contains(h.View(), "> Full") {
		t.Fatalf("expected hero line in view")
	}
}

func TestReducedMotionToggle(t *testing.T) {
	opts := widePage()
	opts.ReduceMotion = false
	h, _ := newTestHarness(t, opts)
	m := h.Model()
	h.Send(runeKey("3"))
	h.Send(runeKey("m"))
	if !m.reduced || !m.reveal.Reduced {
		t.Fatalf("expected reduced motion enabled")
	}
	if m.scroll.Active() {
		t.Fatalf("expected smooth scroll cancelled")
	}
	if m.viewport.YOffset == 0 {
		t.Fatalf("expected viewport moved to the scroll target")
	}
}

func TestReducedMotionMidScrollUpdatesTracker(t *testing.T) {
	opts := widePage()
	opts.ReduceMotion = false
	h, clock := newTestHarness(t, opts)
	m := h.Model()
	h.Send(runeKey("3"))
	clock.Advance(motion.ScrollDuration / 10)
	h.Send(frameMsg{})
	clock.Advance(20 * time.Millisecond)
	h.Send(runeKey("m"))
	if m.scroll.Active() {
		t.Fatalf("expected smooth scroll finished by reduced motion")
	}
	if m.tracker.Active() != "skills" {
		t.Fatalf("expected tracker to follow the landed scroll, got %q at offset %d", m.tracker.Active(), m.viewport.YOffset)
	}
	if !m.nav.IsActive(2) {
		t.Fatalf("expected skills link highlighted")
	}
}

func TestPaletteFilterCursorKeys(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	m := h.Model()
	h.Send(runeKey("/"))
	typeText(h, "ab ou")
	p := m.palette
	if p.FilterCursorPos() != 5 {
		t.Fatalf("expected cursor at end of filter, got %d", p.FilterCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	if p.FilterCursorPos() != 0 {
		t.Fatalf("ctrl+a should move to start, got %d", p.FilterCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true})
	if p.FilterCursorPos() != 3 {
		t.Fatalf("alt+f should move to the start of the next word, got %d", p.FilterCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlE})
	if p.FilterCursorPos() != 5 {
		t.Fatalf("ctrl+e should move to end, got %d", p.FilterCursorPos())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})
	if p.FilterCursorPos() != 3 {
		t.Fatalf("alt+b should move to the start of the last word, got %d", p.FilterCursorPos())
	}
	if p.Filter != "ab ou" {
		t.Fatalf("cursor keys must not edit the filter, got %q", p.Filter)
	}
}

func TestQuitKey(t *testing.T) {
	h, _ := newTestHarness(t, widePage())
	h.Send(runeKey("q"))
	if !h.Quit() {
		t.Fatalf("expected quit")
	}
}
