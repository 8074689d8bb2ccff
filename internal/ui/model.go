package ui

import (
	"fmt"
	"math/rand"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/contact"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/motion"
	"github.com/atomicstack/termfolio/internal/relay"
	"github.com/atomicstack/termfolio/internal/schedule"
	"github.com/atomicstack/termfolio/internal/splash"
	"github.com/atomicstack/termfolio/internal/theme"
	"github.com/atomicstack/termfolio/internal/tracker"
	"github.com/atomicstack/termfolio/internal/typing"
	uistate "github.com/atomicstack/termfolio/internal/ui/state"
)

type phase int

const (
	phaseSplash phase = iota
	phasePage
)

const (
	// DefaultRowUnits and DefaultColUnits scale terminal cells into the
	// tracker's units. 96 columns is the narrow breakpoint at 8 units a column.
	DefaultRowUnits = 20
	DefaultColUnits = 8

	scrollInterval = 16 * time.Millisecond
	resizeDelay    = 250 * time.Millisecond

	fallbackWidth  = 80
	fallbackHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Outbox accepts contact messages for delivery and reports outcomes.
type Outbox interface {
	Submit(msg relay.Message) (string, error)
	Results() <-chan relay.Result
}

// Options configures a Model. InitialWidth and InitialHeight are used until
// the terminal reports its size; Width and Height pin it.
type Options struct {
	Profile       content.Profile
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	ReduceMotion  bool
	SkipSplash    bool
	RowUnits      int
	ColUnits      int
	Outbox        Outbox
	Now           func() time.Time
	Rand          *rand.Rand
}

// Model implements the Bubble Tea model for the portfolio page.
type Model struct {
	profile content.Profile
	phase   phase
	started bool
	splash  *splash.Splash
	bar     progress.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	reduced     bool
	rowUnits    int
	colUnits    int
	now         func() time.Time

	viewport viewport.Model
	doc      document
	dirty    bool

	tracker     *tracker.Tracker
	nav         *tracker.Nav
	throttle    *schedule.Throttle
	flushQueued bool
	resize      *schedule.Debouncer

	hero     *typing.Cycler
	heroText string
	code     *typing.CodeTyper
	codeText string

	reveal      *motion.Reveal
	counters    []motion.Counter
	skills      []motion.SkillBar
	scroll      motion.Scroll
	frameQueued bool

	palette     *uistate.Palette
	paletteOpen bool

	form    *contact.Form
	spinner spinner.Model
	outbox  Outbox

	toasts   []toast
	toastSeq int

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the page for opts.Profile. A profile without sections is
// replaced by the built-in one.
func NewModel(opts Options) (*Model, error) {
	profile := opts.Profile
	if len(profile.Sections) == 0 {
		profile = content.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		profile:    profile,
		showFooter: opts.ShowFooter,
		reduced:    opts.ReduceMotion,
		rowUnits:   opts.RowUnits,
		colUnits:   opts.ColUnits,
		now:        now,
		outbox:     opts.Outbox,
		throttle:   schedule.NewThrottle(scrollInterval),
		resize:     schedule.NewDebouncer(resizeDelay),
		reveal:     motion.NewReveal(opts.ReduceMotion),
		form:       contact.New(),
	}
	if m.rowUnits <= 0 {
		m.rowUnits = DefaultRowUnits
	}
	if m.colUnits <= 0 {
		m.colUnits = DefaultColUnits
	}
	m.width, m.height = opts.InitialWidth, opts.InitialHeight
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	hero, err := typing.NewCycler(profile.Phrases, typing.DefaultTiming(), typing.SinkFunc(m.renderHero))
	if err != nil {
		return nil, fmt.Errorf("hero line: %w", err)
	}
	m.hero = hero
	if len(profile.Code) > 0 {
		code, err := typing.NewCodeTyper(profile.Code, typing.DefaultCodeTiming(), typing.SinkFunc(m.renderCode))
		if err != nil {
			return nil, fmt.Errorf("code snippet: %w", err)
		}
		m.code = code
	}

	for _, s := range profile.Stats {
		m.counters = append(m.counters, motion.Counter{Target: s.Count})
	}
	for _, s := range profile.Skills {
		m.skills = append(m.skills, motion.SkillBar{Percent: s.Percent})
	}

	links := profile.NavLinks()
	navLinks := make([]tracker.Link, len(links))
	items := make([]uistate.Item, len(links))
	for i, l := range links {
		navLinks[i] = tracker.Link{Label: l.Label, Target: "#" + l.Target}
		items[i] = uistate.Item{ID: l.Target, Label: l.Label, Hint: fmt.Sprintf("%d", i+1)}
	}
	m.nav = tracker.NewNav(navLinks)
	m.palette = uistate.NewPalette("Jump to section", items)

	m.bar = progress.New(progress.WithSolidFill(theme.Gold), progress.WithoutPercentage())
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Accent))
	m.viewport = viewport.New(m.viewWidth(), m.viewHeight())
	m.viewport.MouseWheelEnabled = false

	if opts.SkipSplash {
		m.phase = phasePage
	} else {
		m.splash = splash.New(nil, opts.Rand)
	}

	m.tracker = tracker.New(tracker.DefaultMetrics(), unitViewport{m}, unitLayout{m}, paletteMenu{m}, m.nav)
	m.relayout()
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.outbox != nil {
		cmds = append(cmds, waitForRelayResult(m.outbox))
	}
	if m.phase == phaseSplash {
		cmds = append(cmds, m.splash.Start())
	} else {
		cmds = append(cmds, m.startPage())
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	} else if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(resizeSettledMsg{}):  m.handleResizeSettledMsg,
		reflect.TypeOf(scrollFlushMsg{}):    m.handleScrollFlushMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(splash.TickMsg{}):    m.handleSplashTickMsg,
		reflect.TypeOf(splash.DoneMsg{}):    m.handleSplashDoneMsg,
		reflect.TypeOf(typing.TickMsg{}):    m.handleTypingTickMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(relayResultMsg{}):    m.handleRelayResultMsg,
		reflect.TypeOf(relayDoneMsg{}):      m.handleRelayDoneMsg,
		reflect.TypeOf(toastExpiredMsg{}):   m.handleToastExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.dirty {
		m.dirty = false
		m.relayout()
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// startPage leaves the splash and starts the page's own loops.
func (m *Model) startPage() tea.Cmd {
	if m.started {
		return nil
	}
	m.phase = phasePage
	m.started = true
	m.relayout()
	cmds := []tea.Cmd{m.hero.Start()}
	if m.code != nil {
		cmds = append(cmds, m.code.Start())
	}
	events.App.PageReady(len(m.doc.sections))
	cmds = append(cmds, m.evaluate(m.now(), false))
	return tea.Batch(cmds...)
}

func (m *Model) renderHero(text string) {
	m.heroText = text
	m.dirty = true
}

func (m *Model) renderCode(text string) {
	m.codeText = text
	m.dirty = true
}

func (m *Model) handleSplashTickMsg(msg tea.Msg) tea.Cmd {
	if m.splash == nil {
		return nil
	}
	return m.splash.Update(msg)
}

func (m *Model) handleSplashDoneMsg(tea.Msg) tea.Cmd {
	return m.startPage()
}

func (m *Model) handleTypingTickMsg(msg tea.Msg) tea.Cmd {
	if cmd := m.hero.Update(msg); cmd != nil {
		return cmd
	}
	if m.code != nil {
		return m.code.Update(msg)
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	events.App.Quit(reason)
	return tea.Quit
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return fallbackWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return fallbackHeight
}
