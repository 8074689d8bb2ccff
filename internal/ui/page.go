package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/termfolio/internal/contact"
	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/format/table"
	"github.com/atomicstack/termfolio/internal/tracker"
)

const (
	pageMargin   = 2
	maxTextWidth = 96
	minTextWidth = 20
	skillBarMax  = 30
)

// docLine pairs the styled rendering of a line with its plain text, which
// is used while the line is fading in.
type docLine struct {
	styled string
	plain  string
}

func plainLine(style *lipgloss.Style, text string) docLine {
	if style == nil {
		return docLine{styled: text, plain: text}
	}
	return docLine{styled: style.Render(text), plain: text}
}

// span is a run of document rows [start, end).
type span struct {
	id    string
	start int
	end   int
}

type block struct {
	span
	reveal bool
	skill  int
	stat   int
}

// document is the rendered page with the row geometry of its sections and
// revealable blocks.
type document struct {
	lines    []string
	sections []span
	blocks   []block
}

func (d document) section(id string) (span, bool) {
	for _, s := range d.sections {
		if s.id == id {
			return s, true
		}
	}
	return span{}, false
}

type pageBuilder struct {
	m     *Model
	now   time.Time
	width int
	doc   document
}

type blockOpts struct {
	reveal bool
	skill  int
	stat   int
}

func (b *pageBuilder) add(id string, lines []docLine, opts blockOpts) {
	start := len(b.doc.lines)
	opacity := 1.0
	if opts.reveal && !b.m.reduced {
		opacity = b.m.reveal.Opacity(id, b.now)
	}
	pad := strings.Repeat(" ", pageMargin)
	for _, l := range lines {
		var text string
		switch {
		case opacity <= 0:
			text = ""
		case opacity < 0.5:
			text = styles.FadeLow.Render(l.plain)
		case opacity < 1:
			text = styles.FadeHigh.Render(l.plain)
		default:
			text = l.styled
		}
		if text != "" {
			text = pad + text
		}
		b.doc.lines = append(b.doc.lines, text)
	}
	b.doc.blocks = append(b.doc.blocks, block{
		span:   span{id: id, start: start, end: len(b.doc.lines)},
		reveal: opts.reveal,
		skill:  opts.skill,
		stat:   opts.stat,
	})
}

func (b *pageBuilder) blank() {
	b.doc.lines = append(b.doc.lines, "")
}

func (b *pageBuilder) wrap(style *lipgloss.Style, text string) []docLine {
	wrapped := wordwrap.String(text, b.width)
	out := []docLine{}
	for _, l := range strings.Split(wrapped, "\n") {
		out = append(out, plainLine(style, strings.TrimRight(l, " ")))
	}
	return out
}

// buildDocument renders the whole page at m's current state.
func (m *Model) buildDocument(now time.Time) document {
	width := m.viewWidth() - 2*pageMargin
	if width > maxTextWidth {
		width = maxTextWidth
	}
	if width < minTextWidth {
		width = minTextWidth
	}
	b := &pageBuilder{m: m, now: now, width: width}
	for _, sec := range m.profile.Sections {
		start := len(b.doc.lines)
		switch sec.ID {
		case "home":
			b.home(sec)
		case "about":
			b.about(sec)
		case "skills":
			b.skills(sec)
		case "projects":
			b.projects(sec)
		case "experience", "timeline":
			b.timeline(sec)
		case "contact":
			b.contact(sec)
		default:
			b.generic(sec)
		}
		b.blank()
		b.doc.sections = append(b.doc.sections, span{id: sec.ID, start: start, end: len(b.doc.lines)})
	}
	return b.doc
}

func (b *pageBuilder) title(sec content.Section) {
	b.blank()
	b.add(sec.ID+":title", []docLine{
		plainLine(styles.SectionTitle, strings.ToUpper(sec.Title)),
		plainLine(styles.Accent, strings.Repeat("─", min(b.width, len([]rune(sec.Title))+4))),
	}, blockOpts{reveal: true, skill: -1, stat: -1})
	b.blank()
}

func (b *pageBuilder) body(sec content.Section) {
	if strings.TrimSpace(sec.Body) == "" {
		return
	}
	b.add(sec.ID+":body", b.wrap(styles.Body, sec.Body), blockOpts{reveal: true, skill: -1, stat: -1})
	b.blank()
}

func (b *pageBuilder) generic(sec content.Section) {
	b.title(sec)
	b.body(sec)
}

func (b *pageBuilder) home(sec content.Section) {
	p := b.m.profile
	b.blank()
	intro := []docLine{
		plainLine(styles.Muted, "Hi, I'm"),
		plainLine(styles.Brand, p.Owner),
	}
	intro = append(intro, b.wrap(styles.Body, sec.Body)...)
	b.add("home:intro", intro, blockOpts{skill: -1, stat: -1})
	b.blank()

	typed := b.m.heroText
	b.add("home:hero", []docLine{{
		styled: styles.Accent.Render("> ") + styles.Hero.Render(typed) + styles.HeroCaret.Render("▌"),
		plain:  "> " + typed + "▌",
	}}, blockOpts{skill: -1, stat: -1})

	if len(p.Code) == 0 {
		return
	}
	b.blank()
	b.add("home:code", b.codeFrame(), blockOpts{skill: -1, stat: -1})
}

// codeFrame renders the snippet at a fixed height so typing never moves the
// sections below it.
func (b *pageBuilder) codeFrame() []docLine {
	code := b.m.profile.Code
	inner := 0
	for _, l := range code {
		if w := len([]rune(l)); w > inner {
			inner = w
		}
	}
	inner++
	if inner > b.width-4 {
		inner = b.width - 4
	}
	typed := strings.Split(b.m.codeText, "\n")
	out := make([]docLine, 0, len(code)+2)
	top := "┌─ developer.js " + strings.Repeat("─", max(0, inner-13)) + "┐"
	out = append(out, plainLine(styles.CodeFrame, top))
	for i := range code {
		text := ""
		if i < len(typed) {
			text = typed[i]
		}
		runes := []rune(text)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		fill := strings.Repeat(" ", inner-len(runes))
		out = append(out, docLine{
			styled: styles.CodeFrame.Render("│ ") + styles.Code.Render(string(runes)) + fill + styles.CodeFrame.Render(" │"),
			plain:  "│ " + string(runes) + fill + " │",
		})
	}
	bottom := "└" + strings.Repeat("─", inner+2) + "┘"
	out = append(out, plainLine(styles.CodeFrame, bottom))
	return out
}

func (b *pageBuilder) about(sec content.Section) {
	b.title(sec)
	b.body(sec)
	stats := b.m.profile.Stats
	if len(stats) == 0 {
		return
	}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{b.m.statValue(i, b.now), s.Label}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})
	for i, line := range formatted {
		b.add(fmt.Sprintf("stat:%d", i), []docLine{plainLine(styles.Accent, line)}, blockOpts{reveal: true, skill: -1, stat: i})
	}
	b.blank()
}

func (m *Model) statValue(i int, now time.Time) string {
	s := m.profile.Stats[i]
	value := m.counters[i].Value(now)
	if m.reduced && m.counters[i].Started() {
		value = s.Count
	}
	return fmt.Sprintf("%d%s", value, s.Suffix)
}

func (b *pageBuilder) skills(sec content.Section) {
	b.title(sec)
	b.body(sec)
	p := b.m.profile
	nameWidth := 0
	for _, s := range p.Skills {
		if w := table.Width(s.Name); w > nameWidth {
			nameWidth = w
		}
	}
	barWidth := b.width - nameWidth - 8
	if barWidth > skillBarMax {
		barWidth = skillBarMax
	}
	if barWidth < 5 {
		barWidth = 5
	}
	for _, category := range p.SkillCategories() {
		b.add("skills:"+category, []docLine{plainLine(styles.FieldLabel, category)}, blockOpts{reveal: true, skill: -1, stat: -1})
		for i, s := range p.Skills {
			if s.Category != category {
				continue
			}
			frac := b.m.skills[i].Fraction(b.now)
			name := s.Name + strings.Repeat(" ", nameWidth-table.Width(s.Name))
			pct := fmt.Sprintf("%4s", fmt.Sprintf("%d%%", s.Percent))
			b.m.bar.Width = barWidth
			b.add(fmt.Sprintf("skill:%d", i), []docLine{{
				styled: "  " + styles.Body.Render(name) + "  " + b.m.bar.ViewAs(frac) + "  " + styles.Accent.Render(pct),
				plain:  "  " + name + "  " + plainBar(frac, barWidth) + "  " + pct,
			}}, blockOpts{reveal: true, skill: i, stat: -1})
		}
		b.blank()
	}
}

func plainBar(frac float64, width int) string {
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (b *pageBuilder) projects(sec content.Section) {
	b.title(sec)
	b.body(sec)
	for i, p := range b.m.profile.Projects {
		lines := []docLine{plainLine(styles.Accent, "◆ "+p.Title)}
		lines = append(lines, b.wrap(styles.Body, p.Summary)...)
		if len(p.Tags) > 0 {
			lines = append(lines, plainLine(styles.Muted, strings.Join(p.Tags, " · ")))
		}
		b.add(fmt.Sprintf("project:%d", i), lines, blockOpts{reveal: true, skill: -1, stat: -1})
		b.blank()
	}
}

func (b *pageBuilder) timeline(sec content.Section) {
	b.title(sec)
	b.body(sec)
	items := b.m.profile.Timeline
	rows := make([][]string, len(items))
	for i, t := range items {
		rows[i] = []string{t.Period, t.Title}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	for i, t := range items {
		lines := []docLine{plainLine(styles.Accent, "● "+formatted[i])}
		if t.Detail != "" {
			for _, l := range b.wrap(styles.Muted, t.Detail) {
				l.styled = "  " + l.styled
				l.plain = "  " + l.plain
				lines = append(lines, l)
			}
		}
		b.add(fmt.Sprintf("timeline:%d", i), lines, blockOpts{reveal: true, skill: -1, stat: -1})
	}
	b.blank()
}

func (b *pageBuilder) contact(sec content.Section) {
	b.title(sec)
	b.body(sec)
	p := b.m.profile
	info := []docLine{}
	if p.Email != "" {
		info = append(info, plainLine(styles.Muted, "✉  "+p.Email))
	}
	if p.Location != "" {
		info = append(info, plainLine(styles.Muted, "⌂  "+p.Location))
	}
	if len(info) > 0 {
		b.add("contact:info", info, blockOpts{reveal: true, skill: -1, stat: -1})
		b.blank()
	}
	b.add("contact:form", b.formLines(), blockOpts{skill: -1, stat: -1})
}

var fieldHints = map[contact.Field]string{
	contact.FieldName:    "Please enter your name",
	contact.FieldEmail:   "Please enter a valid email address",
	contact.FieldMessage: "Please enter a message",
}

func (b *pageBuilder) formLines() []docLine {
	f := b.m.form
	f.SetWidth(b.width - 4)
	out := []docLine{}
	labels := []struct {
		field contact.Field
		label string
	}{
		{contact.FieldName, "Name"},
		{contact.FieldEmail, "Email"},
		{contact.FieldMessage, "Message"},
	}
	for _, l := range labels {
		marker := "  "
		if f.Active() && f.Focused() == l.field {
			marker = "› "
		}
		label := plainLine(styles.FieldLabel, marker+l.label)
		if f.Invalid(l.field) {
			hint := "  " + fieldHints[l.field]
			label.styled += styles.FieldError.Render(hint)
			label.plain += hint
		}
		out = append(out, label)
		for _, row := range strings.Split(f.FieldView(l.field), "\n") {
			out = append(out, docLine{styled: "  " + row, plain: "  " + row})
		}
	}
	out = append(out, docLine{})
	status := f.Status()
	text := status.Label()
	style := styles.Button
	if status == contact.Sending {
		text = b.m.spinner.View() + " " + text
		style = styles.ButtonBusy
	}
	hint := "ctrl+s to send · tab to move · esc to leave"
	if !f.Active() {
		hint = "press c to write a message"
	}
	out = append(out, docLine{
		styled: "  " + style.Render(text) + "  " + styles.Muted.Render(hint),
		plain:  "  " + text + "  " + hint,
	})
	return out
}

// unitViewport exposes the viewport to the tracker in units.
type unitViewport struct{ m *Model }

func (v unitViewport) ScrollOffset() int { return v.m.viewport.YOffset * v.m.rowUnits }

func (v unitViewport) Width() int { return v.m.viewWidth() * v.m.colUnits }

// unitLayout exposes section geometry to the tracker in units.
type unitLayout struct{ m *Model }

func (l unitLayout) Sections() []tracker.Section {
	out := make([]tracker.Section, len(l.m.doc.sections))
	for i, s := range l.m.doc.sections {
		out[i] = tracker.Section{
			ID:     s.id,
			Top:    s.start * l.m.rowUnits,
			Height: (s.end - s.start) * l.m.rowUnits,
		}
	}
	return out
}

// paletteMenu lets the tracker close the section palette.
type paletteMenu struct{ m *Model }

func (p paletteMenu) MenuOpen() bool { return p.m.paletteOpen }

func (p paletteMenu) CloseMenu() { p.m.closePalette() }
