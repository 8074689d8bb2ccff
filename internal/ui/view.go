package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/termfolio/internal/contact"
)

const splashBarWidth = 40

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseSplash {
		return m.splashView()
	}
	width := m.viewWidth()
	parts := make([]string, 0, 4)
	if !m.nav.Hidden() {
		parts = append(parts, m.navbarView(width))
	}
	if len(m.toasts) > 0 {
		parts = append(parts, renderLines(m.toastLines(width)))
	}
	if m.paletteOpen {
		parts = append(parts, m.paletteView(width, m.viewport.Height))
	} else {
		parts = append(parts, m.viewport.View())
	}
	if bottom, ok := m.bottomView(width); ok {
		parts = append(parts, bottom)
	}
	return strings.Join(parts, "\n")
}

func (m *Model) splashView() string {
	width, height := m.viewWidth(), m.viewHeight()
	barWidth := splashBarWidth
	if barWidth > width-4 {
		barWidth = width - 4
	}
	m.bar.Width = barWidth
	var fraction float64
	message := ""
	if m.splash != nil {
		fraction = m.splash.Fraction()
		message = m.splash.Message
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.SplashTitle.Render(m.profile.Owner),
		"",
		m.bar.ViewAs(fraction),
		"",
		styles.SplashText.Render(message),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// navbarView lays out the brand and links. Below the narrow breakpoint the
// links collapse into the active section name and the palette hint.
func (m *Model) navbarView(width int) string {
	bar := styles.Navbar
	if m.nav.Scrolled() {
		bar = styles.NavbarScrolled
	}
	brand := styles.Brand.Render(m.profile.Owner + ".")
	var links []string
	if m.tracker.Narrow() {
		label := "Menu"
		if link, ok := m.nav.Active(); ok {
			label = link.Label
		}
		links = append(links, styles.NavLink.Render("☰ "+label+" (/)"))
	} else {
		for i, link := range m.nav.Links() {
			style := styles.NavLink
			if m.nav.IsActive(i) {
				style = styles.NavLinkActive
			}
			links = append(links, style.Render(fmt.Sprintf("%d %s", i+1, link.Label)))
		}
	}
	right := strings.Join(links, "  ")
	gap := width - lipgloss.Width(brand) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + brand + strings.Repeat(" ", gap) + right + " "
	if lipgloss.Width(line) > width {
		line = truncate.String(line, uint(width))
	}
	return bar.Width(width).Render(line)
}

// bottomView renders the footer help and the back-to-top button. Neither is
// shown when both are switched off.
func (m *Model) bottomView(width int) (string, bool) {
	showTop := m.tracker.ShowTop()
	if !m.showFooter && !showTop {
		return "", false
	}
	left := ""
	if m.showFooter {
		left = styles.Footer.Render(m.footerHelp())
	}
	right := ""
	if showTop {
		right = styles.TopButton.Render("↑ top (t)")
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	if lipgloss.Width(line) > width {
		line = truncate.String(line, uint(width))
	}
	return line, true
}

func (m *Model) footerHelp() string {
	switch {
	case m.paletteOpen:
		return "↑/↓ select · enter jump · ctrl+a/e alt+b/f move · esc close"
	case m.form.Active():
		return "tab next field · ctrl+s send · esc leave form"
	case m.form.Status() == contact.Sending:
		return "sending message…"
	}
	if len(m.toasts) > 0 {
		return "j/k scroll · / sections · esc dismiss · q quit"
	}
	return "j/k scroll · / sections · 1-9 jump · c contact · q quit"
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
