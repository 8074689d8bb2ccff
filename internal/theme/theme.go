package theme

import "github.com/charmbracelet/lipgloss"

// Gold is the accent used for bars, markers and success notices.
const Gold = "#FFD700"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Brand             *lipgloss.Style
	Navbar            *lipgloss.Style
	NavbarScrolled    *lipgloss.Style
	NavLink           *lipgloss.Style
	NavLinkActive     *lipgloss.Style
	SectionTitle      *lipgloss.Style
	Body              *lipgloss.Style
	Muted             *lipgloss.Style
	Accent            *lipgloss.Style
	Hero              *lipgloss.Style
	HeroCaret         *lipgloss.Style
	Code              *lipgloss.Style
	CodeFrame         *lipgloss.Style
	FadeLow           *lipgloss.Style
	FadeHigh          *lipgloss.Style
	FieldLabel        *lipgloss.Style
	FieldError        *lipgloss.Style
	Button            *lipgloss.Style
	ButtonBusy        *lipgloss.Style
	ToastSuccess      *lipgloss.Style
	ToastError        *lipgloss.Style
	Footer            *lipgloss.Style
	TopButton         *lipgloss.Style
	PaletteTitle      *lipgloss.Style
	PaletteItem       *lipgloss.Style
	PaletteSelected   *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	SplashTitle       *lipgloss.Style
	SplashText        *lipgloss.Style
}

var defaultStyles = Styles{
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Bold(true),
	),
	Navbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	NavbarScrolled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("234")),
	),
	NavLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	NavLinkActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Bold(true).Underline(true),
	),
	SectionTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Accent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)),
	),
	Hero: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	HeroCaret: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Blink(true),
	),
	Code: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
	),
	CodeFrame: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FadeLow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	),
	FadeHigh: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FieldError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(Gold)).Bold(true).Padding(0, 2),
	),
	ButtonBusy: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("178")).Padding(0, 2),
	),
	ToastSuccess: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color(Gold)).Padding(0, 2),
	),
	ToastError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#FF6B6B")).Padding(0, 2),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	TopButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(Gold)).Bold(true),
	),
	PaletteTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PaletteItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PaletteSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(Gold)).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SplashTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Gold)).Bold(true),
	),
	SplashText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
}

// Default exposes the gold style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
