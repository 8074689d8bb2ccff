package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/content"
	"github.com/atomicstack/termfolio/internal/relay"
	"github.com/atomicstack/termfolio/internal/ui"
)

// Relay kinds accepted by RelayConfig.Kind.
const (
	RelayNone    = "none"
	RelayEmailJS = "emailjs"
	RelaySMTP    = "smtp"
)

// Config describes user-provided application options. InitialWidth and
// InitialHeight seed the layout before the first resize event; unlike Width
// and Height they do not pin the size.
type Config struct {
	ContentPath   string
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	ReduceMotion  bool
	SkipSplash    bool
	RowUnits      int
	ColUnits      int
	Relay         RelayConfig
}

// RelayConfig selects and configures the contact relay.
type RelayConfig struct {
	Kind    string
	EmailJS relay.EmailJSConfig
	SMTP    relay.SMTPConfig
}

// NewRelay builds the relay named by cfg.Kind. "none" accepts and drops
// every message.
func NewRelay(cfg RelayConfig) (relay.Relay, error) {
	switch cfg.Kind {
	case "", RelayNone:
		return relay.Discard{}, nil
	case RelayEmailJS:
		r, err := relay.NewEmailJS(cfg.EmailJS, nil)
		if err != nil {
			return nil, err
		}
		return r, nil
	case RelaySMTP:
		r, err := relay.NewSMTP(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown relay %q", cfg.Kind)
}

// NewModel loads the content profile and builds the UI model around outbox.
func NewModel(cfg Config, outbox ui.Outbox) (*ui.Model, error) {
	profile, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return ui.NewModel(ui.Options{
		Profile:       profile,
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		ShowFooter:    cfg.ShowFooter,
		ReduceMotion:  cfg.ReduceMotion,
		SkipSplash:    cfg.SkipSplash,
		RowUnits:      cfg.RowUnits,
		ColUnits:      cfg.ColUnits,
		Outbox:        outbox,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	r, err := NewRelay(cfg.Relay)
	if err != nil {
		return fmt.Errorf("build relay: %w", err)
	}
	outbox := relay.NewOutbox(r, relay.DefaultOutboxConfig())
	defer outbox.Wait()
	defer outbox.Stop()

	model, err := NewModel(cfg, outbox)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
