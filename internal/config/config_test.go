package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/ui"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.RowUnits != ui.DefaultRowUnits || cfg.App.ColUnits != ui.DefaultColUnits {
		t.Fatalf("expected default units, got %d/%d", cfg.App.RowUnits, cfg.App.ColUnits)
	}
	if cfg.App.Relay.Kind != app.RelayNone {
		t.Fatalf("expected relay none, got %q", cfg.App.Relay.Kind)
	}
	if cfg.App.Relay.SMTP.Port != "587" {
		t.Fatalf("expected default smtp port, got %q", cfg.App.Relay.SMTP.Port)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvironmentAndFlags(t *testing.T) {
	environ := []string{
		"TERMFOLIO_WIDTH=100",
		"TERMFOLIO_FOOTER=true",
		"TERMFOLIO_RELAY=EmailJS",
		"TERMFOLIO_EMAILJS_KEY=key",
		"TERMFOLIO_EMAILJS_SERVICE=svc",
		"TERMFOLIO_EMAILJS_TEMPLATE=tmpl",
		"TERMFOLIO_ROW_UNITS=not-a-number",
	}
	cfg, err := LoadArgs([]string{"-width", "120", "-reduce-motion", "-content", "me.yaml"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected flag to win over env, got width %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.App.ReduceMotion {
		t.Fatalf("expected footer and reduced motion enabled")
	}
	if cfg.App.ContentPath != "me.yaml" {
		t.Fatalf("expected content path, got %q", cfg.App.ContentPath)
	}
	if cfg.App.RowUnits != ui.DefaultRowUnits {
		t.Fatalf("invalid env value should fall back, got %d", cfg.App.RowUnits)
	}
	if cfg.App.Relay.Kind != app.RelayEmailJS || cfg.App.Relay.EmailJS.ServiceID != "svc" {
		t.Fatalf("unexpected relay config %+v", cfg.App.Relay)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
	if cfg.Flags["width"] != "120" || cfg.Flags["content"] != "me.yaml" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestValidateRelayCredentials(t *testing.T) {
	cfg, err := LoadArgs([]string{"-relay", "smtp", "-smtp-host", "mail.example.com"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "relay smtp") {
		t.Fatalf("expected smtp credential error, got %v", err)
	}

	cfg, _ = LoadArgs([]string{"-relay", "pigeon", "-col-units", "0"}, nil)
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if !strings.Contains(err.Error(), "unknown relay") || !strings.Contains(err.Error(), "col-units") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestWithDotEnvFillsMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "TERMFOLIO_SMTP_PASS=secret\nTERMFOLIO_WIDTH=90\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	environ, err := withDotEnv(path, []string{"TERMFOLIO_WIDTH=70"})
	if err != nil {
		t.Fatalf("withDotEnv: %v", err)
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("environment should win over .env, got width %d", cfg.App.Width)
	}
	if cfg.App.Relay.SMTP.Pass != "secret" {
		t.Fatalf("expected smtp pass from .env, got %q", cfg.App.Relay.SMTP.Pass)
	}
}

func TestWithDotEnvMissingFile(t *testing.T) {
	environ := []string{"A=1"}
	out, err := withDotEnv(filepath.Join(t.TempDir(), "absent.env"), environ)
	if err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
	if len(out) != 1 || out[0] != "A=1" {
		t.Fatalf("expected environment unchanged, got %v", out)
	}
}

func TestRedactedMasksSecrets(t *testing.T) {
	cfg, _ := LoadArgs([]string{"-smtp-pass", "hunter2", "-emailjs-key", "pk"}, nil)
	red := cfg.Redacted()
	if red.App.Relay.SMTP.Pass == "hunter2" || red.App.Relay.EmailJS.PublicKey == "pk" {
		t.Fatalf("expected secrets masked, got %+v", red.App.Relay)
	}
	if cfg.App.Relay.SMTP.Pass != "hunter2" {
		t.Fatalf("Redacted must not modify the original")
	}
}
