package main

import (
	"testing"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/config"
)

func TestInspectTerminalListsStandardDescriptors(t *testing.T) {
	info := inspectTerminal()
	expected := []string{"stdout", "stdin", "stderr"}
	if len(info.Descriptors) != len(expected) {
		t.Fatalf("expected %d descriptors, got %d", len(expected), len(info.Descriptors))
	}
	for i, name := range expected {
		if info.Descriptors[i].Name != name {
			t.Fatalf("expected descriptor %d name %q, got %q", i, name, info.Descriptors[i].Name)
		}
	}
	if info.Size != nil && (info.Size.Width <= 0 || info.Size.Height <= 0) {
		t.Fatalf("expected a usable size when one is reported, got %+v", info.Size)
	}
}

func TestWithTerminalSizeSeedsUnsetDimensions(t *testing.T) {
	tty := terminalInfo{Size: &terminalSize{Source: "stdout", Width: 132, Height: 40}}
	cfg := withTerminalSize(app.Config{Height: 24}, tty)
	if cfg.InitialWidth != 132 {
		t.Fatalf("expected initial width 132, got %d", cfg.InitialWidth)
	}
	if cfg.InitialHeight != 0 || cfg.Height != 24 {
		t.Fatalf("explicit height must win, got initial %d height %d", cfg.InitialHeight, cfg.Height)
	}
	if cfg.Width != 0 {
		t.Fatalf("detected width must not pin the layout, got %d", cfg.Width)
	}
}

func TestWithTerminalSizeWithoutTerminal(t *testing.T) {
	cfg := withTerminalSize(app.Config{ShowFooter: true}, terminalInfo{})
	if cfg != (app.Config{ShowFooter: true}) {
		t.Fatalf("expected config unchanged, got %+v", cfg)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ContentPath: "profile.yaml",
			Width:       80,
			Height:      24,
			ShowFooter:  true,
			RowUnits:    20,
			ColUnits:    8,
			Relay:       app.RelayConfig{Kind: app.RelayNone},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"content": "profile.yaml",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"relay":   "none",
		},
		Args: []string{"--content", "profile.yaml"},
	}

	payload := startupTracePayload(cfg, inspectTerminal())

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["content"] != "profile.yaml" {
		t.Fatalf("expected content flag %q, got %v", "profile.yaml", flagsValue["content"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["relay"] != "none" {
		t.Fatalf("expected relay none, got %v", flagsValue["relay"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
