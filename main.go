package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/config"
	"github.com/atomicstack/termfolio/internal/logging"
	"github.com/atomicstack/termfolio/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := inspectTerminal()
	runtimeCfg.App = withTerminalSize(runtimeCfg.App, tty)
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withTerminalSize seeds the initial layout from the detected terminal so the
// first frame is drawn at the right width. Explicit --width/--height win.
func withTerminalSize(cfg app.Config, tty terminalInfo) app.Config {
	if tty.Size == nil {
		return cfg
	}
	if cfg.Width <= 0 {
		cfg.InitialWidth = tty.Size.Width
	}
	if cfg.Height <= 0 {
		cfg.InitialHeight = tty.Size.Height
	}
	return cfg
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg.Redacted(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["terminal"] = tty
	return payload
}

type terminalInfo struct {
	Size        *terminalSize      `json:"size,omitempty"`
	Descriptors []descriptorStatus `json:"descriptors"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorStatus struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// inspectTerminal checks the standard descriptors and takes the size of the
// first one attached to a terminal.
func inspectTerminal() terminalInfo {
	files := []*os.File{os.Stdout, os.Stdin, os.Stderr}
	names := []string{"stdout", "stdin", "stderr"}
	info := terminalInfo{Descriptors: make([]descriptorStatus, 0, len(files))}
	for i, f := range files {
		status := descriptorStatus{Name: names[i]}
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			info.Descriptors = append(info.Descriptors, status)
			continue
		}
		status.IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			status.Error = err.Error()
		} else {
			status.Width, status.Height = width, height
			if info.Size == nil && width > 0 && height > 0 {
				info.Size = &terminalSize{Source: names[i], Width: width, Height: height}
			}
		}
		info.Descriptors = append(info.Descriptors, status)
	}
	return info
}
