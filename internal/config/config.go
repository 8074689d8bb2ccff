package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/relay"
	"github.com/atomicstack/termfolio/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envContent      = "TERMFOLIO_CONTENT"
	envWidth        = "TERMFOLIO_WIDTH"
	envHeight       = "TERMFOLIO_HEIGHT"
	envShowFooter   = "TERMFOLIO_FOOTER"
	envTrace        = "TERMFOLIO_TRACE"
	envLogFile      = "TERMFOLIO_LOG_FILE"
	envReduceMotion = "TERMFOLIO_REDUCE_MOTION"
	envSkipSplash   = "TERMFOLIO_SKIP_SPLASH"
	envRowUnits     = "TERMFOLIO_ROW_UNITS"
	envColUnits     = "TERMFOLIO_COL_UNITS"
	envRelay        = "TERMFOLIO_RELAY"
	envEmailJSKey   = "TERMFOLIO_EMAILJS_KEY"
	envEmailJSSvc   = "TERMFOLIO_EMAILJS_SERVICE"
	envEmailJSTmpl  = "TERMFOLIO_EMAILJS_TEMPLATE"
	envSMTPHost     = "TERMFOLIO_SMTP_HOST"
	envSMTPPort     = "TERMFOLIO_SMTP_PORT"
	envSMTPUser     = "TERMFOLIO_SMTP_USER"
	envSMTPPass     = "TERMFOLIO_SMTP_PASS"
	envSMTPTo       = "TERMFOLIO_SMTP_TO"

	dotEnvFile = ".env"
)

// Load parses configuration from CLI arguments and environment variables.
// Values in .env fill in variables the environment does not set.
func Load() (Config, error) {
	environ, err := withDotEnv(dotEnvFile, os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// withDotEnv appends entries from the dotenv file at path that environ does
// not already define. A missing file is not an error.
func withDotEnv(path string, environ []string) ([]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return environ, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	env := parseEnv(environ)
	out := append([]string(nil), environ...)
	for k, v := range values {
		if _, ok := env[k]; ok {
			continue
		}
		out = append(out, k+"="+v)
	}
	return out, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termfolio", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	contentPath := fs.String("content", envOrDefault(env, envContent, ""), "path to a YAML content profile (built-in profile when empty)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	reduceMotion := fs.Bool("reduce-motion", envOrBool(env, envReduceMotion, false), "disable animations")
	skipSplash := fs.Bool("skip-splash", envOrBool(env, envSkipSplash, false), "start on the page without the loading screen")
	rowUnits := fs.Int("row-units", envOrInt(env, envRowUnits, ui.DefaultRowUnits), "layout units per terminal row")
	colUnits := fs.Int("col-units", envOrInt(env, envColUnits, ui.DefaultColUnits), "layout units per terminal column")
	relayKind := fs.String("relay", envOrDefault(env, envRelay, app.RelayNone), "contact relay: emailjs, smtp or none")
	emailKey := fs.String("emailjs-key", envOrDefault(env, envEmailJSKey, ""), "EmailJS public key")
	emailService := fs.String("emailjs-service", envOrDefault(env, envEmailJSSvc, ""), "EmailJS service id")
	emailTemplate := fs.String("emailjs-template", envOrDefault(env, envEmailJSTmpl, ""), "EmailJS template id")
	smtpHost := fs.String("smtp-host", envOrDefault(env, envSMTPHost, ""), "SMTP server host")
	smtpPort := fs.String("smtp-port", envOrDefault(env, envSMTPPort, "587"), "SMTP server port")
	smtpUser := fs.String("smtp-user", envOrDefault(env, envSMTPUser, ""), "SMTP username")
	smtpPass := fs.String("smtp-pass", envOrDefault(env, envSMTPPass, ""), "SMTP password")
	smtpTo := fs.String("smtp-to", envOrDefault(env, envSMTPTo, ""), "address that receives contact messages")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ContentPath:  *contentPath,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			ReduceMotion: *reduceMotion,
			SkipSplash:   *skipSplash,
			RowUnits:     *rowUnits,
			ColUnits:     *colUnits,
			Relay: app.RelayConfig{
				Kind: strings.ToLower(strings.TrimSpace(*relayKind)),
				EmailJS: relay.EmailJSConfig{
					PublicKey:  *emailKey,
					ServiceID:  *emailService,
					TemplateID: *emailTemplate,
				},
				SMTP: relay.SMTPConfig{
					Host: *smtpHost,
					Port: *smtpPort,
					User: *smtpUser,
					Pass: *smtpPass,
					To:   *smtpTo,
				},
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"content":      *contentPath,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"reduceMotion": strconv.FormatBool(*reduceMotion),
			"skipSplash":   strconv.FormatBool(*skipSplash),
			"rowUnits":     strconv.Itoa(*rowUnits),
			"colUnits":     strconv.Itoa(*colUnits),
			"relay":        *relayKind,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the chosen relay has its credentials and the unit scale
// is usable.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.RowUnits <= 0 {
		errs = append(errs, fmt.Errorf("row-units must be > 0 (got %d)", cfg.App.RowUnits))
	}
	if cfg.App.ColUnits <= 0 {
		errs = append(errs, fmt.Errorf("col-units must be > 0 (got %d)", cfg.App.ColUnits))
	}
	r := cfg.App.Relay
	switch r.Kind {
	case app.RelayNone:
	case app.RelayEmailJS:
		if !r.EmailJS.Configured() {
			errs = append(errs, errors.New("relay emailjs needs emailjs-key, emailjs-service and emailjs-template"))
		}
	case app.RelaySMTP:
		if !r.SMTP.Configured() {
			errs = append(errs, errors.New("relay smtp needs smtp-host, smtp-user, smtp-pass and smtp-to"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown relay %q (want emailjs, smtp or none)", r.Kind))
	}
	return errors.Join(errs...)
}

// Redacted returns a copy of cfg with relay secrets masked, for trace output.
func (c Config) Redacted() Config {
	out := c
	if out.App.Relay.SMTP.Pass != "" {
		out.App.Relay.SMTP.Pass = redacted
	}
	if out.App.Relay.EmailJS.PublicKey != "" {
		out.App.Relay.EmailJS.PublicKey = redacted
	}
	return out
}

const redacted = "[redacted]"
