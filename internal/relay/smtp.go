package relay

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the mail server credentials and the inbox to deliver to.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != "" && c.To != ""
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP relays messages through a mail server with plain auth.
type SMTP struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp: host, user, password and recipient are required: %w", ErrNotConfigured)
	}
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}, nil
}

func (s *SMTP) Name() string { return "smtp" }

// Send composes a plain-text mail with Reply-To set to the visitor.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, s.compose(msg))
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: send: %w", err)
		}
		return nil
	}
}

func (s *SMTP) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + s.cfg.To + "\r\n")
	b.WriteString("Subject: Portfolio contact: " + headerSafe(msg.Name) + "\r\n")
	b.WriteString("From: " + s.cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(msg.Email) + "\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n",
		headerSafe(msg.Name), headerSafe(msg.Email), msg.Body)
	return []byte(b.String())
}

// headerSafe drops line breaks so visitor input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
