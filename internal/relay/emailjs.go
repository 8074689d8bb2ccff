package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	emailJSTimeout         = 15 * time.Second
	maxErrorBody           = 512
)

// EmailJSConfig identifies the account, service and template to send with.
type EmailJSConfig struct {
	PublicKey  string
	ServiceID  string
	TemplateID string
	Endpoint   string
}

// Configured reports whether all three identifiers are present.
func (c EmailJSConfig) Configured() bool {
	return strings.TrimSpace(c.PublicKey) != "" &&
		strings.TrimSpace(c.ServiceID) != "" &&
		strings.TrimSpace(c.TemplateID) != ""
}

// EmailJS posts messages to the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

// NewEmailJS returns a client; a nil httpClient gets a default with timeout.
func NewEmailJS(cfg EmailJSConfig, httpClient *http.Client) (*EmailJS, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("emailjs: public key, service id and template id are required: %w", ErrNotConfigured)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: emailJSTimeout}
	}
	return &EmailJS{cfg: cfg, client: httpClient}, nil
}

func (e *EmailJS) Name() string { return "emailjs" }

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send delivers msg. Any non-2xx response is an error carrying the status
// and the start of the response body.
func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:  e.cfg.ServiceID,
		TemplateID: e.cfg.TemplateID,
		UserID:     e.cfg.PublicKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Body,
		},
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
