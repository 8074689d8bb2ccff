package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleMessage() Message {
	return Message{Name: "Ada", Email: "ada@example.com", Body: "Hello there"}
}

func TestEmailJSPostsTemplateParams(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client, err := NewEmailJS(EmailJSConfig{PublicKey: "pk", ServiceID: "svc", TemplateID: "tpl", Endpoint: srv.URL}, srv.Client())
	require.NoError(t, err)
	require.NoError(t, client.Send(context.Background(), sampleMessage()))

	require.Equal(t, "svc", got.ServiceID)
	require.Equal(t, "tpl", got.TemplateID)
	require.Equal(t, "pk", got.UserID)
	require.Equal(t, map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello there"}, got.TemplateParams)
}

func TestEmailJSRejectionIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	client, err := NewEmailJS(EmailJSConfig{PublicKey: "pk", ServiceID: "svc", TemplateID: "bad", Endpoint: srv.URL}, srv.Client())
	require.NoError(t, err)
	err = client.Send(context.Background(), sampleMessage())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 400")
	require.Contains(t, err.Error(), "template ID is invalid")
}

func TestEmailJSRequiresAllIdentifiers(t *testing.T) {
	_, err := NewEmailJS(EmailJSConfig{PublicKey: "pk", ServiceID: "svc"}, nil)
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPComposesReplyTo(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "mail.example.com", User: "me@example.com", Pass: "secret", To: "inbox@example.com"})
	require.NoError(t, err)

	var addr string
	var body []byte
	s.sendMail = func(a string, _ smtp.Auth, from string, to []string, msg []byte) error {
		addr = a
		body = msg
		require.Equal(t, "me@example.com", from)
		require.Equal(t, []string{"inbox@example.com"}, to)
		return nil
	}
	msg := sampleMessage()
	msg.Email = "ada@example.com\r\nBcc: victim@example.com"
	require.NoError(t, s.Send(context.Background(), msg))

	require.Equal(t, "mail.example.com:587", addr)
	text := string(body)
	require.Contains(t, text, "Subject: Portfolio contact: Ada\r\n")
	require.Contains(t, text, "Reply-To: ada@example.com  Bcc: victim@example.com\r\n")
	require.NotContains(t, text, "\r\nBcc:")
	require.Contains(t, text, "Hello there")
}

func TestSMTPRequiresCredentials(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{Host: "mail.example.com"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestOutboxPublishesResults(t *testing.T) {
	fail := errors.New("rejected")
	calls := 0
	r := Func(func(ctx context.Context, msg Message) error {
		calls++
		if strings.Contains(msg.Body, "fail") {
			return fail
		}
		return nil
	})
	o := NewOutbox(r, OutboxConfig{Timeout: time.Second, QueueSize: 2})
	defer func() {
		o.Stop()
		o.Wait()
	}()

	okID, err := o.Submit(sampleMessage())
	require.NoError(t, err)
	first := <-o.Results()
	require.Equal(t, okID, first.ID)
	require.True(t, first.OK())

	bad := sampleMessage()
	bad.Body = "please fail"
	badID, err := o.Submit(bad)
	require.NoError(t, err)
	second := <-o.Results()
	require.Equal(t, badID, second.ID)
	require.ErrorIs(t, second.Err, fail)
	require.Equal(t, 2, calls)
	require.NotEqual(t, okID, badID)
}

func TestOutboxTimesOutSlowRelay(t *testing.T) {
	r := Func(func(ctx context.Context, msg Message) error {
		<-ctx.Done()
		return ctx.Err()
	})
	o := NewOutbox(r, OutboxConfig{Timeout: 20 * time.Millisecond})
	defer o.Stop()

	_, err := o.Submit(sampleMessage())
	require.NoError(t, err)
	res := <-o.Results()
	require.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestOutboxRejectsAfterStop(t *testing.T) {
	o := NewOutbox(Discard{}, DefaultOutboxConfig())
	o.Stop()
	o.Wait()
	_, err := o.Submit(sampleMessage())
	require.ErrorIs(t, err, ErrClosed)
	_, open := <-o.Results()
	require.False(t, open)
}

func TestOutboxWaitReturnsAfterResultsClosed(t *testing.T) {
	for i := 0; i < 50; i++ {
		o := NewOutbox(Discard{}, DefaultOutboxConfig())
		o.Stop()
		o.Wait()
		select {
		case _, open := <-o.Results():
			require.False(t, open)
		default:
			t.Fatalf("Results still open after Wait returned")
		}
	}
}
