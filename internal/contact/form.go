// Package contact implements the contact form: three fields validated as the
// visitor types, a submit state machine and the notices it raises.
package contact

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/atomicstack/termfolio/internal/relay"
)

const (
	ResetDelay      = 3 * time.Second
	SuccessDuration = 5 * time.Second
	ErrorDuration   = 6 * time.Second

	InvalidText = "Please fill in every field correctly."
	SentText    = "Message sent successfully!"
	FailedText  = "Could not send the message. Please try again."
)

var (
	ErrInvalid = errors.New("contact: invalid fields")
	ErrBusy    = errors.New("contact: submission in progress")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field identifies one input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Status is the submit button state.
type Status int

const (
	Idle Status = iota
	Sending
	Sent
	Failed
)

// Label is the submit button text for s.
func (s Status) Label() string {
	switch s {
	case Sending:
		return "Sending..."
	case Sent:
		return "Sent!"
	case Failed:
		return "Error"
	default:
		return "Send Message"
	}
}

// NoticeKind selects notice styling.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient notification raised by the form.
type Notice struct {
	Text     string
	Kind     NoticeKind
	Duration time.Duration
}

// ResetMsg returns the button to Idle after a Sent or Failed outcome.
type ResetMsg struct {
	tag int
}

// Form is the contact form.
type Form struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus   Field
	active  bool
	invalid [fieldCount]bool

	status   Status
	pending  string
	resetTag int
}

func New() *Form {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120

	message := textarea.New()
	message.Placeholder = "Your message"
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(4)

	return &Form{name: name, email: email, message: message}
}

func (f *Form) Active() bool { return f.active }

func (f *Form) Status() Status { return f.status }

func (f *Form) Focused() Field { return f.focus }

func (f *Form) PendingID() string { return f.pending }

// Invalid reports whether fl failed its last validation.
func (f *Form) Invalid(fl Field) bool {
	return fl >= 0 && fl < fieldCount && f.invalid[fl]
}

// SetWidth sizes every input to w cells.
func (f *Form) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// Focus activates the form on its current field.
func (f *Form) Focus() tea.Cmd {
	f.active = true
	return f.focusField(f.focus)
}

// Blur deactivates the form.
func (f *Form) Blur() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *Form) focusField(fl Field) tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	f.focus = fl
	events.Contact.Focus(fl.String())
	switch fl {
	case FieldEmail:
		return f.email.Focus()
	case FieldMessage:
		return f.message.Focus()
	default:
		return f.name.Focus()
	}
}

func (f *Form) cycle(delta int) tea.Cmd {
	next := (int(f.focus) + delta + int(fieldCount)) % int(fieldCount)
	return f.focusField(Field(next))
}

// SetValues fills the fields.
func (f *Form) SetValues(name, email, message string) {
	f.name.SetValue(name)
	f.email.SetValue(email)
	f.message.SetValue(message)
}

// Message returns the trimmed field values.
func (f *Form) Message() relay.Message {
	return relay.Message{
		Name:  strings.TrimSpace(f.name.Value()),
		Email: strings.TrimSpace(f.email.Value()),
		Body:  strings.TrimSpace(f.message.Value()),
	}
}

func (f *Form) value(fl Field) string {
	switch fl {
	case FieldEmail:
		return f.email.Value()
	case FieldMessage:
		return f.message.Value()
	default:
		return f.name.Value()
	}
}

// ValidField reports whether v is acceptable for fl.
func ValidField(fl Field, v string) bool {
	v = strings.TrimSpace(v)
	if fl == FieldEmail {
		return emailPattern.MatchString(v)
	}
	return v != ""
}

func (f *Form) validateField(fl Field) bool {
	ok := ValidField(fl, f.value(fl))
	f.invalid[fl] = !ok
	return ok
}

// Validate checks every field and returns the invalid ones.
func (f *Form) Validate() []Field {
	var bad []Field
	for fl := Field(0); fl < fieldCount; fl++ {
		if !f.validateField(fl) {
			bad = append(bad, fl)
		}
	}
	return bad
}

// Update routes input to the focused field. It reports submit when the
// visitor asks to send and cancel when they leave the form.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	switch m := msg.(type) {
	case ResetMsg:
		if m.tag == f.resetTag && (f.status == Sent || f.status == Failed) {
			f.status = Idle
		}
		return nil, false, false
	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			f.Blur()
			return nil, false, true
		case "ctrl+s":
			return nil, true, false
		case "tab":
			return f.cycle(1), false, false
		case "shift+tab":
			return f.cycle(-1), false, false
		case "enter":
			if f.focus != FieldMessage {
				return f.cycle(1), false, false
			}
		}
	}
	if !f.active {
		return nil, false, false
	}

	before := f.value(f.focus)
	var cmd tea.Cmd
	switch f.focus {
	case FieldEmail:
		f.email, cmd = f.email.Update(msg)
	case FieldMessage:
		f.message, cmd = f.message.Update(msg)
	default:
		f.name, cmd = f.name.Update(msg)
	}
	if f.value(f.focus) != before {
		f.validateField(f.focus)
	}
	return cmd, false, false
}

// Begin validates every field and moves to Sending. While a submission is
// in flight further attempts return ErrBusy.
func (f *Form) Begin() (relay.Message, *Notice, error) {
	if f.status == Sending {
		events.Contact.Reject(events.ContactReasonBusy, nil)
		return relay.Message{}, nil, ErrBusy
	}
	if bad := f.Validate(); len(bad) > 0 {
		names := make([]string, len(bad))
		for i, fl := range bad {
			names[i] = fl.String()
		}
		events.Contact.Reject(events.ContactReasonInvalid, names)
		return relay.Message{}, &Notice{Text: InvalidText, Kind: NoticeError, Duration: ErrorDuration}, ErrInvalid
	}
	msg := f.Message()
	f.status = Sending
	f.resetTag++
	events.Contact.Submit(msg.Name, msg.Email)
	return msg, nil, nil
}

// Queued records the id the relay assigned to the in-flight message.
func (f *Form) Queued(id string) {
	f.pending = id
}

// Abort leaves Sending without an outcome, e.g. when the outbox refused the
// message. It behaves like a failed send.
func (f *Form) Abort() (*Notice, tea.Cmd) {
	if f.status != Sending {
		return nil, nil
	}
	f.pending = ""
	return f.finish(false)
}

// Resolve applies a relay result. Results for other submissions are ignored.
func (f *Form) Resolve(res relay.Result) (*Notice, tea.Cmd) {
	if f.status != Sending || res.ID != f.pending {
		return nil, nil
	}
	f.pending = ""
	events.Contact.Outcome(res.ID, res.OK())
	return f.finish(res.OK())
}

func (f *Form) finish(ok bool) (*Notice, tea.Cmd) {
	f.resetTag++
	tag := f.resetTag
	reset := tea.Tick(ResetDelay, func(time.Time) tea.Msg { return ResetMsg{tag: tag} })
	if !ok {
		f.status = Failed
		return &Notice{Text: FailedText, Kind: NoticeError, Duration: ErrorDuration}, reset
	}
	f.status = Sent
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.invalid = [fieldCount]bool{}
	return &Notice{Text: SentText, Kind: NoticeSuccess, Duration: SuccessDuration}, reset
}

// PendingReset is the ResetMsg the current outcome is waiting for.
func (f *Form) PendingReset() ResetMsg {
	return ResetMsg{tag: f.resetTag}
}

// FieldView renders one input.
func (f *Form) FieldView(fl Field) string {
	switch fl {
	case FieldEmail:
		return f.email.View()
	case FieldMessage:
		return f.message.View()
	default:
		return f.name.View()
	}
}
