// Package mail delivers transactional email through a pluggable transport.
package mail

import (
	"context"
	"fmt"
	"strings"
	"sync"

	intconfig "travelapi/internal/config"
	"travelapi/internal/utils"
)

// Message is a plain-text email to a single recipient.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender abstracts the mail transport. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the transport selected by MAIL_TRANSPORT.
func NewSender(env intconfig.MailEnv) (Sender, error) {
	switch env.Transport {
	case "", "smtp":
		return NewSMTPSender(env), nil
	case "ses":
		return NewSESSender(context.Background(), env)
	case "log":
		return LogSender{From: env.DefaultSender}, nil
	default:
		return nil, fmt.Errorf("unknown MAIL_TRANSPORT %q", env.Transport)
	}
}

// LogSender only logs messages; handy for local development.
type LogSender struct {
	From string
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	from := msg.From
	if from == "" {
		from = s.From
	}
	utils.LogEvent("", "mail", "log_send", fmt.Sprintf("from=%s to=%s subject=%q", from, utils.RedactEmail(msg.To), msg.Subject))
	return nil
}

// Recorder keeps sent messages in memory. Err, when set, is returned from Send
// after recording.
type Recorder struct {
	mu     sync.Mutex
	Outbox []Message
	Err    error
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outbox = append(r.Outbox, msg)
	return r.Err
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.Outbox))
	copy(out, r.Outbox)
	return out
}

// headerSafe strips CR/LF so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
