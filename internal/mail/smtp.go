package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	intconfig "travelapi/internal/config"

	"github.com/google/uuid"
)

// SMTPSender delivers through an SMTP relay. UseSSL dials implicit TLS
// (usually port 465); UseTLS upgrades a plain connection with STARTTLS.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
	UseSSL   bool
}

func NewSMTPSender(env intconfig.MailEnv) *SMTPSender {
	return &SMTPSender{
		Host:     env.Server,
		Port:     env.Port,
		Username: env.Username,
		Password: env.Password,
		From:     env.DefaultSender,
		UseTLS:   env.UseTLS,
		UseSSL:   env.UseSSL,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.Host == "" {
		return errors.New("SMTP host not configured")
	}
	if msg.From == "" {
		msg.From = s.From
	}
	if msg.From == "" {
		return errors.New("no sender address: set MAIL_DEFAULT_SENDER or MAIL_USERNAME")
	}

	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	conn, err := s.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("SMTP connect to %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("SMTP client: %w", err)
	}
	defer c.Close()

	if s.UseTLS && !s.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return errors.New("SMTP server does not support STARTTLS")
		}
		if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return fmt.Errorf("STARTTLS: %w", err)
		}
	}
	if s.Username != "" && s.Password != "" {
		if err := c.Auth(smtp.PlainAuth("", s.Username, s.Password, s.Host)); err != nil {
			return fmt.Errorf("AUTH: %w", err)
		}
	}

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(buildMessage(msg, s.Host, time.Now())); err != nil {
		w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end DATA: %w", err)
	}
	return c.Quit()
}

func (s *SMTPSender) dial(ctx context.Context, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 30 * time.Second}
	if s.UseSSL {
		td := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.Host}}
		return td.DialContext(ctx, "tcp", addr)
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

// buildMessage renders RFC 5322 headers plus a plain-text body with CRLF line endings.
func buildMessage(msg Message, host string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", headerSafe(msg.From))
	fmt.Fprintf(&buf, "To: %s\r\n", headerSafe(msg.To))
	fmt.Fprintf(&buf, "Subject: %s\r\n", headerSafe(msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.New().String(), headerSafe(host))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.Write(bytes.ReplaceAll(bytes.ReplaceAll([]byte(msg.Body), []byte("\r\n"), []byte("\n")), []byte("\n"), []byte("\r\n")))
	buf.WriteString("\r\n")
	return buf.Bytes()
}
