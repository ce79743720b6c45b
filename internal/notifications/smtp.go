package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer отправляет письма через обычный SMTP (STARTTLS на 587 порту)
type SMTPMailer struct {
	host string
	port int
	auth smtp.Auth
	from string
}

// NewSMTPMailer создает SMTP-отправителя
// При пустом user аутентификация не используется (локальный relay)
func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	return &SMTPMailer{
		host: host,
		port: port,
		auth: auth,
		from: from,
	}
}

// Send отправляет простое текстовое письмо
func (m *SMTPMailer) Send(ctx context.Context, to, subject, text string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("notifications: smtp send cancelled: %w", ctx.Err())
	default:
	}

	msg := buildMessage(m.from, to, subject, text)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	if err := smtp.SendMail(addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("notifications: smtp send to %s: %w", to, err)
	}

	return nil
}

func buildMessage(from, to, subject, text string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(text)
	return []byte(b.String())
}
