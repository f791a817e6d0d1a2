// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"errors"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned by Send when the relay is missing credentials.
var ErrNotConfigured = errors.New("mail relay is not configured")

// Message is a single outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string // HTML
}

// Sender dispatches a message through the external mail relay. Handlers
// depend on this interface so tests can substitute a recorder.
type Sender interface {
	Send(msg Message) error
}

// SMTP sends mail through an external SMTP relay (gmail in the default
// deployment).
type SMTP struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send dials the relay and sends one message. Each call uses a fresh
// connection; the relay is external and no pooling is attempted.
func (s *SMTP) Send(msg Message) error {
	if s.host == "" || s.username == "" || s.password == "" {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}
