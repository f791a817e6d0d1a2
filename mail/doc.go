// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mail wraps the external SMTP relay.

The Sender interface is the seam handlers depend on:

	type Sender interface {
		Send(msg Message) error
	}

NewSMTP builds the production implementation on gopkg.in/gomail.v2. Subject
lines come from the category table in models; this package only renders the
HTML bodies and dials the relay. Send returns ErrNotConfigured when
credentials are missing so callers can report misconfiguration instead of a
connection error.
*/
package mail
