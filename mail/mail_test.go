// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mail

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSend_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		sender *SMTP
	}{
		{"empty host", NewSMTP("", 587, "user", "pass", "user")},
		{"empty username", NewSMTP("smtp.example.com", 587, "", "pass", "")},
		{"empty password", NewSMTP("smtp.example.com", 587, "user", "", "user")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sender.Send(Message{To: "a@example.com", Subject: "s", Body: "b"})
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestAuthorNotification_EscapesHTML(t *testing.T) {
	body := AuthorNotification("<script>title</script>", "チーム募集", "Taro", "taro@example.com", "hello & goodbye")

	if strings.Contains(body, "<script>") {
		t.Error("expected interpolated values to be HTML-escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;title&lt;/script&gt;") {
		t.Error("expected escaped title in body")
	}
	if !strings.Contains(body, "hello &amp; goodbye") {
		t.Error("expected escaped message in body")
	}
	if !strings.Contains(body, "taro@example.com") {
		t.Error("expected sender email in body for direct reply")
	}
}

func TestSenderConfirmation(t *testing.T) {
	body := SenderConfirmation("Team Nine Ball", "Hanako", "please contact me")

	if !strings.Contains(body, "Team Nine Ball") {
		t.Error("expected post title in confirmation body")
	}
	if !strings.Contains(body, "Hanako") {
		t.Error("expected author name in confirmation body")
	}
	if !strings.Contains(body, "please contact me") {
		t.Error("expected the original message echoed in confirmation body")
	}
}

func TestTestBody(t *testing.T) {
	now := time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)
	body := TestBody(now)

	if !strings.Contains(body, "2025/07/15 09:30:00") {
		t.Errorf("expected formatted send time in test body, got %q", body)
	}
}
