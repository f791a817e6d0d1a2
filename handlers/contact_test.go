// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpamatch/matchboard/models"
	"github.com/jpamatch/matchboard/testutil"
)

func contactRequest(postID string) models.ContactRequest {
	return models.ContactRequest{
		PostID:      postID,
		SenderName:  "Taro",
		SenderEmail: "taro@example.com",
		Message:     "I would like to join your team.",
	}
}

func TestRelayContact_Success(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	postID := testutil.CreateTestPost(t, conn, models.TypeTeamRecruit)

	mailer := &testutil.FakeMailer{}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	req := testutil.MakeRequest("POST", "/api/contact", contactRequest(postID), nil)
	w := httptest.NewRecorder()
	handler.RelayContact(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ContactResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.ConfirmationSent {
		t.Error("Expected confirmation_sent true")
	}

	if len(mailer.Sent) != 2 {
		t.Fatalf("Expected 2 mails sent, got %d", len(mailer.Sent))
	}

	// Author notification goes out first, to the stored author address.
	author := mailer.Sent[0]
	if author.To != "hanako@example.com" {
		t.Errorf("Expected author mail to hanako@example.com, got %s", author.To)
	}
	if !strings.Contains(author.Subject, "【ビリヤードチーム募集】") {
		t.Errorf("Expected team-recruit subject, got %q", author.Subject)
	}
	if !strings.Contains(author.Subject, "Test Post") {
		t.Errorf("Expected stored post title in subject, got %q", author.Subject)
	}
	if !strings.Contains(author.Body, "taro@example.com") {
		t.Error("Expected sender email in the author notification body")
	}

	confirmation := mailer.Sent[1]
	if confirmation.To != "taro@example.com" {
		t.Errorf("Expected confirmation to taro@example.com, got %s", confirmation.To)
	}
	if !strings.Contains(confirmation.Body, "Hanako") {
		t.Error("Expected author name in the confirmation body")
	}

	// The attempt is recorded in the contact log.
	var count int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM contact_log WHERE post_id = $1`, postID).Scan(&count); err != nil {
		t.Fatalf("Failed to count contact log rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 contact log row, got %d", count)
	}
}

func TestRelayContact_SubjectUsesStoredTitle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	postID := testutil.CreateTestPost(t, conn, models.TypePlayerSeeking)

	mailer := &testutil.FakeMailer{}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	// Client-supplied title and type are advisory only.
	reqBody := contactRequest(postID)
	reqBody.PostTitle = "forged title"
	reqBody.PostType = models.TypeDivisionCreate

	req := testutil.MakeRequest("POST", "/api/contact", reqBody, nil)
	w := httptest.NewRecorder()
	handler.RelayContact(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if len(mailer.Sent) == 0 {
		t.Fatal("Expected at least one mail sent")
	}
	subject := mailer.Sent[0].Subject
	if strings.Contains(subject, "forged title") {
		t.Errorf("Subject must not use the client-supplied title, got %q", subject)
	}
	if !strings.Contains(subject, "Test Post") || !strings.Contains(subject, "【ビリヤードチーム加入希望】") {
		t.Errorf("Expected stored title and player-seeking subject, got %q", subject)
	}
}

func TestRelayContact_PostNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mailer := &testutil.FakeMailer{}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	req := testutil.MakeRequest("POST", "/api/contact", contactRequest("missing-id"), nil)
	w := httptest.NewRecorder()
	handler.RelayContact(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)

	if len(mailer.Sent) != 0 {
		t.Errorf("Expected no mails for a missing post, got %d", len(mailer.Sent))
	}
	var count int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM contact_log`).Scan(&count); err != nil {
		t.Fatalf("Failed to count contact log rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no contact log rows for a missing post, got %d", count)
	}
}

func TestRelayContact_AuthorSendFails(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	postID := testutil.CreateTestPost(t, conn, models.TypeTeamRecruit)

	mailer := &testutil.FakeMailer{Err: errors.New("relay down")}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	req := testutil.MakeRequest("POST", "/api/contact", contactRequest(postID), nil)
	w := httptest.NewRecorder()
	handler.RelayContact(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestRelayContact_ConfirmationFailureIsNotAnError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	postID := testutil.CreateTestPost(t, conn, models.TypeTeamRecruit)

	// Only the confirmation to the sender fails.
	mailer := &testutil.FakeMailer{FailTo: "taro@example.com"}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	req := testutil.MakeRequest("POST", "/api/contact", contactRequest(postID), nil)
	w := httptest.NewRecorder()
	handler.RelayContact(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ContactResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ConfirmationSent {
		t.Error("Expected confirmation_sent false when the confirmation send fails")
	}

	if len(mailer.Sent) != 1 || mailer.Sent[0].To != "hanako@example.com" {
		t.Errorf("Expected only the author notification to be sent, got %v", mailer.Sent)
	}
}

func TestRelayContact_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	postID := testutil.CreateTestPost(t, conn, models.TypeTeamRecruit)

	mailer := &testutil.FakeMailer{}
	handler := NewContactHandler(conn, testutil.GetTestConfig(), mailer)

	tests := []struct {
		name   string
		mutate func(r *models.ContactRequest)
	}{
		{"missing post id", func(r *models.ContactRequest) { r.PostID = "" }},
		{"missing sender name", func(r *models.ContactRequest) { r.SenderName = " " }},
		{"missing sender email", func(r *models.ContactRequest) { r.SenderEmail = "" }},
		{"missing message", func(r *models.ContactRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqBody := contactRequest(postID)
			tt.mutate(&reqBody)

			req := testutil.MakeRequest("POST", "/api/contact", reqBody, nil)
			w := httptest.NewRecorder()
			handler.RelayContact(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	if len(mailer.Sent) != 0 {
		t.Errorf("Expected no mails for invalid requests, got %d", len(mailer.Sent))
	}
}

func TestSendTestEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mailer := &testutil.FakeMailer{}
	cfg := testutil.GetTestConfig()
	handler := NewContactHandler(conn, cfg, mailer)

	req := testutil.MakeRequest("POST", "/api/test-email", nil, nil)
	w := httptest.NewRecorder()
	handler.SendTestEmail(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TestEmailResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SentTo != cfg.SMTPUser {
		t.Errorf("Expected test mail sent to %s, got %s", cfg.SMTPUser, resp.SentTo)
	}
	if len(mailer.Sent) != 1 {
		t.Fatalf("Expected 1 mail sent, got %d", len(mailer.Sent))
	}
	if mailer.Sent[0].To != cfg.SMTPUser {
		t.Errorf("Expected mail to %s, got %s", cfg.SMTPUser, mailer.Sent[0].To)
	}
}

func TestSendTestEmail_NotConfigured(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.SMTPUser = ""
	cfg.SMTPPass = ""

	mailer := &testutil.FakeMailer{}
	handler := NewContactHandler(conn, cfg, mailer)

	req := testutil.MakeRequest("POST", "/api/test-email", nil, nil)
	w := httptest.NewRecorder()
	handler.SendTestEmail(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if len(mailer.Sent) != 0 {
		t.Errorf("Expected no mails when the relay is unconfigured, got %d", len(mailer.Sent))
	}
}
