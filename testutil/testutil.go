// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jpamatch/matchboard/config"
	"github.com/jpamatch/matchboard/db"
	"github.com/jpamatch/matchboard/mail"
	"github.com/jpamatch/matchboard/models"
)

// TestPin is the deletion PIN every test post is created with.
const TestPin = "1234"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The connection must stay open for the lifetime of the test; closing it
// drops the database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() config.Config {
	return config.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "board@example.com",
		SMTPPass:     "test-password",
		MailFrom:     "board@example.com",
	}
}

// CreateTestPost inserts a post of the given type (with a detail row for the
// known types) and returns its ID. The deletion PIN is TestPin.
func CreateTestPost(t *testing.T, conn *sql.DB, postType string) string {
	t.Helper()
	return CreateTestPostAt(t, conn, postType, "Test Post", time.Now().UTC())
}

// CreateTestPostAt is CreateTestPost with an explicit title and creation
// time, for tests that assert list ordering.
func CreateTestPostAt(t *testing.T, conn *sql.DB, postType, title string, createdAt time.Time) string {
	t.Helper()

	postID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO post (id, title, content, author_name, author_email, post_type, delete_pin, created_at)
		VALUES ($1, $2, 'Test content', 'Hanako', 'hanako@example.com', $3, $4, $5)
	`, postID, title, postType, TestPin, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	switch postType {
	case models.TypeTeamRecruit:
		_, err = conn.Exec(`
			INSERT INTO team_recruit_info (post_id, nickname, needed_players, team_location)
			VALUES ($1, 'billiard-cats', '2', 'kanto')
		`, postID)
	case models.TypePlayerSeeking:
		_, err = conn.Exec(`
			INSERT INTO player_seeking_info (post_id, nickname, player_count, player_location)
			VALUES ($1, 'lone-cue', '1', 'kansai')
		`, postID)
	case models.TypeDivisionCreate:
		_, err = conn.Exec(`
			INSERT INTO division_create_info (post_id, division_location, division_shop)
			VALUES ($1, 'tokyo', 'Cue Bar 9')
		`, postID)
	}
	if err != nil {
		t.Fatalf("Failed to create test post detail: %v", err)
	}

	return postID
}

// FakeMailer records sent messages instead of dialing a relay.
// Err fails every send; FailTo fails only sends to that address, which is how
// tests exercise the partial-failure path of the contact relay.
type FakeMailer struct {
	Sent   []mail.Message
	Err    error
	FailTo string
}

func (f *FakeMailer) Send(msg mail.Message) error {
	if f.Err != nil {
		return f.Err
	}
	if f.FailTo != "" && msg.To == f.FailTo {
		return fmt.Errorf("send to %s failed", msg.To)
	}
	f.Sent = append(f.Sent, msg)
	return nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
