// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpamatch/matchboard/config"
	"github.com/jpamatch/matchboard/mail"
	"github.com/jpamatch/matchboard/middleware"
	"github.com/jpamatch/matchboard/models"
)

type ContactHandler struct {
	db     *sql.DB
	cfg    config.Config
	mailer mail.Sender
}

func NewContactHandler(db *sql.DB, cfg config.Config, mailer mail.Sender) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg, mailer: mailer}
}

// RelayContact handles POST /api/contact
// Resolves the post author, appends a best-effort contact log entry, then
// sends the author notification and a sender confirmation. The confirmation
// is independent: its failure is reported in the ack, never as an error.
func (h *ContactHandler) RelayContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PostID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "postId is required")
		return
	}
	if strings.TrimSpace(req.SenderName) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "senderName is required")
		return
	}
	if strings.TrimSpace(req.SenderEmail) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "senderEmail is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	// Resolve the author from storage. Title and category for the mail come
	// from here too, never from the client payload.
	var title, postType, authorName, authorEmail string
	err := h.db.QueryRow(`
		SELECT title, post_type, author_name, author_email
		FROM post
		WHERE id = $1
	`, req.PostID).Scan(&title, &postType, &authorName, &authorEmail)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post for contact", "post_id", req.PostID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Best-effort contact log. A logging failure must never block the send.
	_, err = h.db.Exec(`
		INSERT INTO contact_log (id, post_id, sender_name, sender_email, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), req.PostID, req.SenderName, req.SenderEmail, req.Message, time.Now().UTC())
	if err != nil {
		slog.Warn("contact log write failed", "post_id", req.PostID, "error", err)
	}

	category := models.CategoryFor(postType)

	err = h.mailer.Send(mail.Message{
		To:      authorEmail,
		Subject: models.SubjectFor(postType, title),
		Body:    mail.AuthorNotification(title, category.Label, req.SenderName, req.SenderEmail, req.Message),
	})
	if err != nil {
		slog.Error("author notification send failed", "post_id", req.PostID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to send message, please try again later")
		return
	}

	confirmationSent := true
	err = h.mailer.Send(mail.Message{
		To:      req.SenderEmail,
		Subject: mail.ConfirmationSubject,
		Body:    mail.SenderConfirmation(title, authorName, req.Message),
	})
	if err != nil {
		slog.Error("sender confirmation send failed", "post_id", req.PostID, "error", err)
		confirmationSent = false
	}

	slog.Info("contact relayed", "post_id", req.PostID, "confirmation_sent", confirmationSent)

	middleware.JSONResponse(w, http.StatusOK, models.ContactResponse{
		Message:          "Message sent to the post author",
		ConfirmationSent: confirmationSent,
	})
}

// SendTestEmail handles POST /api/test-email
// Sends a smoke-test mail to the configured relay account itself.
func (h *ContactHandler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.MailConfigured() {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Mail relay is not configured")
		return
	}

	err := h.mailer.Send(mail.Message{
		To:      h.cfg.SMTPUser,
		Subject: mail.TestSubject,
		Body:    mail.TestBody(time.Now()),
	})
	if err != nil {
		slog.Error("test email send failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to send test email")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TestEmailResponse{
		Message: "Test email sent",
		SentTo:  h.cfg.SMTPUser,
	})
}
