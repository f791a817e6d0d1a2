// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the JPAMatch board API.

# Handler Types

Each handler is a struct with its dependencies injected via a constructor:

  - PostHandler: post lifecycle (list, create, detail, delete)
  - ContactHandler: contact relay and mail smoke test

	postHandler := handlers.NewPostHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(db, cfg, mailer)

# Post Lifecycle

	GET    /api/posts      → ListPosts (flattened, newest first)
	POST   /api/posts      → CreatePost (transactional two-table write)
	GET    /api/posts/{id} → GetPost (404 when absent)
	DELETE /api/posts/{id} → DeletePost (PIN check: 403 on mismatch)

CreatePost writes the common row and, for a known category, the detail row in
a single transaction. An unknown post_type is permissive: the post is created
with no detail row. Optional category fields are trimmed and normalized to
NULL so an empty string and an absent field are indistinguishable on read.

Deletion is authorized solely by the 4-digit PIN chosen at creation, compared
verbatim. There is no update operation.

# Contact Relay

	POST /api/contact    → RelayContact
	POST /api/test-email → SendTestEmail

RelayContact resolves the author address (404 when the post is gone, in which
case nothing is sent or logged), appends a best-effort contact_log row, sends
the author notification, then a sender confirmation. The author send failing
is a 500; the confirmation failing only flips confirmation_sent in the ack.
Subject lines come from the category table in models.
*/
package handlers
