// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the JPAMatch board API server.

JPAMatch is a bulletin board for a billiards-player matching community:
players post team-recruit, player-seeking, and division-create listings,
browse them, and contact posters by email through an SMTP relay.

# Starting the Server

The server requires a database URL via environment variable or CLI flag:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - SMTP_HOST / SMTP_PORT: mail relay (default: smtp.gmail.com:587)
  - SMTP_USER / SMTP_PASS: relay credentials
  - MAIL_FROM: sender address (defaults to SMTP_USER)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (posts, contact relay)
  - router: route definitions using Go 1.22+ routing, CORS-wrapped
  - middleware: CORS, logging, JSON helpers
  - models: request/response types and the category table
  - mail: SMTP relay client and mail bodies
  - db: connection opening and schema creation
  - config: configuration parsing

See package documentation for each component.
*/
package main
