// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API,
plus the category registry for the three posting forms.

# Request Types

Types for parsing incoming JSON:

  - CreatePostRequest: common fields plus every optional category field
  - DeletePostRequest: pin
  - ContactRequest: postId, senderName, senderEmail, message

# Response Types

Types for JSON responses:

  - Post: the flat client-facing listing (doubles as the create response)
  - DeletePostResponse: message
  - ContactResponse: message, confirmation_sent
  - TestEmailResponse: message, sent_to
  - ErrorResponse: error, message

# Domain Types

  - Post: listing with category fields merged onto one namespace
  - ContactLog: one recorded contact attempt
  - Category: per-category label, mail subject template, detail table

# Constants

Post categories:

	TypeTeamRecruit    = "team-recruit"
	TypePlayerSeeking  = "player-seeking"
	TypeDivisionCreate = "division-create"

Unknown category strings are accepted; CategoryFor falls back to a generic
descriptor with no detail table.
*/
package models
