// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

// CreatePostRequest carries every field any of the three posting forms can
// submit. Optional category fields arrive as plain strings; empty or
// all-whitespace values are normalized to "absent" before storage.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	PostType    string `json:"post_type"`
	DeletePin   string `json:"delete_pin"`

	// team-recruit fields
	Nickname           string `json:"nickname"`
	NeededPlayers      string `json:"needed_players"`
	TeamLocation       string `json:"team_location"`
	TeamLocationDetail string `json:"team_location_detail"`
	TeamJpaHistory     string `json:"team_jpa_history"`
	TeamSkillLevel     string `json:"team_skill_level"`
	TeamGameType       string `json:"team_game_type"`
	TeamFrequency      string `json:"team_frequency"`
	TeamAvailability   string `json:"team_availability"`
	TeamSelfIntro      string `json:"team_self_intro"`

	// player-seeking fields
	PlayerCount          string `json:"player_count"`
	PlayerGender         string `json:"player_gender"`
	PlayerAge            string `json:"player_age"`
	PlayerLocation       string `json:"player_location"`
	PlayerLocationDetail string `json:"player_location_detail"`
	PlayerExperience     string `json:"player_experience"`
	JpaHistory           string `json:"jpa_history"`
	JpaHistoryText       string `json:"jpa_history_text"`
	PlayerLevel          string `json:"player_level"`
	PlayerGameType       string `json:"player_game_type"`
	PlayerFrequency      string `json:"player_frequency"`
	PlayerAvailability   string `json:"player_availability"`
	PlayerSelfIntro      string `json:"player_self_intro"`

	// division-create fields
	DivisionLocation string `json:"division_location"`
	DivisionShop     string `json:"division_shop"`
	DivisionTeams    string `json:"division_teams"`
	DivisionGameType string `json:"division_game_type"`
	DivisionDay      string `json:"division_day"`
}

type DeletePostRequest struct {
	Pin string `json:"pin"`
}

// ContactRequest is the body of POST /api/contact. PostTitle and PostType are
// accepted for compatibility with older clients but ignored: the mail is
// always built from the stored post so a sender cannot spoof them.
type ContactRequest struct {
	PostID      string `json:"postId"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	Message     string `json:"message"`
	PostTitle   string `json:"postTitle"`
	PostType    string `json:"postType"`
}

// Response types

type DeletePostResponse struct {
	Message string `json:"message"`
}

type ContactResponse struct {
	Message          string `json:"message"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

type TestEmailResponse struct {
	Message string `json:"message"`
	SentTo  string `json:"sent_to"`
}

// Domain types

// Post is the client-facing shape of a listing. Category-specific fields are
// merged onto the same namespace regardless of how they are stored, so the
// JSON is always flat; fields of other categories are never populated.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	PostType    string    `json:"post_type"`
	DeletePin   string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`

	// team-recruit fields (nickname is shared with player-seeking)
	Nickname           *string `json:"nickname,omitempty"`
	NeededPlayers      *string `json:"needed_players,omitempty"`
	TeamLocation       *string `json:"team_location,omitempty"`
	TeamLocationDetail *string `json:"team_location_detail,omitempty"`
	TeamJpaHistory     *string `json:"team_jpa_history,omitempty"`
	TeamSkillLevel     *string `json:"team_skill_level,omitempty"`
	TeamGameType       *string `json:"team_game_type,omitempty"`
	TeamFrequency      *string `json:"team_frequency,omitempty"`
	TeamAvailability   *string `json:"team_availability,omitempty"`
	TeamSelfIntro      *string `json:"team_self_intro,omitempty"`

	// player-seeking fields
	PlayerCount          *string `json:"player_count,omitempty"`
	PlayerGender         *string `json:"player_gender,omitempty"`
	PlayerAge            *string `json:"player_age,omitempty"`
	PlayerLocation       *string `json:"player_location,omitempty"`
	PlayerLocationDetail *string `json:"player_location_detail,omitempty"`
	PlayerExperience     *string `json:"player_experience,omitempty"`
	JpaHistory           *string `json:"jpa_history,omitempty"`
	JpaHistoryText       *string `json:"jpa_history_text,omitempty"`
	PlayerLevel          *string `json:"player_level,omitempty"`
	PlayerGameType       *string `json:"player_game_type,omitempty"`
	PlayerFrequency      *string `json:"player_frequency,omitempty"`
	PlayerAvailability   *string `json:"player_availability,omitempty"`
	PlayerSelfIntro      *string `json:"player_self_intro,omitempty"`

	// division-create fields
	DivisionLocation *string `json:"division_location,omitempty"`
	DivisionShop     *string `json:"division_shop,omitempty"`
	DivisionTeams    *string `json:"division_teams,omitempty"`
	DivisionGameType *string `json:"division_game_type,omitempty"`
	DivisionDay      *string `json:"division_day,omitempty"`
}

// ContactLog records one contact attempt against a post. Write-once and
// best-effort: it is never read back by the application.
type ContactLog struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
