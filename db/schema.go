// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is written in the dialect subset shared by PostgreSQL and
// SQLite: TEXT ids, TIMESTAMP columns, ON DELETE CASCADE foreign keys.
// UNIQUE(post_id) on the detail tables guarantees at most one detail row per
// post, so the flattening join can never duplicate a parent.
const schema = `
-- Posts (common fields for every category)
CREATE TABLE IF NOT EXISTS post (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    author_name TEXT NOT NULL,
    author_email TEXT NOT NULL,
    post_type TEXT NOT NULL,
    delete_pin TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_post_created_at ON post(created_at);
CREATE INDEX IF NOT EXISTS idx_post_post_type ON post(post_type);

-- team-recruit details
CREATE TABLE IF NOT EXISTS team_recruit_info (
    post_id TEXT NOT NULL UNIQUE REFERENCES post(id) ON DELETE CASCADE,
    nickname TEXT,
    needed_players TEXT,
    team_location TEXT,
    team_location_detail TEXT,
    team_jpa_history TEXT,
    team_skill_level TEXT,
    team_game_type TEXT,
    team_frequency TEXT,
    team_availability TEXT,
    team_self_intro TEXT
);

-- player-seeking details
CREATE TABLE IF NOT EXISTS player_seeking_info (
    post_id TEXT NOT NULL UNIQUE REFERENCES post(id) ON DELETE CASCADE,
    nickname TEXT,
    player_count TEXT,
    player_gender TEXT,
    player_age TEXT,
    player_location TEXT,
    player_location_detail TEXT,
    player_experience TEXT,
    jpa_history TEXT,
    jpa_history_text TEXT,
    player_level TEXT,
    player_game_type TEXT,
    player_frequency TEXT,
    player_availability TEXT,
    player_self_intro TEXT
);

-- division-create details
CREATE TABLE IF NOT EXISTS division_create_info (
    post_id TEXT NOT NULL UNIQUE REFERENCES post(id) ON DELETE CASCADE,
    division_location TEXT,
    division_shop TEXT,
    division_teams TEXT,
    division_game_type TEXT,
    division_day TEXT
);

-- Contact attempts (append-only, never read back)
CREATE TABLE IF NOT EXISTS contact_log (
    id TEXT PRIMARY KEY,
    post_id TEXT NOT NULL REFERENCES post(id) ON DELETE CASCADE,
    sender_name TEXT NOT NULL,
    sender_email TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contact_log_post_id ON contact_log(post_id);
`
