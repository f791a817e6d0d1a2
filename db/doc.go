// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses lib/pq against the managed database; "sqlite" uses the pure-Go
modernc.org/sqlite driver, which is what the tests run on (":memory:") and
what local development can use without a server.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - post: common fields for every listing category
  - team_recruit_info: team-recruit details (one row per post)
  - player_seeking_info: player-seeking details (one row per post)
  - division_create_info: division-create details (one row per post)
  - contact_log: append-only record of contact attempts

# Relationships

	post 1──1 team_recruit_info
	post 1──1 player_seeking_info
	post 1──1 division_create_info
	post 1──* contact_log

All foreign keys use ON DELETE CASCADE, so deleting a post removes its detail
row and its contact log. The detail tables carry UNIQUE(post_id).

# Placeholders

Queries throughout the repo use $1, $2, ... placeholders. lib/pq binds them
positionally; SQLite treats $N as named parameters that are assigned indexes
in order of first occurrence. Both agree as long as placeholders appear in
ascending order and are not repeated - keep queries that way.
*/
package db
