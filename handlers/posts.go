// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpamatch/matchboard/config"
	"github.com/jpamatch/matchboard/middleware"
	"github.com/jpamatch/matchboard/models"
)

type PostHandler struct {
	db  *sql.DB
	cfg config.Config
}

func NewPostHandler(db *sql.DB, cfg config.Config) *PostHandler {
	return &PostHandler{db: db, cfg: cfg}
}

// postSelect joins the detail tables onto the post so every read comes back
// flat. UNIQUE(post_id) on the detail tables means the join can match at most
// one row per table. Placeholders, when appended, must continue from $1.
const postSelect = `
	SELECT p.id, p.title, p.content, p.author_name, p.author_email,
	       p.post_type, p.created_at,
	       t.nickname, t.needed_players, t.team_location, t.team_location_detail,
	       t.team_jpa_history, t.team_skill_level, t.team_game_type,
	       t.team_frequency, t.team_availability, t.team_self_intro,
	       s.nickname, s.player_count, s.player_gender, s.player_age,
	       s.player_location, s.player_location_detail, s.player_experience,
	       s.jpa_history, s.jpa_history_text, s.player_level, s.player_game_type,
	       s.player_frequency, s.player_availability, s.player_self_intro,
	       d.division_location, d.division_shop, d.division_teams,
	       d.division_game_type, d.division_day
	FROM post p
	LEFT JOIN team_recruit_info t ON t.post_id = p.id
	LEFT JOIN player_seeking_info s ON s.post_id = p.id
	LEFT JOIN division_create_info d ON d.post_id = p.id
`

// ListPosts handles GET /api/posts
// Returns every post, flattened, newest first. Ordering is part of the API
// contract; clients do all filtering themselves.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(postSelect + ` ORDER BY p.created_at DESC`)
	if err != nil {
		slog.Error("failed to query posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Error("failed to scan post", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		slog.Error("post row iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "post id is required")
		return
	}

	post, err := scanPost(h.db.QueryRow(postSelect+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post", "post_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// CreatePost handles POST /api/posts
// The parent row and the category detail row are written in one transaction
// so a detail failure can never leave a visible half-created post.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if strings.TrimSpace(req.Title) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}
	if strings.TrimSpace(req.AuthorName) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "author_name is required")
		return
	}
	if _, err := netmail.ParseAddress(req.AuthorEmail); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "author_email must be a valid email address")
		return
	}
	if !isFourDigitPIN(req.DeletePin) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "delete_pin must be exactly 4 digits")
		return
	}

	postID := uuid.NewString()
	createdAt := time.Now().UTC()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO post (id, title, content, author_name, author_email, post_type, delete_pin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, postID, req.Title, req.Content, req.AuthorName, req.AuthorEmail, req.PostType, req.DeletePin, createdAt)

	if err != nil {
		slog.Error("post insert failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	// Unknown post types still get a post row, just no detail row.
	if insertDetail, ok := detailInserters[req.PostType]; ok {
		if err := insertDetail(tx, postID, &req); err != nil {
			slog.Error("post detail insert failed",
				"table", models.Categories[req.PostType].ChildTable,
				"error", err,
			)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
			return
		}
	} else if req.PostType != "" {
		slog.Warn("unknown post type, creating post without details", "post_type", req.PostType)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit post creation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "post_id", postID, "post_type", req.PostType)

	middleware.JSONResponse(w, http.StatusCreated, buildPost(postID, createdAt, &req))
}

// DeletePost handles DELETE /api/posts/{id}
// Authorization is verbatim comparison of the stored 4-digit PIN. The CASCADE
// foreign keys remove the detail row and any contact log entries.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "post id is required")
		return
	}

	var req models.DeletePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var storedPin string
	err := h.db.QueryRow(`SELECT delete_pin FROM post WHERE id = $1`, id).Scan(&storedPin)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post for delete", "post_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if storedPin != req.Pin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid PIN")
		return
	}

	if _, err := h.db.Exec(`DELETE FROM post WHERE id = $1`, id); err != nil {
		slog.Error("failed to delete post", "post_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	slog.Info("post deleted", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePostResponse{
		Message: "Post deleted",
	})
}

// detailInserters dispatches the second insert of the create flow by
// category; keys must match models.Categories.
var detailInserters = map[string]func(tx *sql.Tx, postID string, req *models.CreatePostRequest) error{
	models.TypeTeamRecruit:    insertTeamRecruitInfo,
	models.TypePlayerSeeking:  insertPlayerSeekingInfo,
	models.TypeDivisionCreate: insertDivisionCreateInfo,
}

func insertTeamRecruitInfo(tx *sql.Tx, postID string, req *models.CreatePostRequest) error {
	_, err := tx.Exec(`
		INSERT INTO team_recruit_info
			(post_id, nickname, needed_players, team_location, team_location_detail,
			 team_jpa_history, team_skill_level, team_game_type, team_frequency,
			 team_availability, team_self_intro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, postID,
		trimOrNil(req.Nickname), trimOrNil(req.NeededPlayers),
		trimOrNil(req.TeamLocation), trimOrNil(req.TeamLocationDetail),
		trimOrNil(req.TeamJpaHistory), trimOrNil(req.TeamSkillLevel),
		trimOrNil(req.TeamGameType), trimOrNil(req.TeamFrequency),
		trimOrNil(req.TeamAvailability), trimOrNil(req.TeamSelfIntro))
	if err != nil {
		return fmt.Errorf("insert team_recruit_info: %w", err)
	}
	return nil
}

func insertPlayerSeekingInfo(tx *sql.Tx, postID string, req *models.CreatePostRequest) error {
	_, err := tx.Exec(`
		INSERT INTO player_seeking_info
			(post_id, nickname, player_count, player_gender, player_age,
			 player_location, player_location_detail, player_experience,
			 jpa_history, jpa_history_text, player_level, player_game_type,
			 player_frequency, player_availability, player_self_intro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, postID,
		trimOrNil(req.Nickname), trimOrNil(req.PlayerCount),
		trimOrNil(req.PlayerGender), trimOrNil(req.PlayerAge),
		trimOrNil(req.PlayerLocation), trimOrNil(req.PlayerLocationDetail),
		trimOrNil(req.PlayerExperience), trimOrNil(req.JpaHistory),
		trimOrNil(req.JpaHistoryText), trimOrNil(req.PlayerLevel),
		trimOrNil(req.PlayerGameType), trimOrNil(req.PlayerFrequency),
		trimOrNil(req.PlayerAvailability), trimOrNil(req.PlayerSelfIntro))
	if err != nil {
		return fmt.Errorf("insert player_seeking_info: %w", err)
	}
	return nil
}

func insertDivisionCreateInfo(tx *sql.Tx, postID string, req *models.CreatePostRequest) error {
	_, err := tx.Exec(`
		INSERT INTO division_create_info
			(post_id, division_location, division_shop, division_teams,
			 division_game_type, division_day)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, postID,
		trimOrNil(req.DivisionLocation), trimOrNil(req.DivisionShop),
		trimOrNil(req.DivisionTeams), trimOrNil(req.DivisionGameType),
		trimOrNil(req.DivisionDay))
	if err != nil {
		return fmt.Errorf("insert division_create_info: %w", err)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanPost reads one row of postSelect into a flat Post. Detail columns come
// back NULL when the post has no detail row or the field was absent.
func scanPost(s scanner) (models.Post, error) {
	var post models.Post
	var team [10]sql.NullString
	var player [14]sql.NullString
	var division [5]sql.NullString

	err := s.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorName,
		&post.AuthorEmail, &post.PostType, &post.CreatedAt,
		&team[0], &team[1], &team[2], &team[3], &team[4],
		&team[5], &team[6], &team[7], &team[8], &team[9],
		&player[0], &player[1], &player[2], &player[3], &player[4],
		&player[5], &player[6], &player[7], &player[8], &player[9],
		&player[10], &player[11], &player[12], &player[13],
		&division[0], &division[1], &division[2], &division[3], &division[4],
	)
	if err != nil {
		return models.Post{}, err
	}

	// nickname lives in both detail tables; team wins, matching the
	// original merge order. Only one can be non-NULL in practice.
	post.Nickname = firstValid(team[0], player[0])

	post.NeededPlayers = nullToPtr(team[1])
	post.TeamLocation = nullToPtr(team[2])
	post.TeamLocationDetail = nullToPtr(team[3])
	post.TeamJpaHistory = nullToPtr(team[4])
	post.TeamSkillLevel = nullToPtr(team[5])
	post.TeamGameType = nullToPtr(team[6])
	post.TeamFrequency = nullToPtr(team[7])
	post.TeamAvailability = nullToPtr(team[8])
	post.TeamSelfIntro = nullToPtr(team[9])

	post.PlayerCount = nullToPtr(player[1])
	post.PlayerGender = nullToPtr(player[2])
	post.PlayerAge = nullToPtr(player[3])
	post.PlayerLocation = nullToPtr(player[4])
	post.PlayerLocationDetail = nullToPtr(player[5])
	post.PlayerExperience = nullToPtr(player[6])
	post.JpaHistory = nullToPtr(player[7])
	post.JpaHistoryText = nullToPtr(player[8])
	post.PlayerLevel = nullToPtr(player[9])
	post.PlayerGameType = nullToPtr(player[10])
	post.PlayerFrequency = nullToPtr(player[11])
	post.PlayerAvailability = nullToPtr(player[12])
	post.PlayerSelfIntro = nullToPtr(player[13])

	post.DivisionLocation = nullToPtr(division[0])
	post.DivisionShop = nullToPtr(division[1])
	post.DivisionTeams = nullToPtr(division[2])
	post.DivisionGameType = nullToPtr(division[3])
	post.DivisionDay = nullToPtr(division[4])

	return post, nil
}

// buildPost assembles the flattened response for a just-created post without
// a second read. Only the declared category's fields are populated.
func buildPost(id string, createdAt time.Time, req *models.CreatePostRequest) models.Post {
	post := models.Post{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		PostType:    req.PostType,
		CreatedAt:   createdAt,
	}

	switch req.PostType {
	case models.TypeTeamRecruit:
		post.Nickname = trimOrNil(req.Nickname)
		post.NeededPlayers = trimOrNil(req.NeededPlayers)
		post.TeamLocation = trimOrNil(req.TeamLocation)
		post.TeamLocationDetail = trimOrNil(req.TeamLocationDetail)
		post.TeamJpaHistory = trimOrNil(req.TeamJpaHistory)
		post.TeamSkillLevel = trimOrNil(req.TeamSkillLevel)
		post.TeamGameType = trimOrNil(req.TeamGameType)
		post.TeamFrequency = trimOrNil(req.TeamFrequency)
		post.TeamAvailability = trimOrNil(req.TeamAvailability)
		post.TeamSelfIntro = trimOrNil(req.TeamSelfIntro)
	case models.TypePlayerSeeking:
		post.Nickname = trimOrNil(req.Nickname)
		post.PlayerCount = trimOrNil(req.PlayerCount)
		post.PlayerGender = trimOrNil(req.PlayerGender)
		post.PlayerAge = trimOrNil(req.PlayerAge)
		post.PlayerLocation = trimOrNil(req.PlayerLocation)
		post.PlayerLocationDetail = trimOrNil(req.PlayerLocationDetail)
		post.PlayerExperience = trimOrNil(req.PlayerExperience)
		post.JpaHistory = trimOrNil(req.JpaHistory)
		post.JpaHistoryText = trimOrNil(req.JpaHistoryText)
		post.PlayerLevel = trimOrNil(req.PlayerLevel)
		post.PlayerGameType = trimOrNil(req.PlayerGameType)
		post.PlayerFrequency = trimOrNil(req.PlayerFrequency)
		post.PlayerAvailability = trimOrNil(req.PlayerAvailability)
		post.PlayerSelfIntro = trimOrNil(req.PlayerSelfIntro)
	case models.TypeDivisionCreate:
		post.DivisionLocation = trimOrNil(req.DivisionLocation)
		post.DivisionShop = trimOrNil(req.DivisionShop)
		post.DivisionTeams = trimOrNil(req.DivisionTeams)
		post.DivisionGameType = trimOrNil(req.DivisionGameType)
		post.DivisionDay = trimOrNil(req.DivisionDay)
	}

	return post
}

// trimOrNil normalizes optional text input: whitespace is trimmed and an
// empty result becomes nil, so storage never sees empty-string placeholders.
func trimOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func firstValid(candidates ...sql.NullString) *string {
	for _, ns := range candidates {
		if ns.Valid {
			return &ns.String
		}
	}
	return nil
}

func isFourDigitPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
