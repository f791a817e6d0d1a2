// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Post category constants
const (
	TypeTeamRecruit    = "team-recruit"
	TypePlayerSeeking  = "player-seeking"
	TypeDivisionCreate = "division-create"
)

// Category describes everything that varies per post category. Subject
// selection, display labels, and the child-table dispatch in the create flow
// all read this table; do not branch on the category string anywhere else.
type Category struct {
	Label      string // display label used in mail bodies
	Subject    string // mail subject template, takes the post title
	ChildTable string // detail table for the normalized schema, "" when none
}

// Categories maps a post_type to its category descriptor. Unknown types fall
// back to fallbackCategory: the post is still created, with no detail row.
var Categories = map[string]Category{
	TypeTeamRecruit: {
		Label:      "チーム募集",
		Subject:    "【ビリヤードチーム募集】「%s」への加入希望",
		ChildTable: "team_recruit_info",
	},
	TypePlayerSeeking: {
		Label:      "チーム加入希望",
		Subject:    "【ビリヤードチーム加入希望】「%s」へのチーム募集",
		ChildTable: "player_seeking_info",
	},
	TypeDivisionCreate: {
		Label:      "ディビジョン作成",
		Subject:    "【ビリヤードディビジョン作成】「%s」への参加希望",
		ChildTable: "division_create_info",
	},
}

var fallbackCategory = Category{
	Label:   "一般投稿",
	Subject: "【ビリヤード仲間探し】投稿「%s」への連絡",
}

// CategoryFor returns the descriptor for a post_type, falling back to the
// generic category for unknown values.
func CategoryFor(postType string) Category {
	if c, ok := Categories[postType]; ok {
		return c
	}
	return fallbackCategory
}

// SubjectFor renders the contact-mail subject line for a post.
func SubjectFor(postType, title string) string {
	return fmt.Sprintf(CategoryFor(postType).Subject, title)
}
