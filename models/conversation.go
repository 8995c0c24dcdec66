// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultConversationTitle is the placeholder title a conversation carries
// until its first insight names it.
const DefaultConversationTitle = "New conversation"

// ConversationListLimit caps the number of summaries returned by a listing.
const ConversationListLimit = 50

// Conversation is the durable record of one capture session.
type Conversation struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"-"`
	Title      string         `json:"title"`
	Transcript string         `json:"transcript"`
	Blocks     []InsightBlock `json:"blocks"`
	Meta       *MetaAnalysis  `json:"meta"`
	StartedAt  time.Time      `json:"started_at"`
	EndedAt    *time.Time     `json:"ended_at"`
}

// ConversationSummary is a listing row: the block payload is replaced by its
// size.
type ConversationSummary struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at"`
	BlockCount int        `json:"block_count"`
}

// ConversationPatch is a partial update. Nil fields are left untouched.
type ConversationPatch struct {
	Transcript *string         `json:"transcript,omitempty"`
	Blocks     *[]InsightBlock `json:"blocks,omitempty"`
	Meta       *MetaAnalysis   `json:"meta,omitempty"`
	Title      *string         `json:"title,omitempty"`
	EndedAt    *time.Time      `json:"ended_at,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p ConversationPatch) IsEmpty() bool {
	return p.Transcript == nil && p.Blocks == nil && p.Meta == nil && p.Title == nil && p.EndedAt == nil
}
