// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsightType classifies an insight block.
type InsightType string

const (
	Pattern     InsightType = "pattern"
	Tension     InsightType = "tension"
	Assumption  InsightType = "assumption"
	Opportunity InsightType = "opportunity"
)

// InsightTypes lists every accepted block type in display order.
var InsightTypes = []InsightType{Pattern, Tension, Assumption, Opportunity}

// Valid reports whether t belongs to the closed set of block types.
func (t InsightType) Valid() bool {
	for _, known := range InsightTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Sentiment is the emotional tone of a block or of the whole conversation.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Tense    Sentiment = "tense"
	Negative Sentiment = "negative"
)

// Valid reports whether s is one of the known sentiment values.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Tense, Negative:
		return true
	}
	return false
}

const (
	// MinStrength and MaxStrength bound InsightBlock.Strength.
	MinStrength = 1
	MaxStrength = 5
)

// Inspiration is a quotation that puts a block into a wider perspective.
type Inspiration struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Context string `json:"context"`
}

// InsightBlock is a single structured observation about a conversation.
// ID is assigned by the analysis engine on creation and stays stable across
// updates.
type InsightBlock struct {
	ID           string        `json:"id"`
	Type         InsightType   `json:"type"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Quote        string        `json:"quote,omitempty"`
	Questions    []string      `json:"questions,omitempty"`
	Sentiment    Sentiment     `json:"sentiment,omitempty"`
	Strength     int           `json:"strength"`
	Inspirations []Inspiration `json:"inspirations,omitempty"`
}

// BlockDigest is the reduced form of an InsightBlock sent back to the
// analysis engine as context.
type BlockDigest struct {
	ID       string      `json:"id"`
	Type     InsightType `json:"type"`
	Title    string      `json:"title"`
	Summary  string      `json:"summary"`
	Strength int         `json:"strength"`
}

// BlockAction is the discriminator of a BlockOperation.
type BlockAction string

const (
	ActionAdd    BlockAction = "add"
	ActionUpdate BlockAction = "update"
	ActionRemove BlockAction = "remove"
)

// BlockOperation is one entry of the operation list returned by the analysis
// engine. Action selects the variant:
//
//   - add: ID, Type, Title, Summary and Strength are required;
//   - update: ID is required, every other non-nil field overwrites the block;
//   - remove: only ID is read.
//
// Nil pointers and nil slices mean "not present".
type BlockOperation struct {
	Action       BlockAction   `json:"action"`
	ID           string        `json:"id"`
	Type         *InsightType  `json:"type,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Summary      *string       `json:"summary,omitempty"`
	Quote        *string       `json:"quote,omitempty"`
	Questions    []string      `json:"questions,omitempty"`
	Sentiment    *Sentiment    `json:"sentiment,omitempty"`
	Strength     *int          `json:"strength,omitempty"`
	Inspirations []Inspiration `json:"inspirations,omitempty"`
}

// ToBlock materialises an add operation as a new block.
func (op BlockOperation) ToBlock() InsightBlock {
	block := InsightBlock{ID: op.ID}
	op.ApplyTo(&block)
	return block
}

// ApplyTo overwrites the fields of block that are present in op.
func (op BlockOperation) ApplyTo(block *InsightBlock) {
	if op.Type != nil {
		block.Type = *op.Type
	}
	if op.Title != nil {
		block.Title = *op.Title
	}
	if op.Summary != nil {
		block.Summary = *op.Summary
	}
	if op.Quote != nil {
		block.Quote = *op.Quote
	}
	if op.Questions != nil {
		block.Questions = append([]string(nil), op.Questions...)
	}
	if op.Sentiment != nil {
		block.Sentiment = *op.Sentiment
	}
	if op.Strength != nil {
		block.Strength = *op.Strength
	}
	if op.Inspirations != nil {
		block.Inspirations = append([]Inspiration(nil), op.Inspirations...)
	}
}
