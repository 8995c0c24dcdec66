package models

import "time"

// EnergyLevel describes how lively the conversation is.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// Valid reports whether e is a known energy level.
func (e EnergyLevel) Valid() bool {
	return e == EnergyHigh || e == EnergyMedium || e == EnergyLow
}

// ActionKind distinguishes follow-up actions from decisions taken.
type ActionKind string

const (
	KindAction   ActionKind = "action"
	KindDecision ActionKind = "decision"
)

// Valid reports whether k is a known action kind.
func (k ActionKind) Valid() bool {
	return k == KindAction || k == KindDecision
}

// LanguagePattern is an observation about how people speak.
type LanguagePattern struct {
	Label   string `json:"label"`
	Meaning string `json:"meaning"`
}

// ActionItem is an action or decision heard in the conversation.
type ActionItem struct {
	Text string     `json:"text"`
	Kind ActionKind `json:"kind"`
}

// MetaAnalysis is the per-turn analysis of the conversation as a whole.
// Summary is the rolling summary fed back as context on the next turn.
type MetaAnalysis struct {
	SentimentOverall Sentiment         `json:"sentiment_overall"`
	Energy           EnergyLevel       `json:"energy"`
	LanguagePatterns []LanguagePattern `json:"language_patterns,omitempty"`
	Nudge            string            `json:"nudge,omitempty"`
	Summary          string            `json:"summary"`
	Actions          []ActionItem      `json:"actions,omitempty"`
}

// MetaSnapshot is one entry of the client-side meta history.
type MetaSnapshot struct {
	At   time.Time
	Meta MetaAnalysis
}
