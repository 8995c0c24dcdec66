package models

// Usage is the caller's quota state for today.
type Usage struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// Remaining returns how many analysis calls are left today.
func (u Usage) Remaining() int {
	if u.Used >= u.Limit {
		return 0
	}
	return u.Limit - u.Used
}

// AnalysisRequest is the body of POST /api/analyze.
//
// NewTranscript holds only the part of the transcript that has not been
// analyzed yet; PreviousSummary replaces the already analyzed part as context.
type AnalysisRequest struct {
	NewTranscript   string         `json:"newTranscript"`
	PreviousSummary string         `json:"previousSummary,omitempty"`
	ExistingBlocks  []InsightBlock `json:"existingBlocks,omitempty"`
	ConversationID  *int64         `json:"conversationId,omitempty"`
}

// AnalysisResult is a validated analysis engine response.
type AnalysisResult struct {
	Operations []BlockOperation `json:"blocks"`
	Meta       MetaAnalysis     `json:"meta"`
}

// AnalysisResponse is returned to the client after a successful turn.
// Blocks carries the operations; the client merges them itself.
type AnalysisResponse struct {
	Blocks []BlockOperation `json:"blocks"`
	Meta   MetaAnalysis     `json:"meta"`
	Usage  Usage            `json:"usage"`
}
