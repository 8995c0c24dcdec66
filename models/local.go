package models

import "time"

// LocalSession is the server session persisted by the terminal client.
type LocalSession struct {
	Cookie  string
	Email   string
	SavedAt time.Time
}

// CaptureJournal is the client-side snapshot of an open capture, written
// after every analysis cycle. A journal found at start-up means the previous
// capture was never closed out.
type CaptureJournal struct {
	ConversationID int64
	Transcript     string
	Mark           int
	Summary        string
	Blocks         []InsightBlock
	Meta           *MetaAnalysis
	UpdatedAt      time.Time
}
