// Package transcript accumulates live speech-to-text output.
//
// A recogniser emits two kinds of segments: provisional ones, which may be
// revised until the speaker pauses, and final ones, which never change.
// [Accumulator] keeps the finalized stream separately from the current
// provisional fragment and hands out the part that has not been analyzed
// yet using a high-water mark.
package transcript

import (
	"strings"
	"sync"
)

// Segment is one recogniser result.
type Segment struct {
	Text  string
	Final bool
}

// Accumulator is safe for concurrent use: the capture UI pushes segments
// while the analysis loop reads suffixes.
type Accumulator struct {
	mu          sync.Mutex
	finalized   strings.Builder
	provisional string
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Push records a segment. A final segment is appended to the finalized
// stream followed by a single space and clears the provisional fragment;
// a provisional segment replaces the previous one. Blank final segments are
// ignored.
func (a *Accumulator) Push(seg Segment) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !seg.Final {
		a.provisional = seg.Text
		return
	}

	a.provisional = ""
	text := strings.TrimSpace(seg.Text)
	if text == "" {
		return
	}
	a.finalized.WriteString(text)
	a.finalized.WriteByte(' ')
}

// Finalized returns the whole finalized stream.
func (a *Accumulator) Finalized() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finalized.String()
}

// Len is the byte length of the finalized stream; it is the value a
// high-water mark is compared against.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finalized.Len()
}

func (a *Accumulator) Provisional() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.provisional
}

// Display is the finalized stream followed by the provisional fragment.
func (a *Accumulator) Display() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finalized.String() + a.provisional
}

// Since returns the finalized text after mark, trimmed, and the mark that
// covers everything returned. A mark beyond the stream (after a Reset) is
// treated as zero.
func (a *Accumulator) Since(mark int) (string, int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	text := a.finalized.String()
	if mark < 0 || mark > len(text) {
		mark = 0
	}

	return strings.TrimSpace(text[mark:]), len(text)
}

// Reset drops everything, e.g. when a new capture starts.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.finalized.Reset()
	a.provisional = ""
}
