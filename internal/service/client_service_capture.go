package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/adapter"
	"github.com/MKhiriev/go-insight-keeper/internal/insight"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/store"
	"github.com/MKhiriev/go-insight-keeper/internal/transcript"
	"github.com/MKhiriev/go-insight-keeper/models"
)

type clientCaptureService struct {
	adapter adapter.ServerAdapter
	journal store.LocalJournalRepository
	acc     *transcript.Accumulator
	now     func() time.Time
	logger  *logger.Logger

	mu             sync.Mutex
	active         bool
	conversationID int64
	mark           int
	summary        string
	blocks         []models.InsightBlock
	meta           *models.MetaAnalysis
	history        []models.MetaSnapshot
	usage          models.Usage
	turns          int
	lastAnalysis   time.Time
}

func NewClientCaptureService(serverAdapter adapter.ServerAdapter, journal store.LocalJournalRepository, logger *logger.Logger) ClientCaptureService {
	return &clientCaptureService{
		adapter: serverAdapter,
		journal: journal,
		acc:     transcript.New(),
		now:     time.Now,
		logger:  logger,
	}
}

func (c *clientCaptureService) Begin(ctx context.Context) (models.Conversation, error) {
	conversation, err := c.adapter.CreateConversation(ctx)
	if err != nil {
		return models.Conversation{}, mapAdapterError(err)
	}

	c.mu.Lock()
	c.acc.Reset()
	c.active = true
	c.conversationID = conversation.ID
	c.mark = 0
	c.summary = ""
	c.blocks = nil
	c.meta = nil
	c.history = nil
	c.turns = 0
	c.lastAnalysis = time.Time{}
	journal := c.journalLocked()
	c.mu.Unlock()

	c.saveJournal(ctx, journal)

	return conversation, nil
}

func (c *clientCaptureService) Push(seg transcript.Segment) {
	c.acc.Push(seg)
}

func (c *clientCaptureService) AnalyzePending(ctx context.Context) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return ErrNoActiveCapture
	}
	conversationID := c.conversationID
	mark := c.mark
	req := models.AnalysisRequest{
		PreviousSummary: c.summary,
		ExistingBlocks:  insight.Clone(c.blocks),
		ConversationID:  &conversationID,
	}
	c.mu.Unlock()

	segment, newMark := c.acc.Since(mark)
	if segment == "" {
		return nil
	}
	req.NewTranscript = segment

	resp, err := c.adapter.Analyze(ctx, req)
	if err != nil {
		mapped := mapAdapterError(err)
		var quotaErr *QuotaExceededError
		if errors.As(mapped, &quotaErr) {
			c.SetUsage(quotaErr.Usage)
		}
		return mapped
	}

	c.mu.Lock()
	if !c.active || c.conversationID != conversationID {
		// the capture was closed or replaced while the call was running
		c.mu.Unlock()
		return nil
	}
	merged := insight.Apply(c.blocks, resp.Blocks)
	meta := resp.Meta
	c.blocks = merged.Blocks
	c.mark = newMark
	c.summary = meta.Summary
	c.meta = &meta
	c.history = append(c.history, models.MetaSnapshot{At: c.now(), Meta: meta})
	c.usage = resp.Usage
	c.turns++
	c.lastAnalysis = c.now()
	journal := c.journalLocked()
	c.mu.Unlock()

	c.logger.Debug().
		Int64("conversation_id", conversationID).
		Int("added", merged.Added).
		Int("updated", merged.Updated).
		Int("removed", merged.Removed).
		Int("skipped", merged.Skipped).
		Msg("analysis merged")

	c.saveJournal(ctx, journal)

	return nil
}

func (c *clientCaptureService) AnalyzePasted(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyTranscript
	}

	if _, err := c.Begin(ctx); err != nil {
		return err
	}

	c.acc.Push(transcript.Segment{Text: text, Final: true})

	return c.AnalyzePending(ctx)
}

func (c *clientCaptureService) Close(ctx context.Context) error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = false
	journal := c.journalLocked()
	c.mu.Unlock()

	if err := c.flush(ctx, journal); err != nil {
		// the journal stays behind and Recover retries on the next start
		return err
	}

	c.clearJournal(ctx)
	return nil
}

func (c *clientCaptureService) Recover(ctx context.Context) (bool, error) {
	journal, err := c.journal.LoadJournal(ctx)
	if errors.Is(err, store.ErrJournalNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load capture journal: %w", err)
	}

	err = c.flush(ctx, journal)
	if err != nil && !errors.Is(err, store.ErrConversationNotFound) {
		return true, err
	}

	c.clearJournal(ctx)
	return true, nil
}

func (c *clientCaptureService) SetUsage(usage models.Usage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usage = usage
}

func (c *clientCaptureService) Snapshot() CaptureSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending, _ := c.acc.Since(c.mark)
	snapshot := CaptureSnapshot{
		Active:         c.active,
		ConversationID: c.conversationID,
		Transcript:     c.acc.Finalized(),
		Provisional:    c.acc.Provisional(),
		Pending:        pending,
		Blocks:         insight.Clone(c.blocks),
		MetaHistory:    append([]models.MetaSnapshot(nil), c.history...),
		Usage:          c.usage,
		Turns:          c.turns,
		LastAnalysis:   c.lastAnalysis,
	}
	if c.meta != nil {
		meta := *c.meta
		snapshot.Meta = &meta
	}

	return snapshot
}

func (c *clientCaptureService) flush(ctx context.Context, journal models.CaptureJournal) error {
	endedAt := c.now().UTC()
	blocks := journal.Blocks
	if blocks == nil {
		blocks = []models.InsightBlock{}
	}

	patch := models.ConversationPatch{
		Transcript: &journal.Transcript,
		Blocks:     &blocks,
		Meta:       journal.Meta,
		EndedAt:    &endedAt,
	}

	if err := c.adapter.UpdateConversation(ctx, journal.ConversationID, patch); err != nil {
		return fmt.Errorf("close out conversation %d: %w", journal.ConversationID, mapAdapterError(err))
	}

	return nil
}

func (c *clientCaptureService) journalLocked() models.CaptureJournal {
	journal := models.CaptureJournal{
		ConversationID: c.conversationID,
		Transcript:     c.acc.Finalized(),
		Mark:           c.mark,
		Summary:        c.summary,
		Blocks:         insight.Clone(c.blocks),
		UpdatedAt:      c.now(),
	}
	if c.meta != nil {
		meta := *c.meta
		journal.Meta = &meta
	}
	return journal
}

func (c *clientCaptureService) saveJournal(ctx context.Context, journal models.CaptureJournal) {
	if err := c.journal.SaveJournal(ctx, journal); err != nil {
		c.logger.Err(err).Str("func", "clientCaptureService.saveJournal").Msg("capture journal not saved")
	}
}

func (c *clientCaptureService) clearJournal(ctx context.Context) {
	if err := c.journal.ClearJournal(ctx); err != nil {
		c.logger.Err(err).Str("func", "clientCaptureService.clearJournal").Msg("capture journal not cleared")
	}
}
