package workers

import (
	"context"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

// JournalRecovery flushes a capture journaled by a previous run.
type JournalRecovery struct {
	capture Recoverer
	logger  *logger.Logger
}

func NewJournalRecovery(capture Recoverer, log *logger.Logger) *JournalRecovery {
	return &JournalRecovery{capture: capture, logger: log}
}

func (j *JournalRecovery) Name() string { return "journal-recovery" }

func (j *JournalRecovery) Run(ctx context.Context) error {
	found, err := j.capture.Recover(ctx)
	if err != nil {
		return err
	}
	if found {
		j.logger.Info().Msg("unfinished capture from a previous run was saved")
	}
	return nil
}
