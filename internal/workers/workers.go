package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

// Run runs the workers in order. A failed worker does not stop the ones
// after it; all failures are joined into the returned error.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		w.logger.Debug().Str("worker", worker.Name()).Msg("running startup worker")
		if err := worker.Run(ctx); err != nil {
			w.logger.Err(err).Str("worker", worker.Name()).Msg("startup worker failed")
			errs = append(errs, fmt.Errorf("%s: %w", worker.Name(), err))
		}
	}
	return errors.Join(errs...)
}
