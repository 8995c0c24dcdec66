package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/tui"
	"github.com/MKhiriev/go-insight-keeper/models"
)

// closeTimeout bounds the final flush of an open capture on exit.
const closeTimeout = 15 * time.Second

// UI is the terminal front end driven by [App].
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.MeResponse, error)
	MainLoop(ctx context.Context, me models.MeResponse) (logout bool, err error)
}

// Startup runs the one-shot jobs before the first screen.
type Startup interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	startup  Startup
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, startup Startup, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, ui: ui, startup: startup, logger: log}, nil
}

// Run blocks until the user quits. SIGTERM ends the UI; the open capture
// is flushed in both cases.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.startup != nil {
		if err := a.startup.Run(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("startup finished with errors")
		}
	}

	me, err := a.services.AuthService.Restore(ctx)
	for {
		if err != nil {
			me, err = a.ui.LoginFlow(ctx, restoreNotice(err))
			if err != nil {
				return a.finish(ctx, err)
			}
		}

		logout, loopErr := a.ui.MainLoop(ctx, me)
		a.closeCapture(ctx)
		if loopErr != nil || !logout {
			return a.finish(ctx, loopErr)
		}

		a.logger.Info().Int64("user_id", me.User.UserID).Msg("user logged out")
		err = service.ErrUnauthenticated
	}
}

// closeCapture stops the analysis job and flushes the capture even when
// ctx is already cancelled.
func (a *App) closeCapture(ctx context.Context) {
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	if err := a.services.AnalysisJob.Stop(closeCtx); err != nil {
		a.logger.Err(err).Msg("capture was not saved, it will be retried on next start")
	}
}

func (a *App) finish(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tui.ErrUserQuit):
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("terminated")
		return nil
	}
	return fmt.Errorf("client: %w", err)
}

func restoreNotice(err error) string {
	if errors.Is(err, service.ErrUnauthenticated) {
		return ""
	}
	return "Could not restore the session: " + err.Error()
}
