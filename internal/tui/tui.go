package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin   = "login"
	pageBoard   = "board"
	pageHistory = "history"
)

// TUI runs the two terminal programs of the client: the login flow and
// the main loop with the capture board and history.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	interval  time.Duration
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, interval time.Duration, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		interval:  interval,
		logger:    log,
	}
}

// LoginFlow shows the sign in form until a login succeeds. notice is
// printed above the form, e.g. after an expired session.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.MeResponse, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.AuthService, notice),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.MeResponse{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.MeResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return models.MeResponse{}, ErrUserQuit
	}

	return result.me, nil
}

// MainLoop runs the board until the user quits or logs out. A capture
// left running on ctrl+c is closed by the caller.
func (t *TUI) MainLoop(ctx context.Context, me models.MeResponse) (logout bool, err error) {
	t.services.CaptureService.SetUsage(me.Usage)

	pages := map[string]tea.Model{
		pageBoard:   NewBoardModel(ctx, t.services, me.User, t.interval),
		pageHistory: NewHistoryModel(ctx, t.services.HistoryService),
	}

	root := NewRootModel(pages, pageBoard, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.logger.Info().Msg("signed out")
	}
	return result.logout, nil
}
