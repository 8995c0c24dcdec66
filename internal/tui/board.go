package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/internal/transcript"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	boardRefreshEvery  = time.Second
	transcriptTailSize = 600
)

// BoardModel is the capture screen. The input line stands in for the
// speech recogniser: what is typed is the provisional segment and enter
// finalizes it. Insight cards and the meta analysis are redrawn from the
// capture snapshot once a second.
type BoardModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User
	interval time.Duration

	readClipboard func() (string, error)

	input          textinput.Model
	snapshot       service.CaptureSnapshot
	countdown      time.Duration
	inFlight       bool
	capturing      bool
	busy           bool
	showTranscript bool
	status         string
	errMsg         string
}

func NewBoardModel(ctx context.Context, services *service.ClientServices, user models.User, interval time.Duration) *BoardModel {
	input := textinput.New()
	input.Placeholder = "start capture with ctrl+s, then speak (type) here"
	input.CharLimit = 2000
	input.Width = 72
	input.Focus()

	return &BoardModel{
		ctx:           ctx,
		services:      services,
		user:          user,
		interval:      interval,
		readClipboard: clipboard.ReadAll,
		input:         input,
	}
}

func (m *BoardModel) Init() tea.Cmd {
	m.refresh()
	return tea.Batch(textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(boardRefreshEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case captureStartedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.capturing = true
		m.errMsg = ""
		m.status = "Capturing"
		m.refresh()
		return m, nil

	case captureStoppedMsg:
		m.busy = false
		m.capturing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.status = "Conversation saved"
		}
		m.refresh()
		return m, nil

	case pasteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
			m.status = "Pasted text analyzed"
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.capture):
		if m.busy {
			return m, nil
		}
		m.busy = true
		if m.capturing {
			m.status = "Saving..."
			return m, m.cmdStop()
		}
		m.status = "Starting..."
		return m, m.cmdStart()

	case key.Matches(msg, keys.analyze):
		if m.capturing {
			m.services.AnalysisJob.Trigger()
			m.status = "Analyzing now"
		}
		return m, nil

	case key.Matches(msg, keys.paste):
		if m.busy {
			return m, nil
		}
		if m.capturing {
			m.status = "Stop the capture before pasting"
			return m, nil
		}
		m.busy = true
		m.status = "Analyzing pasted text..."
		return m, m.cmdPaste()

	case key.Matches(msg, keys.history):
		if m.capturing || m.busy {
			m.status = "Stop the capture to browse history"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }

	case key.Matches(msg, keys.logout):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLogout()

	case key.Matches(msg, keys.transcript):
		m.showTranscript = !m.showTranscript
		return m, nil

	case key.Matches(msg, keys.enter):
		if m.capturing {
			m.services.CaptureService.Push(transcript.Segment{Text: m.input.Value(), Final: true})
			m.input.Reset()
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.capturing {
		m.services.CaptureService.Push(transcript.Segment{Text: m.input.Value()})
	}
	return m, cmd
}

func (m *BoardModel) refresh() {
	m.snapshot = m.services.CaptureService.Snapshot()
	m.countdown = m.services.AnalysisJob.Countdown()
	m.inFlight = m.services.AnalysisJob.InFlight()

	if m.capturing {
		if err := m.services.AnalysisJob.LastError(); err != nil {
			m.errMsg = humanizeError(err)
		} else {
			m.errMsg = ""
		}
	}
}

func (m *BoardModel) cmdStart() tea.Cmd {
	ctx := m.ctx
	services := m.services
	interval := m.interval

	return func() tea.Msg {
		if _, err := services.CaptureService.Begin(ctx); err != nil {
			return captureStartedMsg{err: err}
		}
		services.AnalysisJob.Start(ctx, interval)
		return captureStartedMsg{}
	}
}

func (m *BoardModel) cmdStop() tea.Cmd {
	ctx := m.ctx
	job := m.services.AnalysisJob

	return func() tea.Msg {
		return captureStoppedMsg{err: job.Stop(ctx)}
	}
}

func (m *BoardModel) cmdPaste() tea.Cmd {
	ctx := m.ctx
	capture := m.services.CaptureService
	readClipboard := m.readClipboard

	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			return pasteDoneMsg{err: fmt.Errorf("read clipboard: %w", err)}
		}

		analyzeErr := capture.AnalyzePasted(ctx, text)
		// the pasted conversation is saved even when the analysis failed
		closeErr := capture.Close(ctx)
		if analyzeErr != nil {
			return pasteDoneMsg{err: analyzeErr}
		}
		return pasteDoneMsg{err: closeErr}
	}
}

func (m *BoardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	services := m.services
	capturing := m.capturing

	return func() tea.Msg {
		if capturing {
			_ = services.AnalysisJob.Stop(ctx)
		}
		return LogoutResult{Err: services.AuthService.Logout(ctx)}
	}
}

func (m *BoardModel) View() string {
	snap := m.snapshot
	var b strings.Builder

	name := m.user.DisplayName
	if name == "" {
		name = m.user.Email
	}
	fmt.Fprintf(&b, "%s · %s\n", name, formatUsage(snap.Usage))

	switch {
	case m.capturing && m.inFlight:
		b.WriteString("● REC  analyzing...")
	case m.capturing:
		fmt.Fprintf(&b, "● REC  next analysis in %s", formatCountdown(m.countdown))
	default:
		b.WriteString("○ idle")
	}
	if snap.Turns > 0 {
		fmt.Fprintf(&b, "  · %d turns", snap.Turns)
	}
	if m.status != "" {
		fmt.Fprintf(&b, "  · %s", m.status)
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if trend := renderMetaTrend(snap.MetaHistory); trend != "" {
		b.WriteString("\n")
		b.WriteString(trend)
		b.WriteString("\n")
	}
	if meta := renderMeta(snap.Meta); meta != "" {
		b.WriteString("\n")
		b.WriteString(meta)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderBlocks(snap.Blocks))
	b.WriteString("\n\n")

	if m.showTranscript {
		b.WriteString(snap.Transcript)
	} else {
		b.WriteString(tail(snap.Transcript, transcriptTailSize))
	}
	if snap.Provisional != "" {
		b.WriteString(provisionalText.Render(snap.Provisional))
	}
	b.WriteString("\n> ")
	b.WriteString(m.input.View())

	return renderPage("INSIGHT BOARD", b.String(),
		"ctrl+s: start/stop │ enter: finalize │ ctrl+a: analyze now │ ctrl+v: paste │ ctrl+r: history │ ctrl+t: transcript │ ctrl+l: logout")
}
