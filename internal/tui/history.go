package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-insight-keeper/internal/service"
	"github.com/MKhiriev/go-insight-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	historyTitleWidth = 48
	historyTimeLayout = "2006-01-02 15:04"
)

// HistoryModel lists past conversations and shows one of them read-only.
type HistoryModel struct {
	ctx     context.Context
	history service.ClientHistoryService

	items   []models.ConversationSummary
	idx     int
	loading bool
	errMsg  string

	detail         *models.Conversation
	showTranscript bool
}

func NewHistoryModel(ctx context.Context, history service.ClientHistoryService) *HistoryModel {
	return &HistoryModel{ctx: ctx, history: history}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.detail = nil
	return m.cmdLoad()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil

	case openConversation:
		m.loading = true
		return m, m.cmdOpen(msg.id)

	case conversationOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		conv := msg.conversation
		m.detail = &conv
		m.showTranscript = false
		return m, nil

	case tea.KeyMsg:
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *HistoryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageBoard} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.loading || len(m.items) == 0 {
			return m, nil
		}
		id := m.items[m.idx].ID
		return m, func() tea.Msg { return openConversation{id: id} }
	}
	return m, nil
}

func (m *HistoryModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
		m.errMsg = ""
	case key.Matches(msg, keys.transcript):
		m.showTranscript = !m.showTranscript
	}
	return m, nil
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	history := m.history
	return func() tea.Msg {
		items, err := history.List(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *HistoryModel) cmdOpen(id int64) tea.Cmd {
	ctx := m.ctx
	history := m.history
	return func() tea.Msg {
		conv, err := history.Open(ctx, id)
		return conversationOpenedMsg{conversation: conv, err: err}
	}
}

func (m *HistoryModel) View() string {
	if m.detail != nil {
		return m.viewDetail()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case len(m.items) == 0:
		b.WriteString("No conversations yet")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "\n%s%-*s  %s  %d insights%s",
			cursor,
			historyTitleWidth, fitText(conversationTitle(item.Title), historyTitleWidth),
			item.StartedAt.Local().Format(historyTimeLayout),
			item.BlockCount,
			openMark(item.EndedAt == nil),
		)
	}

	return renderPage("HISTORY", strings.TrimLeft(b.String(), "\n"), "↑/↓: move │ enter: open │ esc: back")
}

func (m *HistoryModel) viewDetail() string {
	conv := m.detail
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", conversationTitle(conv.Title))
	fmt.Fprintf(&b, "started %s", conv.StartedAt.Local().Format(historyTimeLayout))
	if conv.EndedAt != nil {
		fmt.Fprintf(&b, " · ended %s", conv.EndedAt.Local().Format(historyTimeLayout))
	}
	b.WriteString("\n")

	if meta := renderMeta(conv.Meta); meta != "" {
		b.WriteString("\n")
		b.WriteString(meta)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderBlocks(conv.Blocks))

	if m.showTranscript {
		b.WriteString("\n\n")
		b.WriteString(conv.Transcript)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("CONVERSATION", b.String(), "ctrl+t: transcript │ esc: back")
}

func conversationTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled conversation"
	}
	return title
}

func openMark(open bool) string {
	if open {
		return "  (open)"
	}
	return ""
}
