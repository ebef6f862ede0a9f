package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/usecase/tracker"
)

const maxShownSentiments = 8
const maxShownKeywords = 10

type Options struct {
	Limit           int
	KeywordLimit    int
	RefreshInterval time.Duration
}

type browserModel struct {
	ctx             context.Context
	service         *tracker.Service
	limit           int
	keywordLimit    int
	refreshInterval time.Duration

	records       []ports.TranscriptRecord
	selectedIndex int
	detail        tracker.TranscriptDetail
	hasDetail     bool
	status        string
}

type recordsLoadedMsg struct {
	items []ports.TranscriptRecord
	err   error
}

type detailLoadedMsg struct {
	recordID uint64
	detail   tracker.TranscriptDetail
	err      error
}

type tickMsg struct{}

func NewBrowserModel(ctx context.Context, service *tracker.Service, options Options) tea.Model {
	limit := options.Limit
	if limit <= 0 {
		limit = 50
	}
	keywordLimit := options.KeywordLimit
	if keywordLimit <= 0 {
		keywordLimit = maxShownKeywords
	}
	interval := options.RefreshInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &browserModel{
		ctx:             ctx,
		service:         service,
		limit:           limit,
		keywordLimit:    keywordLimit,
		refreshInterval: interval,
		status:          "loading",
	}
}

func (m *browserModel) Init() tea.Cmd {
	return tea.Batch(m.loadRecordsCmd(), m.tickCmd())
}

func (m *browserModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tickMsg:
		return m, tea.Batch(m.loadRecordsCmd(), m.tickCmd())
	case recordsLoadedMsg:
		if msg.err != nil {
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.records = msg.items
		if len(m.records) == 0 {
			m.selectedIndex = 0
			m.hasDetail = false
			m.status = "no transcripts ingested yet"
			return m, nil
		}
		if m.selectedIndex >= len(m.records) {
			m.selectedIndex = len(m.records) - 1
		}
		m.status = fmt.Sprintf("%d transcripts", len(m.records))
		return m, m.loadDetailCmd()
	case detailLoadedMsg:
		if msg.err != nil {
			m.status = "detail load failed: " + msg.err.Error()
			return m, nil
		}
		if msg.recordID != m.selectedRecordID() {
			return m, nil
		}
		m.detail = msg.detail
		m.hasDetail = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.hasDetail = false
				return m, m.loadDetailCmd()
			}
		case "down", "j":
			if m.selectedIndex < len(m.records)-1 {
				m.selectedIndex++
				m.hasDetail = false
				return m, m.loadDetailCmd()
			}
		case "r":
			return m, m.loadRecordsCmd()
		}
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ingested transcripts"))
	b.WriteString("\n\n")

	for i, record := range m.records {
		line := fmt.Sprintf("%4d  %-18s %s %s  %s", record.ID, record.ChannelName, record.Date, record.Time, truncate(record.VideoTitle, 48))
		if i == m.selectedIndex {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.hasDetail {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("sentiment"))
		b.WriteString("\n")
		shown := m.detail.Sentiments
		if len(shown) > maxShownSentiments {
			shown = shown[:maxShownSentiments]
		}
		for _, line := range shown {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				dimStyle.Render(line.Timestamp),
				scoreStyle.Render(fmt.Sprintf("%+.1f", line.Sentiment)),
				truncate(line.Sentence, 64),
			))
		}

		b.WriteString("\n")
		b.WriteString(titleStyle.Render("keywords"))
		b.WriteString("\n  ")
		parts := make([]string, 0, len(m.detail.Keywords))
		for _, kw := range m.detail.Keywords {
			parts = append(parts, fmt.Sprintf("%s(%d)", kw.Keyword, kw.Count))
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.status + "  [j/k move, r refresh, q quit]"))
	b.WriteString("\n")
	return b.String()
}

func (m *browserModel) selectedRecordID() uint64 {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.records) {
		return 0
	}
	return m.records[m.selectedIndex].ID
}

func (m *browserModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.service.RecentTranscripts(m.ctx, m.limit)
		return recordsLoadedMsg{items: items, err: err}
	}
}

func (m *browserModel) loadDetailCmd() tea.Cmd {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.records) {
		return nil
	}
	record := m.records[m.selectedIndex]

	return func() tea.Msg {
		detail, err := m.service.TranscriptDetailByRecord(m.ctx, record, m.keywordLimit)
		return detailLoadedMsg{recordID: record.ID, detail: detail, err: err}
	}
}

func (m *browserModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
