package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"runpulse/internal/service"
)

// SyncModel is the sync screen model.
type SyncModel struct {
	syncService *service.SyncService
	syncing     bool
	result      *service.SyncResult
	err         error
	done        bool
}

// NewSyncModel creates the sync screen model.
func NewSyncModel(ss *service.SyncService) SyncModel {
	return SyncModel{syncService: ss}
}

// Init initializes the sync screen.
func (m SyncModel) Init() tea.Cmd {
	return nil
}

// SyncDoneMsg is sent when the sync finishes.
type SyncDoneMsg struct {
	Result *service.SyncResult
	Err    error
}

// SyncCompleteMsg tells other screens their data is stale.
type SyncCompleteMsg struct{}

// Update handles messages.
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SyncDoneMsg:
		m.syncing = false
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, func() tea.Msg { return SyncCompleteMsg{} }

	case tea.KeyMsg:
		if !m.syncing {
			switch msg.String() {
			case "enter", "s":
				m.syncing = true
				m.done = false
				m.err = nil
				m.result = nil
				return m, m.runSync
			}
		}
	}
	return m, nil
}

func (m SyncModel) runSync() tea.Msg {
	result, err := m.syncService.SyncAll(context.Background(), nil)
	return SyncDoneMsg{Result: result, Err: err}
}

// View renders the sync screen.
func (m SyncModel) View() string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render("Sync with Strava") + "\n\n")

	switch {
	case m.syncing:
		b.WriteString("  Syncing activities from Strava...\n")
		b.WriteString(statusStyle.Render("  This can take a while on first sync."))

	case m.done && m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  Sync failed: %v\n", m.err)))
		b.WriteString("\n  Press enter to retry.")

	case m.done && m.result != nil:
		b.WriteString(successStyle.Render("  Sync complete!") + "\n\n")
		if m.result.Athlete != "" {
			b.WriteString(fmt.Sprintf("  Athlete:  %s\n", m.result.Athlete))
		}
		b.WriteString(fmt.Sprintf("  Fetched:  %d activities\n", m.result.Fetched))
		b.WriteString(fmt.Sprintf("  Stored:   %d\n", m.result.Stored))
		if m.result.Skipped > 0 {
			b.WriteString(warningStyle.Render(fmt.Sprintf("  Skipped:  %d malformed\n", m.result.Skipped)))
		}
		for _, err := range m.result.Errors {
			b.WriteString(warningStyle.Render(fmt.Sprintf("  Warning:  %v\n", err)))
		}
		b.WriteString(fmt.Sprintf("  Duration: %s\n", m.result.Duration.Round(time.Millisecond)))
		b.WriteString("\n  Press 1 to view insights.")

	default:
		if last := m.syncService.LastSync(); !last.IsZero() {
			b.WriteString(fmt.Sprintf("  Last sync: %s\n\n", last.Local().Format("2006-01-02 15:04")))
		} else {
			b.WriteString("  No data synced yet.\n\n")
		}
		b.WriteString("  Press enter to start syncing.")
	}

	return b.String()
}
