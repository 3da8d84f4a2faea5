package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HelpModel is the help screen.
type HelpModel struct{}

// NewHelpModel creates the help screen model.
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen.
func (m HelpModel) View() string {
	sections := []string{
		cardTitleStyle.Render("Keyboard Shortcuts"),
		"",
		renderKeyHelp("1", "insights dashboard"),
		renderKeyHelp("2", "activity list"),
		renderKeyHelp("3, s", "sync with Strava"),
		renderKeyHelp("r", "reload current screen"),
		renderKeyHelp("+/-", "grow/shrink the analysis window"),
		renderKeyHelp("↑/↓, j/k", "scroll the activity list"),
		renderKeyHelp("?", "this help"),
		renderKeyHelp("esc", "back"),
		renderKeyHelp("q", "quit"),
		"",
		cardTitleStyle.Render("Command Line"),
		"",
		renderKeyHelp("runpulse sync", "fetch activities without the TUI"),
		renderKeyHelp("runpulse report", "print the text report"),
		renderKeyHelp("runpulse export", "write the activity CSV"),
	}
	return strings.Join(sections, "\n")
}
