// Package tui is the Bubble Tea front end: an insights dashboard, the
// activity list, a sync screen, and help. Screens only render what the
// service layer hands them.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"runpulse/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenInsights Screen = iota
	ScreenActivities
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model.
type App struct {
	screen     Screen
	prevScreen Screen

	insights   InsightsModel
	activities ActivitiesModel
	syncScreen SyncModel
	help       HelpModel

	width  int
	height int
}

// NewApp creates the App with all dependencies wired.
func NewApp(syncSvc *service.SyncService, insightsSvc *service.InsightsService, sportType string, weeks int) *App {
	return &App{
		screen:     ScreenInsights,
		insights:   NewInsightsModel(insightsSvc, sportType, weeks),
		activities: NewActivitiesModel(insightsSvc, sportType, weeks),
		syncScreen: NewSyncModel(syncSvc),
		help:       NewHelpModel(),
	}
}

// Init initializes the app.
func (a *App) Init() tea.Cmd {
	return a.insights.Init()
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenInsights
				return a, a.insights.Init()
			case "2":
				a.screen = ScreenActivities
				return a, a.activities.Init()
			case "3", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case SyncCompleteMsg:
		// Fresh data invalidates the insights screens.
		a.insights.stale = true
		a.activities.stale = true
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenInsights:
		var model tea.Model
		model, cmd = a.insights.Update(msg)
		a.insights = model.(InsightsModel)
	case ScreenActivities:
		var model tea.Model
		model, cmd = a.activities.Update(msg)
		a.activities = model.(ActivitiesModel)
	case ScreenSync:
		var model tea.Model
		model, cmd = a.syncScreen.Update(msg)
		a.syncScreen = model.(SyncModel)
	case ScreenHelp:
		var model tea.Model
		model, cmd = a.help.Update(msg)
		a.help = model.(HelpModel)
	}

	return a, cmd
}

// View renders the current screen with navigation chrome.
func (a *App) View() string {
	nav := a.renderNav()

	var body string
	switch a.screen {
	case ScreenInsights:
		body = a.insights.View()
	case ScreenActivities:
		body = a.activities.View()
	case ScreenSync:
		body = a.syncScreen.View()
	case ScreenHelp:
		body = a.help.View()
	}

	status := statusStyle.Render("1 insights · 2 activities · 3/s sync · ? help · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, nav, body, status)
}

func (a *App) renderNav() string {
	items := []struct {
		screen Screen
		label  string
	}{
		{ScreenInsights, "Insights"},
		{ScreenActivities, "Activities"},
		{ScreenSync, "Sync"},
	}

	out := ""
	for i, item := range items {
		if i > 0 {
			out += navStyle.Render(" | ")
		}
		if item.screen == a.screen {
			out += navActiveStyle.Render(item.label)
		} else {
			out += navStyle.Render(item.label)
		}
	}
	return titleStyle.Render("runpulse") + "  " + out + "\n"
}
