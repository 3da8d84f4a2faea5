package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"runpulse/internal/report"
	"runpulse/internal/service"
)

// ActivitiesModel is the scrollable list of individual runs in the
// analysis window, with best performances and pace distribution.
type ActivitiesModel struct {
	insightsSvc *service.InsightsService
	sportType   string
	weeks       int

	viewport viewport.Model
	ready    bool
	loading  bool
	stale    bool
	data     *report.Data
	err      error
}

// NewActivitiesModel creates the activities screen model.
func NewActivitiesModel(svc *service.InsightsService, sportType string, weeks int) ActivitiesModel {
	return ActivitiesModel{
		insightsSvc: svc,
		sportType:   sportType,
		weeks:       weeks,
		loading:     true,
	}
}

type activitiesLoadedMsg struct {
	data *report.Data
	err  error
}

// Init triggers a load when the screen has no fresh data.
func (m ActivitiesModel) Init() tea.Cmd {
	if m.data != nil && !m.stale {
		return nil
	}
	return m.loadData
}

func (m ActivitiesModel) loadData() tea.Msg {
	data, err := m.insightsSvc.Insights(m.sportType, m.weeks)
	return activitiesLoadedMsg{data: data, err: err}
}

// Update handles messages.
func (m ActivitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case activitiesLoadedMsg:
		m.loading = false
		m.stale = false
		m.data = msg.data
		m.err = msg.err
		if m.ready {
			m.viewport.SetContent(m.content())
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.content())

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.loadData
		}
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the activity list.
func (m ActivitiesModel) View() string {
	if m.loading {
		return "\n  Loading activities..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if !m.ready {
		return "\n  Initializing..."
	}
	return m.viewport.View()
}

func (m ActivitiesModel) content() string {
	if m.data == nil || m.data.Empty() {
		return fmt.Sprintf("\n  No %s activities in the last %d weeks.", m.sportType, m.weeks)
	}

	var sections []string

	sections = append(sections,
		cardTitleStyle.Render(fmt.Sprintf("Runs · last %d weeks", m.data.Weeks)),
		report.RunDetails(m.data))

	var best []string
	if m.data.Best.FastestPace != nil {
		best = append(best, fmt.Sprintf("Fastest: %s min/km (%.1f km)",
			report.FormatPace(m.data.Best.FastestPace.PaceMoving), m.data.Best.FastestPace.DistanceKm))
	}
	if m.data.Best.LongestRun != nil {
		best = append(best, fmt.Sprintf("Longest: %.1f km on %s",
			m.data.Best.LongestRun.DistanceKm, m.data.Best.LongestRun.StartDate.Format("Jan 02")))
	}
	if m.data.Best.MostElevation != nil {
		best = append(best, fmt.Sprintf("Most climb: %.0f m on %s",
			m.data.Best.MostElevation.ElevationGainM(), m.data.Best.MostElevation.StartDate.Format("Jan 02")))
	}
	if len(best) > 0 {
		sections = append(sections, "", cardTitleStyle.Render("Best Performances"), strings.Join(best, "\n"))
	}

	if p := m.data.Paces; p != nil {
		sections = append(sections, "", cardTitleStyle.Render("Pace Distribution"),
			fmt.Sprintf("Fastest %s · Median %s · Slowest %s min/km",
				report.FormatPaceValue(p.Fastest),
				report.FormatPaceValue(p.Median),
				report.FormatPaceValue(p.Slowest)))
	}

	return strings.Join(sections, "\n")
}
