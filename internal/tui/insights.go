package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"runpulse/internal/analysis"
	"runpulse/internal/report"
	"runpulse/internal/service"
)

// InsightsModel is the dashboard screen: weekly table, trend card,
// recommendations, and the weekly distance chart.
type InsightsModel struct {
	insightsSvc *service.InsightsService
	sportType   string
	weeks       int

	data    *report.Data
	loading bool
	stale   bool
	err     error
}

// NewInsightsModel creates the insights screen model.
func NewInsightsModel(svc *service.InsightsService, sportType string, weeks int) InsightsModel {
	return InsightsModel{
		insightsSvc: svc,
		sportType:   sportType,
		weeks:       weeks,
		loading:     true,
	}
}

type insightsLoadedMsg struct {
	data *report.Data
	err  error
}

// Init triggers the first load.
func (m InsightsModel) Init() tea.Cmd {
	if m.data != nil && !m.stale {
		return nil
	}
	return m.loadData
}

func (m InsightsModel) loadData() tea.Msg {
	data, err := m.insightsSvc.Insights(m.sportType, m.weeks)
	return insightsLoadedMsg{data: data, err: err}
}

// Update handles messages.
func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		m.loading = false
		m.stale = false
		m.data = msg.data
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		case "+":
			m.weeks++
			m.loading = true
			return m, m.loadData
		case "-":
			if m.weeks > 1 {
				m.weeks--
				m.loading = true
				return m, m.loadData
			}
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m InsightsModel) View() string {
	if m.loading {
		return "\n  Loading insights..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if m.data == nil || m.data.Empty() {
		return fmt.Sprintf("\n  No %s activities in the last %d weeks. Press 's' to sync with Strava.",
			m.sportType, m.weeks)
	}

	var sections []string

	sections = append(sections, cardStyle.Render(
		cardTitleStyle.Render(fmt.Sprintf("Last %d Weeks · %s", m.data.Weeks, m.data.SportType))+
			"\n"+report.WeeklyTable(m.data.Weekly)))

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTrendCard(),
		m.renderSnapshotCard(),
	))

	sections = append(sections, m.renderRecommendations())
	if charts := m.renderCharts(); charts != "" {
		sections = append(sections, charts)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m InsightsModel) renderTrendCard() string {
	title := cardTitleStyle.Render("Recent Trends")
	t := m.data.Trend
	if t == nil {
		return cardStyle.Render(title + "\nInsufficient data (need at least 2 runs)")
	}

	var lines []string
	if t.PaceDelta != nil {
		style := trendDownStyle
		if t.PaceDirection == analysis.Improving {
			style = trendUpStyle
		}
		lines = append(lines, renderMetric("Pace",
			fmt.Sprintf("%s min/km %s", report.FormatPaceValue(math.Abs(*t.PaceDelta)),
				style.Render(string(t.PaceDirection)))))
	} else {
		lines = append(lines, renderMetric("Pace", "N/A"))
	}
	lines = append(lines, renderMetric("Distance", fmt.Sprintf("%+.2f km per run", t.DistanceDelta)))
	lines = append(lines, renderMetric("Elevation", fmt.Sprintf("%+.0f m per run", t.ElevationDelta)))

	return cardStyle.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (m InsightsModel) renderSnapshotCard() string {
	title := cardTitleStyle.Render("Fitness Snapshot")
	s := m.data.Stats

	var lines []string
	lines = append(lines, renderMetric("Weekly distance", fmt.Sprintf("%.1f km", s.AvgWeeklyDistanceKm)))
	lines = append(lines, renderMetric("Runs per week", fmt.Sprintf("%.1f", s.AvgRunsPerWeek)))
	if m.data.Paces != nil {
		lines = append(lines, renderMetric("Median pace", report.FormatPaceValue(m.data.Paces.Median)+" min/km"))
	}
	if s.AvgDaysBetweenRuns != nil {
		lines = append(lines, renderMetric("Days between runs", fmt.Sprintf("%.1f", *s.AvgDaysBetweenRuns)))
	}
	if m.data.Best.LongestRun != nil {
		lines = append(lines, renderMetric("Longest run", fmt.Sprintf("%.1f km", m.data.Best.LongestRun.DistanceKm)))
	}

	return cardStyle.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (m InsightsModel) renderRecommendations() string {
	title := cardTitleStyle.Render("Recommendations for Next Week")
	if len(m.data.Recommendations) == 0 {
		return cardStyle.Render(title + "\nNothing to flag - keep it up!")
	}

	var lines []string
	for _, rec := range m.data.Recommendations {
		lines = append(lines, successStyle.Render("· ")+rec)
	}
	return cardStyle.Render(title + "\n" + strings.Join(lines, "\n"))
}

func (m InsightsModel) renderCharts() string {
	var charts []string
	for _, c := range []struct {
		title  string
		unit   string
		series report.ChartSeries
	}{
		{"Weekly Distance", "km", report.WeeklyDistanceSeries(m.data.Weekly)},
		{"Weekly Pace", "min/km", report.WeeklyPaceSeries(m.data.Weekly)},
		{"Weekly Elevation", "m", report.WeeklyElevationSeries(m.data.Weekly)},
	} {
		if chart := renderSeriesChart(c.title, c.unit, c.series); chart != "" {
			charts = append(charts, chart)
		}
	}
	if len(charts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, charts...)
}

// renderSeriesChart plots one weekly series; a single data point is not
// worth a chart.
func renderSeriesChart(title, unit string, series report.ChartSeries) string {
	if len(series.Values) < 2 {
		return ""
	}

	graph := asciigraph.Plot(series.Values,
		asciigraph.Height(8),
		asciigraph.Caption(fmt.Sprintf("%s (%s), %s to %s",
			title, unit, series.Labels[0], series.Labels[len(series.Labels)-1])),
	)
	return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + graph)
}
