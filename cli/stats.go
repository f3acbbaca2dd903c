package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/plannerd/params"
)

type usageStats struct {
	TotalAOLTime          float64 `json:"TotalAOLTime"`
	TotalLateralTime      float64 `json:"TotalLateralTime"`
	TotalLongitudinalTime float64 `json:"TotalLongitudinalTime"`
	TotalTrackedTime      float64 `json:"TotalTrackedTime"`
}

type statsModel struct {
	stats      usageStats
	drives     int64
	kilometers float64
	minutes    float64
}

func (m statsModel) Update(msg tea.Msg, mm *uiModel) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			mm.state = showMenu
			return m, nil
		}
	case TickMsg:
		m.stats, m.drives, m.kilometers, m.minutes = readStats()
	}
	return m, nil
}

func (m statsModel) View() string {
	return docStyle.Render(formatStats(m.stats, m.drives, m.kilometers, m.minutes) + "\n")
}

func getStatsModel() statsModel {
	m := statsModel{}
	m.stats, m.drives, m.kilometers, m.minutes = readStats()
	return m
}

func readStats() (stats usageStats, drives int64, kilometers float64, minutes float64) {
	if data, err := params.GetParam(params.PLANNER_STATS); err == nil {
		if err := json.Unmarshal(data, &stats); err != nil {
			stats = usageStats{}
		}
	}
	if data, err := params.GetParam(params.PLANNER_DRIVES); err == nil {
		drives, _ = strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	}
	if data, err := params.GetParam(params.PLANNER_KILOMETERS); err == nil {
		kilometers, _ = strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	}
	if data, err := params.GetParam(params.PLANNER_MINUTES); err == nil {
		minutes, _ = strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	}
	return stats, drives, kilometers, minutes
}

func formatStats(stats usageStats, drives int64, kilometers float64, minutes float64) string {
	return fmt.Sprintf(
		"drives: %d\nkilometers: %.1f\nminutes: %.1f\n"+
			"tracked time: %.0fs\nlateral engaged time: %.0fs\nlongitudinal engaged time: %.0fs\nalways on lateral time: %.0fs",
		drives,
		kilometers,
		minutes,
		stats.TotalTrackedTime,
		stats.TotalLateralTime,
		stats.TotalLongitudinalTime,
		stats.TotalAOLTime,
	)
}

func printStats() error {
	stats, drives, kilometers, minutes := readStats()
	fmt.Println(formatStats(stats, drives, kilometers, minutes))
	return nil
}
