package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/plannerd/cereal/custom"
)

type outputModel struct {
	output custom.PlannerOut
	valid  bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			mm.state = showMenu
			return m, nil
		}
	}

	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for plannerd output...\n")
	}
	events, _ := m.output.Events()
	return docStyle.Render(fmt.Sprintf(
		"v cruise: %f\nfull stop: %t\nforcing stop: %t\nforcing stop length: %f\n"+
			"mtsc speed: %f\nvtsc speed: %f\nroad curvature: %f\ndriving in curve: %t\n"+
			"speed limit: %f\nspeed limit offset: %f\nspeed limit source: %s\nnext speed limit: %f\nnext speed limit distance: %f\noverridden speed: %f\n"+
			"t follow: %f\ndesired follow distance: %f\ntracking lead: %t\nslower lead: %t\n"+
			"lane width left: %f\nlane width right: %f\nlateral acceleration: %f\nlateral check: %t\n"+
			"experimental mode: %t\nred light: %t\nevents: %s",
		m.output.VCruise(),
		m.output.FullStop(),
		m.output.ForcingStop(),
		m.output.ForcingStopLength(),
		m.output.MtscSpeed(),
		m.output.VtscSpeed(),
		m.output.RoadCurvature(),
		m.output.DrivingInCurve(),
		m.output.SlcSpeedLimit(),
		m.output.SlcSpeedLimitOffset(),
		m.output.SlcSpeedLimitSource().String(),
		m.output.SlcNextSpeedLimit(),
		m.output.SlcNextSpeedLimitDistance(),
		m.output.SlcOverriddenSpeed(),
		m.output.TFollow(),
		m.output.DesiredFollowDistance(),
		m.output.TrackingLead(),
		m.output.SlowerLead(),
		m.output.LaneWidthLeft(),
		m.output.LaneWidthRight(),
		m.output.LateralAcceleration(),
		m.output.LateralCheck(),
		m.output.ExperimentalMode(),
		m.output.RedLight(),
		events,
	) + "\n")
}
