package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/plannerd/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	sendCommand
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.PlannerInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.textInput = textinput.New()
				m.textInput.Focus()
			case sendCommand:
				m.state = showSettingsMenu

				message, input := mm.pub.NewMessage(true)
				input.SetType(m.selectedItem.MessageType)
				if err := mm.pub.Send(message); err != nil {
					panic(err)
				}
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.state = showSettingsMenu

			message, input := mm.pub.NewMessage(true)
			input.SetType(m.selectedItem.MessageType)

			result := m.textInput.Value()

			switch m.selectedItem.Type {
			case String:
				if err := input.SetStr(result); err != nil {
					panic(err)
				}
			case Bool:
				switch result {
				case "true":
					input.SetBool(true)
				case "false":
					input.SetBool(false)
				}
			case Float:
				val, err := strconv.ParseFloat(result, 32)
				if err != nil {
					panic(err)
				}
				input.SetFloat(float32(val))
			}

			if err := mm.pub.Send(message); err != nil {
				panic(err)
			}
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Conditional Experimental Mode Enabled",
			desc:        "When enabled plannerd switches into experimental mode based on driving conditions",
			MessageType: custom.PlannerInputType_setConditionalMode,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Force Stops Enabled",
			desc:        "When enabled plannerd forces a stop for detected stop lights and stop signs",
			MessageType: custom.PlannerInputType_setForceStops,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Force Standstill Enabled",
			desc:        "When enabled plannerd keeps the car stopped until the gas or resume is pressed",
			MessageType: custom.PlannerInputType_setForceStandstill,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Human Following Enabled",
			desc:        "When enabled plannerd adjusts the follow distance and jerk to drive more like a human",
			MessageType: custom.PlannerInputType_setHumanFollowing,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Map Turn Speed Control Enabled",
			desc:        "When enabled plannerd will use map based curvature calculations to determine a suggested speed",
			MessageType: custom.PlannerInputType_setMapTurnSpeedControl,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Map Turn Curvature Check Enabled",
			desc:        "When enabled plannerd only slows for map based curves the vision model also detects",
			MessageType: custom.PlannerInputType_setMtscCurvatureCheck,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Vision Turn Speed Control Enabled",
			desc:        "When enabled plannerd will use vision model based curvature calculations to determine a suggested speed",
			MessageType: custom.PlannerInputType_setVisionTurnSpeedControl,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Curve Sensitivity",
			desc:        "Scales the curvature used in the turn speed calculations",
			MessageType: custom.PlannerInputType_setCurveSensitivity,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Turn Aggressiveness",
			desc:        "Scales the target lateral acceleration used in the turn speed calculations",
			MessageType: custom.PlannerInputType_setTurnAggressiveness,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Speed Limit Control Enabled",
			desc:        "When enabled plannerd will use the speed limit to determine a suggested speed",
			MessageType: custom.PlannerInputType_setSpeedLimitControl,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Show Speed Limits",
			desc:        "When enabled plannerd publishes the resolved speed limit without controlling to it",
			MessageType: custom.PlannerInputType_setShowSpeedLimits,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Speed Limit Override Enabled",
			desc:        "When enabled pressing the gas above the limit latches the requested speed until the limit changes",
			MessageType: custom.PlannerInputType_setSpeedLimitOverride,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Custom Personalities Enabled",
			desc:        "When enabled plannerd uses the configured jerk and follow values instead of the stock personalities",
			MessageType: custom.PlannerInputType_setCustomPersonalities,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Acceleration Profile",
			desc:        "Selects the maximum acceleration curve, 1 for eco, 2 for standard, 3 for sport",
			MessageType: custom.PlannerInputType_setAccelerationProfile,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Pause Lateral Below Speed",
			desc:        "The speed below which lateral control reports as paused",
			MessageType: custom.PlannerInputType_setPauseLateralBelowSpeed,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Pause Lateral Below Signal",
			desc:        "When enabled lateral control stays active below the pause speed unless a blinker is on",
			MessageType: custom.PlannerInputType_setPauseLateralBelowSignal,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the plannerd system",
			MessageType: custom.PlannerInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.PlannerInputType_saveSettings,
			state:       sendCommand,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discards unsaved updates and reloads the persisted settings",
			MessageType: custom.PlannerInputType_reloadSettings,
			state:       sendCommand,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Resets all settings to their defaults without persisting them",
			MessageType: custom.PlannerInputType_loadDefaultSettings,
			state:       sendCommand,
		},
		settingsItem{
			title:       "Load Recommended Settings",
			desc:        "Loads the recommended settings without persisting them",
			MessageType: custom.PlannerInputType_loadRecommendedSettings,
			state:       sendCommand,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0)}
	m.list.Title = "Plannerd Settings"
	return m
}
