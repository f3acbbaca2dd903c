package main

import (
	"strings"

	ms "pfeifer.dev/plannerd/settings"
)

// EventInputs are the planner flags summarized into the published event set.
// Values reflect the previous cycle for anything the planner computes after
// the event update.
type EventInputs struct {
	DrivingInCurve    bool
	ExperimentalMode  bool
	ForcingStop       bool
	SlowerLead        bool
	SpeedLimitChanged bool
}

// Events aggregates the named conditions active this cycle into a summary
// consumed by the UI and logging.
type Events struct {
	active []string
}

func (e *Events) Update(vCruise float32, snap *Snapshot, in EventInputs, toggles ms.PlannerSettings) {
	e.active = e.active[:0]

	if snap.CarExt.TrafficModeEnabled {
		e.active = append(e.active, "trafficMode")
	}
	if in.ForcingStop {
		e.active = append(e.active, "forcingStop")
	}
	if in.ExperimentalMode {
		e.active = append(e.active, "conditionActive")
	}
	if in.DrivingInCurve {
		e.active = append(e.active, "drivingInCurve")
	}
	if in.SlowerLead && toggles.ConditionalSlowerLead {
		e.active = append(e.active, "slowerLead")
	}
	if in.SpeedLimitChanged {
		e.active = append(e.active, "speedLimitChanged")
	}
	if snap.Controls.Enabled && vCruise > 0 && snap.Car.VEgo > vCruise+ms.CRUISING_SPEED {
		e.active = append(e.active, "overSetSpeed")
	}
}

func (e *Events) Summary() string {
	return strings.Join(e.active, ",")
}
