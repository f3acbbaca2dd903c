package main

import (
	m "pfeifer.dev/plannerd/math"
	ms "pfeifer.dev/plannerd/settings"
)

// Acceleration profile ids stored in the settings bundle.
const (
	ACCELERATION_PROFILE_ECO      = 1
	ACCELERATION_PROFILE_STANDARD = 2
	ACCELERATION_PROFILE_SPORT    = 3
)

var (
	maxAccelBreakpoints = []float32{0, 10, 25, 40}

	maxAccelEco      = []float32{1.2, 0.9, 0.6, 0.4}
	maxAccelStandard = []float32{1.6, 1.2, 0.8, 0.6}
	maxAccelSport    = []float32{3.0, 2.4, 1.4, 0.9}
)

// AccelerationLimits holds the commanded acceleration envelope for the cycle.
type AccelerationLimits struct {
	MaxAccel float32
	MinAccel float32
}

func (a *AccelerationLimits) Update(vEgo float32, toggles ms.PlannerSettings) {
	values := maxAccelStandard
	switch toggles.AccelerationProfile {
	case ACCELERATION_PROFILE_ECO:
		values = maxAccelEco
	case ACCELERATION_PROFILE_SPORT:
		values = maxAccelSport
	}

	a.MaxAccel = m.Interp(vEgo, maxAccelBreakpoints, values)
	a.MinAccel = ms.A_CRUISE_MIN
}

func (a *AccelerationLimits) Zero() {
	a.MaxAccel = 0
	a.MinAccel = 0
}
