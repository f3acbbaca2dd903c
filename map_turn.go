package main

import (
	"encoding/json"
	"math"

	m "pfeifer.dev/plannerd/math"
	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
	"pfeifer.dev/plannerd/utils"
)

// NO_CURVATURE keeps the turn speed formula finite when no mapped curvature
// is available, yielding a target far above any cruise speed.
const NO_CURVATURE = 1e-6

type targetVelocity struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Velocity  float64 `json:"velocity"`
}

// MapTurnSpeedController derives an upcoming road curvature from the map
// daemon's target velocity polyline.
type MapTurnSpeedController struct {
	curvature m.MovingAverage
}

func NewMapTurnSpeedController() MapTurnSpeedController {
	mtsc := MapTurnSpeedController{}
	mtsc.curvature.Init(ms.MAP_CURVATURE_FILTER_SIZE)
	return mtsc
}

// GetMapCurvature returns the tightest mapped curvature within the planner
// lookahead ahead of the current fix, smoothed over a few cycles.
func (mtsc *MapTurnSpeedController) GetMapCurvature(location Location, vEgo float32) float32 {
	if !location.HasFix {
		mtsc.curvature.Reset()
		return NO_CURVATURE
	}

	data, err := params.GetParam(params.MAP_TARGET_VELOCITIES)
	if err != nil {
		mtsc.curvature.Reset()
		return NO_CURVATURE
	}

	var targetVelocities []targetVelocity
	if err := json.Unmarshal(data, &targetVelocities); err != nil {
		utils.Logde(err)
		mtsc.curvature.Reset()
		return NO_CURVATURE
	}
	if len(targetVelocities) == 0 {
		mtsc.curvature.Reset()
		return NO_CURVATURE
	}

	here := m.NewPosition(location.Latitude, location.Longitude)

	distances := make([]float32, len(targetVelocities))
	closest := 0
	for i, tv := range targetVelocities {
		point := m.NewPosition(tv.Latitude, tv.Longitude)
		distances[i] = here.DistanceTo(point)
		if distances[i] < distances[closest] {
			closest = i
		}
	}

	lookahead := max(vEgo*ms.PLANNER_TIME, ms.CRUISING_SPEED*ms.PLANNER_TIME)

	maxCurvature := float64(NO_CURVATURE)
	for i := closest; i < len(targetVelocities); i++ {
		if distances[i] > lookahead {
			continue
		}
		velocity := targetVelocities[i].Velocity
		if velocity <= 0 {
			continue
		}
		curvature := ms.TARGET_LAT_A / (velocity * velocity)
		maxCurvature = math.Max(maxCurvature, curvature)
	}

	return float32(mtsc.curvature.Update(maxCurvature))
}
