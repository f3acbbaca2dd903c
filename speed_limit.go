package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"pfeifer.dev/plannerd/cereal/custom"
	m "pfeifer.dev/plannerd/math"
	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
	"pfeifer.dev/plannerd/utils"
)

// Offset bands, resolved limit in m/s.
const (
	OFFSET_LOW_END     = 13.5
	OFFSET_CITY_END    = 24.5
	OFFSET_HIGHWAY_END = 29.0
)

type nextSpeedLimit struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	SpeedLimit float64 `json:"speedlimit"`
}

// SpeedLimitController resolves the authoritative posted limit from the
// dashboard, the map daemon and navigation, applies the configured offset
// band and tracks the driver override.
type SpeedLimitController struct {
	DashboardSpeedLimit  float32
	MapSpeedLimit        float32
	NavigationSpeedLimit float32

	NextSpeedLimit         float32
	NextSpeedLimitDistance float32

	SpeedLimit            float32
	UnconfirmedSpeedLimit float32
	Offset                float32
	Target                float32
	OverriddenSpeed       float32

	Source           custom.SpeedLimitSource
	ExperimentalMode bool

	SpeedLimitChangedTimer float32

	desiredLimit utils.Float32Tracker
	mapLimit     utils.Curry[float32]
}

func NewSpeedLimitController() SpeedLimitController {
	return SpeedLimitController{
		desiredLimit: utils.Float32Tracker{AllowNullLastValue: true},
	}
}

func (slc *SpeedLimitController) UpdateLimits(dashboardLimit float32, location Location, navigationLimit float32, vCruise, vEgo float32, snap *Snapshot, toggles ms.PlannerSettings) {
	slc.mapLimit.Reset()

	slc.DashboardSpeedLimit = dashboardLimit
	slc.NavigationSpeedLimit = navigationLimit
	slc.MapSpeedLimit = slc.mapLimit.Value(readMapSpeedLimit)
	slc.updateNextLimit(location, vEgo)

	resolved, source := slc.resolve(toggles)
	slc.UnconfirmedSpeedLimit = resolved

	if slc.desiredLimit.Update(resolved) && resolved > 1 && slc.desiredLimit.LastValue > 1 {
		slc.SpeedLimitChangedTimer = ms.SPEED_LIMIT_CHANGED_TIME
		slc.OverriddenSpeed = 0
	} else if slc.SpeedLimitChangedTimer > 0 {
		slc.SpeedLimitChangedTimer -= ms.DT
	}

	slc.SpeedLimit = resolved
	slc.Source = source
	slc.Offset = slc.offsetFor(resolved, toggles)
	slc.Target = resolved

	slc.ExperimentalMode = toggles.SpeedLimitFallback == "experimental" && resolved <= 1
}

func (slc *SpeedLimitController) UpdateOverride(vCruise, vCruiseDiff, vEgo, vEgoDiff float32, snap *Snapshot, toggles ms.PlannerSettings) {
	if !toggles.SpeedLimitOverride || !snap.Controls.Enabled || slc.SpeedLimit <= 1 {
		slc.OverriddenSpeed = 0
		return
	}

	if snap.Car.GasPressed {
		requested := vEgo + vEgoDiff
		if requested > slc.Target+slc.Offset {
			slc.OverriddenSpeed = m.Clamp(max(requested, slc.OverriddenSpeed), 0, vCruise+vCruiseDiff)
		}
	}
}

// SpeedLimitChanged reports whether a new limit was adopted recently.
func (slc *SpeedLimitController) SpeedLimitChanged() bool {
	return slc.SpeedLimitChangedTimer > ms.DT
}

func (slc *SpeedLimitController) resolve(toggles ms.PlannerSettings) (float32, custom.SpeedLimitSource) {
	limits := map[string]float32{
		"dashboard":  slc.DashboardSpeedLimit,
		"map":        slc.MapSpeedLimit,
		"navigation": slc.NavigationSpeedLimit,
	}
	sources := map[string]custom.SpeedLimitSource{
		"dashboard":  custom.SpeedLimitSource_dashboard,
		"map":        custom.SpeedLimitSource_map,
		"navigation": custom.SpeedLimitSource_navigation,
	}

	switch toggles.SpeedLimitPriority1 {
	case "highest":
		best, source := float32(0), custom.SpeedLimitSource_none
		for name, limit := range limits {
			if limit > 1 && limit > best {
				best, source = limit, sources[name]
			}
		}
		return best, source
	case "lowest":
		best, source := float32(0), custom.SpeedLimitSource_none
		for name, limit := range limits {
			if limit > 1 && (best == 0 || limit < best) {
				best, source = limit, sources[name]
			}
		}
		return best, source
	}

	for _, name := range []string{toggles.SpeedLimitPriority1, toggles.SpeedLimitPriority2, toggles.SpeedLimitPriority3} {
		if limit, ok := limits[name]; ok && limit > 1 {
			return limit, sources[name]
		}
	}

	return 0, custom.SpeedLimitSource_none
}

func (slc *SpeedLimitController) offsetFor(limit float32, toggles ms.PlannerSettings) float32 {
	if limit <= 1 {
		return 0
	}
	if limit < OFFSET_LOW_END {
		return toggles.OffsetLow
	}
	if limit < OFFSET_CITY_END {
		return toggles.OffsetCity
	}
	if limit < OFFSET_HIGHWAY_END {
		return toggles.OffsetHighway
	}
	return toggles.OffsetMax
}

// updateNextLimit adopts an upcoming mapped limit early when the vehicle is
// within the planner lookahead of its start point.
func (slc *SpeedLimitController) updateNextLimit(location Location, vEgo float32) {
	slc.NextSpeedLimit = 0
	slc.NextSpeedLimitDistance = 0

	data, err := params.GetParam(params.NEXT_MAP_SPEED_LIMIT)
	if err != nil {
		return
	}

	var next nextSpeedLimit
	if err := json.Unmarshal(data, &next); err != nil {
		utils.Logde(err)
		return
	}
	if next.SpeedLimit <= 1 || !location.HasFix {
		return
	}

	here := m.NewPosition(location.Latitude, location.Longitude)
	there := m.NewPosition(next.Latitude, next.Longitude)

	slc.NextSpeedLimit = float32(next.SpeedLimit)
	slc.NextSpeedLimitDistance = here.DistanceTo(there)

	closing := slc.NextSpeedLimitDistance < vEgo*ms.PLANNER_TIME
	if closing && (slc.NextSpeedLimit < slc.MapSpeedLimit || slc.MapSpeedLimit <= 1) {
		slc.MapSpeedLimit = slc.NextSpeedLimit
	}
}

func readMapSpeedLimit() float32 {
	data, err := params.GetParam(params.MAP_SPEED_LIMIT)
	if err != nil {
		return 0
	}
	limit, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 32)
	if err != nil {
		utils.Logde(err)
		return 0
	}
	return float32(limit)
}
