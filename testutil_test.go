package main

import (
	"testing"

	"pfeifer.dev/plannerd/params"
)

// redirectParams points the param store at a per test temp directory so tests
// never touch the real filesystem locations.
func redirectParams(t *testing.T) {
	t.Helper()

	prevDisk := params.ParamsPath
	prevMem := params.MemParamsPath
	prevSettings := params.PLANNER_SETTINGS
	prevStats := params.PLANNER_STATS
	prevDrives := params.PLANNER_DRIVES
	prevKilometers := params.PLANNER_KILOMETERS
	prevMinutes := params.PLANNER_MINUTES
	prevGps := params.LAST_GPS_POSITION
	prevMapLimit := params.MAP_SPEED_LIMIT
	prevNextLimit := params.NEXT_MAP_SPEED_LIMIT
	prevVelocities := params.MAP_TARGET_VELOCITIES

	base := t.TempDir()
	params.ParamsPath = base + "/params/d"
	params.MemParamsPath = base + "/mem/d"
	params.EnsureParamDirectories()

	params.PLANNER_SETTINGS = params.ParamPath("PlannerSettings", false)
	params.PLANNER_STATS = params.ParamPath("PlannerStats", false)
	params.PLANNER_DRIVES = params.ParamPath("PlannerDrives", false)
	params.PLANNER_KILOMETERS = params.ParamPath("PlannerKilometers", false)
	params.PLANNER_MINUTES = params.ParamPath("PlannerMinutes", false)
	params.LAST_GPS_POSITION = params.ParamPath("LastGPSPosition", true)
	params.MAP_SPEED_LIMIT = params.ParamPath("MapSpeedLimit", true)
	params.NEXT_MAP_SPEED_LIMIT = params.ParamPath("NextMapSpeedLimit", true)
	params.MAP_TARGET_VELOCITIES = params.ParamPath("MapTargetVelocities", true)

	t.Cleanup(func() {
		params.ParamsPath = prevDisk
		params.MemParamsPath = prevMem
		params.PLANNER_SETTINGS = prevSettings
		params.PLANNER_STATS = prevStats
		params.PLANNER_DRIVES = prevDrives
		params.PLANNER_KILOMETERS = prevKilometers
		params.PLANNER_MINUTES = prevMinutes
		params.LAST_GPS_POSITION = prevGps
		params.MAP_SPEED_LIMIT = prevMapLimit
		params.NEXT_MAP_SPEED_LIMIT = prevNextLimit
		params.MAP_TARGET_VELOCITIES = prevVelocities
	})
}
