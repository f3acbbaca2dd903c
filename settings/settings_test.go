package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/plannerd/params"
)

func redirectParams(t *testing.T) {
	t.Helper()

	prevDisk := params.ParamsPath
	prevMem := params.MemParamsPath
	prevSettings := params.PLANNER_SETTINGS

	base := t.TempDir()
	params.ParamsPath = base + "/params/d"
	params.MemParamsPath = base + "/mem/d"
	params.EnsureParamDirectories()
	params.PLANNER_SETTINGS = params.ParamPath("PlannerSettings", false)

	t.Cleanup(func() {
		params.ParamsPath = prevDisk
		params.MemParamsPath = prevMem
		params.PLANNER_SETTINGS = prevSettings
	})
}

func TestDefaults(t *testing.T) {
	s := PlannerSettings{}
	s.Default()

	assert.False(t, s.ConditionalMode)
	assert.False(t, s.SpeedLimitController)
	assert.Equal(t, "dashboard", s.SpeedLimitPriority1)
	assert.Equal(t, "map", s.SpeedLimitPriority2)
	assert.Equal(t, "navigation", s.SpeedLimitPriority3)
	assert.Equal(t, float32(1.0), s.CurveSensitivity)
	assert.Equal(t, float32(1.45), s.StandardFollow)
	assert.Equal(t, 2, s.AccelerationProfile)
}

func TestRecommendedEnablesControllers(t *testing.T) {
	s := PlannerSettings{}
	s.Recommended()

	assert.True(t, s.ConditionalMode)
	assert.True(t, s.ForceStops)
	assert.True(t, s.MapTurnSpeedController)
	assert.True(t, s.VisionTurnSpeedController)
	assert.True(t, s.SpeedLimitController)
	assert.Equal(t, "experimental", s.SpeedLimitFallback)
	assert.Greater(t, s.OffsetCity, float32(0))
}

func TestSaveLoadRoundtrip(t *testing.T) {
	redirectParams(t)

	s := PlannerSettings{}
	s.Default()
	s.ForceStops = true
	s.CurveSensitivity = 1.2
	s.Save()

	loaded := PlannerSettings{}
	require.True(t, loaded.Load())

	assert.True(t, loaded.ForceStops)
	assert.Equal(t, float32(1.2), loaded.CurveSensitivity)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	redirectParams(t)

	require.NoError(t, params.PutParam(params.PLANNER_SETTINGS, []byte(`{"force_stops": true}`)))

	s := PlannerSettings{}
	require.True(t, s.Load())

	assert.True(t, s.ForceStops)
	// everything else falls back to the defaults
	assert.Equal(t, float32(1.45), s.StandardFollow)
	assert.Equal(t, "dashboard", s.SpeedLimitPriority1)
}

func TestUnmarshalIgnoresEmptyPayload(t *testing.T) {
	s := PlannerSettings{}
	s.Default()
	s.ForceStops = true

	s.Unmarshal(nil)

	assert.True(t, s.ForceStops)
}
