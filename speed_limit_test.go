package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
)

func slcToggles() ms.PlannerSettings {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.SpeedLimitController = true
	return toggles
}

func TestSpeedLimitPriorityOrder(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()

	snap := Snapshot{}
	snap.Init()

	slc := NewSpeedLimitController()

	slc.UpdateLimits(20, Location{}, 30, 30, 15, &snap, toggles)
	assert.Equal(t, float32(20), slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_dashboard, slc.Source)

	// dashboard drops out, navigation takes over
	slc.UpdateLimits(0, Location{}, 30, 30, 15, &snap, toggles)
	assert.Equal(t, float32(30), slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_navigation, slc.Source)

	// map limit published by the map daemon outranks navigation
	require.NoError(t, params.PutParam(params.MAP_SPEED_LIMIT, []byte("15.0")))
	slc.UpdateLimits(0, Location{}, 30, 30, 15, &snap, toggles)
	assert.Equal(t, float32(15), slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_map, slc.Source)
}

func TestSpeedLimitHighestAndLowest(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	require.NoError(t, params.PutParam(params.MAP_SPEED_LIMIT, []byte("15.0")))

	snap := Snapshot{}
	snap.Init()

	toggles.SpeedLimitPriority1 = "highest"
	slc := NewSpeedLimitController()
	slc.UpdateLimits(20, Location{}, 30, 30, 15, &snap, toggles)
	assert.Equal(t, float32(30), slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_navigation, slc.Source)

	toggles.SpeedLimitPriority1 = "lowest"
	slc = NewSpeedLimitController()
	slc.UpdateLimits(20, Location{}, 30, 30, 15, &snap, toggles)
	assert.Equal(t, float32(15), slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_map, slc.Source)
}

func TestSpeedLimitNoSource(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()

	snap := Snapshot{}
	snap.Init()

	slc := NewSpeedLimitController()
	slc.UpdateLimits(0, Location{}, 0, 30, 15, &snap, toggles)

	assert.Zero(t, slc.SpeedLimit)
	assert.Equal(t, custom.SpeedLimitSource_none, slc.Source)
	assert.Zero(t, slc.Offset)
}

func TestSpeedLimitOffsetBands(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.OffsetLow = 1
	toggles.OffsetCity = 2
	toggles.OffsetHighway = 3
	toggles.OffsetMax = 4

	snap := Snapshot{}
	snap.Init()

	cases := []struct {
		limit  float32
		offset float32
	}{
		{10, 1},
		{20, 2},
		{25, 3},
		{30, 4},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("limit_%.0f", tc.limit), func(t *testing.T) {
			slc := NewSpeedLimitController()
			slc.UpdateLimits(tc.limit, Location{}, 0, 35, 15, &snap, toggles)
			assert.Equal(t, tc.offset, slc.Offset)
		})
	}
}

func TestSpeedLimitChangedTimer(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()

	snap := Snapshot{}
	snap.Init()

	slc := NewSpeedLimitController()

	// first adoption from zero is not a change
	slc.UpdateLimits(20, Location{}, 0, 30, 15, &snap, toggles)
	assert.False(t, slc.SpeedLimitChanged())

	slc.UpdateLimits(25, Location{}, 0, 30, 15, &snap, toggles)
	assert.True(t, slc.SpeedLimitChanged())

	// ticks down while the limit stays put
	for range 110 {
		slc.UpdateLimits(25, Location{}, 0, 30, 15, &snap, toggles)
	}
	assert.False(t, slc.SpeedLimitChanged())
}

func TestSpeedLimitChangeClearsOverride(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.SpeedLimitOverride = true

	snap := Snapshot{}
	snap.Init()
	snap.Controls.Enabled = true

	slc := NewSpeedLimitController()
	slc.UpdateLimits(20, Location{}, 0, 30, 25, &snap, toggles)

	snap.Car.GasPressed = true
	slc.UpdateOverride(30, 0, 25, 0, &snap, toggles)
	assert.Equal(t, float32(25), slc.OverriddenSpeed)

	// override survives the pedal release
	snap.Car.GasPressed = false
	slc.UpdateOverride(30, 0, 22, 0, &snap, toggles)
	assert.Equal(t, float32(25), slc.OverriddenSpeed)

	// a new limit drops it
	slc.UpdateLimits(25, Location{}, 0, 30, 22, &snap, toggles)
	assert.Zero(t, slc.OverriddenSpeed)
}

func TestSpeedLimitOverrideClampsToCruise(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.SpeedLimitOverride = true

	snap := Snapshot{}
	snap.Init()
	snap.Controls.Enabled = true
	snap.Car.GasPressed = true

	slc := NewSpeedLimitController()
	slc.UpdateLimits(20, Location{}, 0, 22, 25, &snap, toggles)
	slc.UpdateOverride(22, 0, 25, 0, &snap, toggles)

	assert.Equal(t, float32(22), slc.OverriddenSpeed)
}

func TestSpeedLimitOverrideRequiresLimit(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.SpeedLimitOverride = true

	snap := Snapshot{}
	snap.Init()
	snap.Controls.Enabled = true
	snap.Car.GasPressed = true

	slc := NewSpeedLimitController()
	slc.OverriddenSpeed = 25
	slc.UpdateOverride(30, 0, 25, 0, &snap, toggles)

	assert.Zero(t, slc.OverriddenSpeed)
}

func TestNextSpeedLimitAdoptedWhenClosing(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.SpeedLimitPriority1 = "map"

	require.NoError(t, params.PutParam(params.MAP_SPEED_LIMIT, []byte("30.0")))
	next := []byte(`{"latitude": 52.5205, "longitude": 13.405, "speedlimit": 13}`)
	require.NoError(t, params.PutParam(params.NEXT_MAP_SPEED_LIMIT, next))

	snap := Snapshot{}
	snap.Init()

	location := Location{HasFix: true, Latitude: 52.52, Longitude: 13.405}

	slc := NewSpeedLimitController()
	slc.UpdateLimits(0, location, 0, 35, 10, &snap, toggles)

	// the lower upcoming limit ~56m ahead wins inside the lookahead
	assert.Equal(t, float32(13), slc.SpeedLimit)
	assert.Equal(t, float32(13), slc.NextSpeedLimit)
	assert.InDelta(t, 56, slc.NextSpeedLimitDistance, 3)

	// too far out at crawling speed
	slc.UpdateLimits(0, location, 0, 35, 2, &snap, toggles)
	assert.Equal(t, float32(30), slc.SpeedLimit)
}

func TestSpeedLimitExperimentalFallback(t *testing.T) {
	redirectParams(t)
	toggles := slcToggles()
	toggles.SpeedLimitFallback = "experimental"

	snap := Snapshot{}
	snap.Init()

	slc := NewSpeedLimitController()

	slc.UpdateLimits(0, Location{}, 0, 30, 15, &snap, toggles)
	assert.True(t, slc.ExperimentalMode)

	slc.UpdateLimits(20, Location{}, 0, 30, 15, &snap, toggles)
	assert.False(t, slc.ExperimentalMode)
}
