package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "pfeifer.dev/plannerd/settings"
)

func vcruiseSnapshot() Snapshot {
	snap := Snapshot{}
	snap.Init()
	snap.Controls.Enabled = true
	return snap
}

func TestForceStopArmsAfterHold(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStops = true

	snap := vcruiseSnapshot()
	snap.Car.VEgo = 10

	v := NewVCruise()
	in := VCruiseInputs{StopLightDetected: true, ModelStopped: true, ModelLength: 100}

	// 19 ticks is just short of the arm time
	var target CruiseTarget
	for range 19 {
		target = v.Update(Location{}, 20, 10, &snap, in, toggles)
	}
	assert.False(t, v.ForcingStop)
	assert.Equal(t, float32(20), target.Speed)

	// the 20th tick crosses one second
	target = v.Update(Location{}, 20, 10, &snap, in, toggles)
	assert.True(t, v.ForcingStop)
	assert.Less(t, target.Speed, float32(20))
	assert.False(t, target.FullStop)
}

func TestForceStopRequiresContinuousDetection(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStops = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	detected := VCruiseInputs{StopLightDetected: true, ModelStopped: true, ModelLength: 100}
	lost := VCruiseInputs{ModelStopped: true, ModelLength: 100}

	for range 19 {
		v.Update(Location{}, 20, 10, &snap, detected, toggles)
	}
	v.Update(Location{}, 20, 10, &snap, lost, toggles)
	for range 19 {
		v.Update(Location{}, 20, 10, &snap, detected, toggles)
	}

	assert.False(t, v.ForcingStop)
}

func TestForceStopRampsDownTrackedLength(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStops = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	in := VCruiseInputs{StopLightDetected: true, ModelStopped: true, ModelLength: 100}

	for range 20 {
		v.Update(Location{}, 20, 10, &snap, in, toggles)
	}

	// tracked length decays with distance travelled
	assert.InDelta(t, 99.5, v.TrackedModelLength, 1e-4)

	target := v.Update(Location{}, 20, 10, &snap, in, toggles)
	assert.InDelta(t, 99.0, v.TrackedModelLength, 1e-4)
	assert.Equal(t, float32(9), target.Speed)
}

func TestForceStopGasOverride(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStops = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	in := VCruiseInputs{StopLightDetected: true, ModelStopped: true, ModelLength: 100}

	for range 25 {
		v.Update(Location{}, 20, 10, &snap, in, toggles)
	}
	assert.True(t, v.ForcingStop)

	snap.Car.GasPressed = true
	target := v.Update(Location{}, 20, 10, &snap, in, toggles)
	assert.False(t, v.ForcingStop)
	assert.Equal(t, float32(20), target.Speed)

	// the override lingers after the pedal is released
	snap.Car.GasPressed = false
	for range 20 {
		target = v.Update(Location{}, 20, 10, &snap, in, toggles)
	}
	assert.False(t, v.ForcingStop)
	assert.Equal(t, float32(20), target.Speed)
}

func TestForceStopReArmsAfterOverrideCooldown(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStops = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	in := VCruiseInputs{StopLightDetected: true, ModelStopped: true, ModelLength: 100}

	for range 25 {
		v.Update(Location{}, 20, 10, &snap, in, toggles)
	}
	require.True(t, v.ForcingStop)

	snap.Car.GasPressed = true
	v.Update(Location{}, 20, 10, &snap, in, toggles)
	snap.Car.GasPressed = false
	require.False(t, v.ForcingStop)

	// arming stays blocked through the whole cooldown, then needs a full
	// second of continuous detection again
	ticks := 0
	for !v.ForcingStop {
		v.Update(Location{}, 20, 10, &snap, in, toggles)
		ticks++
		require.Less(t, ticks, 240)
	}
	assert.GreaterOrEqual(t, ticks, 215)
	assert.InDelta(t, 220, ticks, 3)
}

func TestForceStandstillHoldsFullStop(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ForceStandstill = true

	snap := vcruiseSnapshot()
	snap.Car.Standstill = true

	v := NewVCruise()
	target := v.Update(Location{}, 20, 0, &snap, VCruiseInputs{ModelLength: 100}, toggles)

	assert.True(t, target.FullStop)
	assert.Zero(t, target.Speed)
	assert.True(t, v.ForcingStop)
}

func TestLeadBrakingTarget(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.HumanFollowing = true

	snap := vcruiseSnapshot()
	snap.Lead = Lead{DRel: 40, VLead: 10, Status: true}

	v := NewVCruise()
	in := VCruiseInputs{ModelLength: 200, TrackingLead: true}
	target := v.Update(Location{}, 25, 20, &snap, in, toggles)

	// (20-10)^2 / 40 * DT below vEgo
	assert.InDelta(t, 20-2.5*ms.DT, v.BrakingTarget, 1e-4)
	assert.Equal(t, v.BrakingTarget, target.Speed)
}

func TestLeadBrakingFloorsAboveLeadSpeed(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.HumanFollowing = true

	snap := vcruiseSnapshot()
	snap.Lead = Lead{DRel: 1, VLead: 10, Status: true}

	v := NewVCruise()
	in := VCruiseInputs{ModelLength: 200, TrackingLead: true}
	v.Update(Location{}, 25, 20, &snap, in, toggles)

	assert.Equal(t, float32(15), v.BrakingTarget)
}

func TestVtscSlowsForCurve(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.VisionTurnSpeedController = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	in := VCruiseInputs{ModelLength: 200, RoadCurvature: 0.02, RoadCurvatureDetected: true}
	target := v.Update(Location{}, 20, 15, &snap, in, toggles)

	// sqrt(2 / 0.02)
	assert.InDelta(t, 10, v.VtscTarget, 1e-4)
	assert.InDelta(t, 10, target.Speed, 1e-4)
}

func TestTargetsBelowFloorFallBackToCruise(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.VisionTurnSpeedController = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	// extreme curvature clamps the turn target to the floor, which is then
	// ignored in the blend
	in := VCruiseInputs{ModelLength: 200, RoadCurvature: 1.0, RoadCurvatureDetected: true}
	target := v.Update(Location{}, 20, 15, &snap, in, toggles)

	assert.Equal(t, float32(ms.CRUISING_SPEED), v.VtscTarget)
	assert.Equal(t, float32(20), target.Speed)
}

func TestMtscHoldsWhileCurveConfirmed(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.MapTurnSpeedController = true
	toggles.MtscCurvatureCheck = true

	snap := vcruiseSnapshot()

	v := NewVCruise()
	v.MtscTarget = 10

	in := VCruiseInputs{ModelLength: 200, RoadCurvatureDetected: true}
	v.Update(Location{}, 20, 15, &snap, in, toggles)
	assert.Equal(t, float32(10), v.MtscTarget)

	// detection lost with the curvature check on releases the hold
	in.RoadCurvatureDetected = false
	v.Update(Location{}, 20, 15, &snap, in, toggles)
	assert.Equal(t, float32(20), v.MtscTarget)
}

func TestTurnTargetsReportedInClusterUnits(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := vcruiseSnapshot()
	snap.Controls.VCruiseCluster = 90 // kph, 25 m/s

	v := NewVCruise()
	target := v.Update(Location{}, 20, 15, &snap, VCruiseInputs{ModelLength: 200}, toggles)

	assert.Equal(t, float32(20), target.Speed)
	assert.InDelta(t, 25, v.MtscTarget, 1e-4)
	assert.InDelta(t, 25, v.VtscTarget, 1e-4)
}
