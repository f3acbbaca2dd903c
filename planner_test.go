package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/plannerd/cereal/log"
	ms "pfeifer.dev/plannerd/settings"
)

func plannerSnapshot() Snapshot {
	snap := Snapshot{}
	snap.Init()
	snap.Controls.Enabled = true
	snap.Controls.Personality = log.LongitudinalPersonality_standard
	snap.Controls.VCruise = 72 // kph, 20 m/s
	snap.Car.VEgo = 15
	snap.Model.PositionX = []float32{0, 50, 150}
	return snap
}

func TestPlannerModelStopped(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()

	p := NewPlanner()
	p.Update(&snap, toggles)
	assert.False(t, p.ModelStopped)
	assert.Equal(t, float32(150), p.ModelLength)

	snap.Model.PositionX = []float32{0, 10, 40}
	p.Update(&snap, toggles)
	assert.True(t, p.ModelStopped)

	// an empty model keeps the previous length
	snap.Model.PositionX = nil
	p.Update(&snap, toggles)
	assert.Equal(t, float32(40), p.ModelLength)
}

func TestPlannerVCruiseCap(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()
	snap.Controls.VCruise = 200

	p := NewPlanner()
	p.Update(&snap, toggles)

	assert.InDelta(t, ms.V_CRUISE_MAX*ms.KPH_TO_MS, p.Target.Speed, 1e-4)
}

func TestPlannerLateralAcceleration(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()
	snap.Car.VEgo = 10
	snap.Car.SteeringAngleDeg = 25

	p := NewPlanner()
	p.Update(&snap, toggles)

	// v^2 * steer angle / (ratio * wheelbase) with the default geometry
	assert.InDelta(t, 100*25*ms.TO_RADIANS/(15.0*2.7), p.LateralAcceleration, 1e-4)
	assert.False(t, p.DrivingInCurve)

	// the curve flag trails by one cycle
	p.Update(&snap, toggles)
	assert.True(t, p.DrivingInCurve)
}

func TestPlannerCurvatureDetection(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()
	snap.Model.OrientationRateZ = []float32{0.3, 0.3}
	snap.Model.VelocityX = []float32{15, 15}

	p := NewPlanner()
	p.Update(&snap, toggles)

	// curvature 0.02, curve speed ~7.07 below vEgo
	assert.InDelta(t, 0.02, p.RoadCurvature, 1e-4)
	assert.True(t, p.RoadCurvatureDetected)

	// blinkers suppress the detection
	snap.Car.LeftBlinker = true
	p.Update(&snap, toggles)
	assert.False(t, p.RoadCurvatureDetected)

	// gentle curvature at speed is not a curve
	snap.Car.LeftBlinker = false
	snap.Model.OrientationRateZ = []float32{0.01, 0.01}
	p.Update(&snap, toggles)
	assert.False(t, p.RoadCurvatureDetected)
}

func TestPlannerLateralCheck(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.PauseLateralBelowSpeed = 10

	snap := plannerSnapshot()
	snap.Car.VEgo = 5

	p := NewPlanner()
	p.Update(&snap, toggles)
	assert.False(t, p.LateralCheck)

	// above the pause speed
	snap.Car.VEgo = 15
	p.Update(&snap, toggles)
	assert.True(t, p.LateralCheck)

	// below it, but no blinker and the signal pause is on
	snap.Car.VEgo = 5
	toggles.PauseLateralBelowSignal = true
	p.Update(&snap, toggles)
	assert.True(t, p.LateralCheck)

	// blinker on cancels the signal exemption
	snap.Car.LeftBlinker = true
	p.Update(&snap, toggles)
	assert.False(t, p.LateralCheck)

	// standstill always passes
	snap.Car.Standstill = true
	p.Update(&snap, toggles)
	assert.True(t, p.LateralCheck)
}

func TestPlannerLeadTracking(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()
	snap.Lead = Lead{DRel: 40, VLead: 15, Status: true}

	p := NewPlanner()
	for range 20 {
		p.Update(&snap, toggles)
	}
	assert.True(t, p.TrackingLead)

	// the filter decays once the lead is lost
	snap.Lead.Status = false
	for range 20 {
		p.Update(&snap, toggles)
	}
	assert.False(t, p.TrackingLead)
}

func TestPlannerLeadTrackingFrozenAtStandstill(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()

	snap := plannerSnapshot()
	snap.Lead = Lead{DRel: 40, VLead: 15, Status: true}

	p := NewPlanner()
	for range 20 {
		p.Update(&snap, toggles)
	}
	assert.True(t, p.TrackingLead)

	// losing the lead at standstill does not drop the tracked state
	snap.Car.Standstill = true
	snap.Lead.Status = false
	for range 40 {
		p.Update(&snap, toggles)
	}
	assert.True(t, p.TrackingLead)
}

func TestPlannerLaneWidths(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.LaneDetection = true

	snap := plannerSnapshot()
	line := func(y float32) Path {
		return Path{X: []float32{0, 10}, Y: []float32{y, y}}
	}
	snap.Model.LaneLines = []Path{line(5.2), line(1.7), line(-1.7), line(-5.2)}
	snap.Model.RoadEdges = []Path{line(7), line(-7)}

	p := NewPlanner()
	p.Update(&snap, toggles)

	assert.InDelta(t, 3.5, p.LaneWidthLeft, 1e-4)
	assert.InDelta(t, 3.5, p.LaneWidthRight, 1e-4)

	// below the lane change speed the widths zero out
	snap.Car.VEgo = 1
	p.Update(&snap, toggles)
	assert.Zero(t, p.LaneWidthLeft)
	assert.Zero(t, p.LaneWidthRight)
}

func TestPlannerDeterministic(t *testing.T) {
	redirectParams(t)
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.ConditionalMode = true
	toggles.ConditionalCurves = true

	snap := plannerSnapshot()
	snap.Lead = Lead{DRel: 40, VLead: 10, Status: true}
	snap.Model.OrientationRateZ = []float32{0.3, 0.3}
	snap.Model.VelocityX = []float32{15, 15}

	a := NewPlanner()
	b := NewPlanner()
	for range 50 {
		a.Update(&snap, toggles)
		b.Update(&snap, toggles)
	}

	assert.Equal(t, a.Target, b.Target)
	assert.Equal(t, a.TrackingLead, b.TrackingLead)
	assert.Equal(t, a.RoadCurvature, b.RoadCurvature)
	assert.Equal(t, a.Events.Summary(), b.Events.Summary())
}
