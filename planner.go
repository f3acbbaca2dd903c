package main

import (
	"math"

	"pfeifer.dev/plannerd/cereal"
	"pfeifer.dev/plannerd/cereal/custom"
	m "pfeifer.dev/plannerd/math"
	ms "pfeifer.dev/plannerd/settings"
	"pfeifer.dev/plannerd/utils"
)

// Planner runs the full decision cycle: derive scalars from the snapshot,
// update the sub controllers in a fixed order and arbitrate the cruise
// target. Update must run exactly once per model cycle.
type Planner struct {
	Conditional  ConditionalMode
	Acceleration AccelerationLimits
	Events       Events
	Following    Following
	VCruise      VCruise

	DrivingInCurve        bool
	LateralCheck          bool
	ModelStopped          bool
	RoadCurvatureDetected bool
	TrackingLead          bool

	LaneWidthLeft       float32
	LaneWidthRight      float32
	LateralAcceleration float32
	ModelLength         float32
	RoadCurvature       float32

	Target CruiseTarget

	trackingLeadFilter m.FirstOrderFilter
}

func NewPlanner() *Planner {
	return &Planner{
		VCruise:            NewVCruise(),
		trackingLeadFilter: m.NewFirstOrderFilter(0, 1, ms.DT),
	}
}

func (p *Planner) Update(snap *Snapshot, toggles ms.PlannerSettings) {
	vCruise := min(snap.Controls.VCruise, ms.V_CRUISE_MAX) * ms.KPH_TO_MS
	vEgo := max(snap.Car.VEgo, 0)

	if snap.Controls.Enabled {
		p.Acceleration.Update(vEgo, toggles)
	} else {
		p.Acceleration.Zero()
	}

	// detector inputs are last cycle's values, the planner recomputes them
	// further down
	conditionalIn := ConditionalInputs{
		ModelLength:           p.ModelLength,
		RoadCurvatureDetected: p.RoadCurvatureDetected,
		TrackingLead:          p.TrackingLead,
		SlowerLead:            p.Following.SlowerLead,
	}
	if snap.Controls.Enabled && toggles.ConditionalMode {
		p.Conditional.Update(vEgo, snap, conditionalIn, toggles)
	} else {
		// stop detection stays live so forced stops can still arm
		p.Conditional.CurveDetected = false
		p.Conditional.StopSignAndLight(vEgo, snap.Lead, conditionalIn, ms.PLANNER_TIME-2)
	}

	p.DrivingInCurve = float32(math.Abs(float64(p.LateralAcceleration))) >= ms.MINIMUM_LATERAL_ACCELERATION

	eventIn := EventInputs{
		DrivingInCurve:    p.DrivingInCurve,
		ExperimentalMode:  p.Conditional.ExperimentalMode || p.VCruise.Slc.ExperimentalMode,
		ForcingStop:       p.VCruise.ForcingStop,
		SlowerLead:        p.Following.SlowerLead,
		SpeedLimitChanged: p.VCruise.Slc.SpeedLimitChanged(),
	}
	p.Events.Update(vCruise, snap, eventIn, toggles)

	p.Following.Update(vEgo, snap, p.TrackingLead, toggles)

	PublishGpsPosition(snap.Location)

	p.LateralAcceleration = vEgo * vEgo * (snap.Car.SteeringAngleDeg - snap.CarExt.AngleOffsetDeg) * ms.TO_RADIANS / (snap.CarExt.SteerRatio * snap.CarExt.Wheelbase)

	checkLaneWidth := toggles.AdjacentPaths || toggles.AdjacentPathMetrics || toggles.BlindSpotPath || toggles.LaneDetection
	if checkLaneWidth && vEgo >= toggles.MinimumLaneChangeSpeed && len(snap.Model.LaneLines) >= 4 && len(snap.Model.RoadEdges) >= 2 {
		p.LaneWidthLeft = CalculateLaneWidth(snap.Model.LaneLines[0], snap.Model.LaneLines[1], snap.Model.RoadEdges[0])
		p.LaneWidthRight = CalculateLaneWidth(snap.Model.LaneLines[3], snap.Model.LaneLines[2], snap.Model.RoadEdges[1])
	} else {
		p.LaneWidthLeft = 0
		p.LaneWidthRight = 0
	}

	blinkers := snap.Car.LeftBlinker || snap.Car.RightBlinker

	p.LateralCheck = vEgo >= toggles.PauseLateralBelowSpeed
	p.LateralCheck = p.LateralCheck || (!blinkers && toggles.PauseLateralBelowSignal)
	p.LateralCheck = p.LateralCheck || snap.Car.Standstill

	if count := len(snap.Model.PositionX); count > 0 {
		p.ModelLength = snap.Model.PositionX[count-1]
	}

	p.ModelStopped = p.ModelLength < ms.CRUISING_SPEED*ms.PLANNER_TIME
	p.ModelStopped = p.ModelStopped || p.VCruise.ForcingStop

	p.RoadCurvature = CalculateRoadCurvature(snap.Model, vEgo)

	// curve implies the speed is above the floor yet below what the
	// curvature allows
	curvatureSpeed := float32(math.Sqrt(math.Abs(1 / float64(p.RoadCurvature))))
	p.RoadCurvatureDetected = curvatureSpeed < vEgo && vEgo > ms.CRUISING_SPEED && !blinkers

	if !snap.Car.Standstill {
		p.TrackingLead = p.updateLeadStatus(snap.Lead)
	}

	vcruiseIn := VCruiseInputs{
		StopLightDetected:     p.Conditional.StopLightDetected,
		ModelStopped:          p.ModelStopped,
		ModelLength:           p.ModelLength,
		RoadCurvature:         p.RoadCurvature,
		RoadCurvatureDetected: p.RoadCurvatureDetected,
		TrackingLead:          p.TrackingLead,
		FollowingLead:         p.Following.FollowingLead,
	}
	p.Target = p.VCruise.Update(snap.Location, vCruise, vEgo, snap, vcruiseIn, toggles)
}

func (p *Planner) updateLeadStatus(lead Lead) bool {
	followingLead := lead.Status && lead.DRel < p.ModelLength+ms.STOP_DISTANCE

	p.trackingLeadFilter.UpdateBool(followingLead)
	return p.trackingLeadFilter.X >= ms.TRACKING_THRESHOLD*ms.TRACKING_THRESHOLD
}

func (p *Planner) Publish(pub *cereal.Publisher[custom.PlannerOut], snap *Snapshot, themeUpdated, togglesUpdated bool) {
	msg, plan := pub.NewMessage(snap.Valid())

	plan.SetAccelerationJerk(ms.A_CHANGE_COST * p.Following.AccelerationJerk)
	plan.SetAccelerationJerkStock(ms.A_CHANGE_COST * p.Following.BaseAccelerationJerk)
	plan.SetDangerJerk(ms.DANGER_ZONE_COST * p.Following.DangerJerk)
	plan.SetSpeedJerk(ms.J_EGO_COST * p.Following.SpeedJerk)
	plan.SetSpeedJerkStock(ms.J_EGO_COST * p.Following.BaseSpeedJerk)
	plan.SetTFollow(p.Following.TFollow)
	plan.SetDesiredFollowDistance(p.Following.DesiredFollowDistance)

	plan.SetExperimentalMode(p.Conditional.ExperimentalMode || p.VCruise.Slc.ExperimentalMode)

	plan.SetForcingStop(p.VCruise.ForcingStop)
	plan.SetForcingStopLength(p.VCruise.TrackedModelLength)
	plan.SetFullStop(p.Target.FullStop)

	plan.SetLaneWidthLeft(p.LaneWidthLeft)
	plan.SetLaneWidthRight(p.LaneWidthRight)

	plan.SetLateralAcceleration(p.LateralAcceleration)
	plan.SetLateralCheck(p.LateralCheck)

	plan.SetMaxAcceleration(p.Acceleration.MaxAccel)
	plan.SetMinAcceleration(p.Acceleration.MinAccel)

	plan.SetMtscSpeed(p.VCruise.MtscTarget)
	plan.SetVtscControllingCurve(p.VCruise.MtscTarget > p.VCruise.VtscTarget)
	plan.SetVtscSpeed(p.VCruise.VtscTarget)

	plan.SetRedLight(p.Conditional.StopLightDetected)

	plan.SetRoadCurvature(p.RoadCurvature)
	plan.SetDrivingInCurve(p.DrivingInCurve)

	plan.SetSlcMapSpeedLimit(p.VCruise.Slc.MapSpeedLimit)
	plan.SetSlcMapboxSpeedLimit(p.VCruise.Slc.NavigationSpeedLimit)
	plan.SetSlcNextSpeedLimit(p.VCruise.Slc.NextSpeedLimit)
	plan.SetSlcNextSpeedLimitDistance(p.VCruise.Slc.NextSpeedLimitDistance)
	plan.SetSlcOverriddenSpeed(p.VCruise.Slc.OverriddenSpeed)
	plan.SetSlcSpeedLimit(p.VCruise.SlcTarget)
	plan.SetSlcSpeedLimitOffset(p.VCruise.SlcOffset)
	plan.SetSlcSpeedLimitSource(p.VCruise.Slc.Source)
	plan.SetSpeedLimitChanged(p.VCruise.Slc.SpeedLimitChanged())
	plan.SetUnconfirmedSlcSpeedLimit(p.VCruise.Slc.UnconfirmedSpeedLimit)

	plan.SetSlowerLead(p.Following.SlowerLead)

	plan.SetThemeUpdated(themeUpdated)
	plan.SetTogglesUpdated(togglesUpdated)

	plan.SetTrackingLead(p.TrackingLead)

	plan.SetVCruise(p.Target.Speed)

	utils.Loge(plan.SetEvents(p.Events.Summary()))
	utils.Loge(pub.Send(msg))
}
