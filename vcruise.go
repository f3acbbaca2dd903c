package main

import (
	"math"

	ms "pfeifer.dev/plannerd/settings"
)

// CruiseTarget is the arbitrated output for one cycle. FullStop demands an
// immediate hold at zero regardless of Speed.
type CruiseTarget struct {
	Speed    float32
	FullStop bool
}

// VCruiseInputs are the planner scalars the arbitration reads this cycle.
type VCruiseInputs struct {
	StopLightDetected     bool
	ModelStopped          bool
	ModelLength           float32
	RoadCurvature         float32
	RoadCurvatureDetected bool
	TrackingLead          bool
	FollowingLead         bool
}

// VCruise blends the braking, turn speed and speed limit targets into one
// cruise speed and runs the forced stop state machine.
type VCruise struct {
	Mtsc MapTurnSpeedController
	Slc  SpeedLimitController

	ForcingStop        bool
	TrackedModelLength float32

	BrakingTarget float32
	MtscTarget    float32
	VtscTarget    float32
	SlcTarget     float32
	SlcOffset     float32

	forceStopTimer    float32
	overrideForceStop bool
	overrideTimer     float32
}

func NewVCruise() VCruise {
	return VCruise{
		Mtsc: NewMapTurnSpeedController(),
		Slc:  NewSpeedLimitController(),
	}
}

func (v *VCruise) Update(location Location, vCruise, vEgo float32, snap *Snapshot, in VCruiseInputs, toggles ms.PlannerSettings) CruiseTarget {
	forceStop := in.StopLightDetected && snap.Controls.Enabled && toggles.ForceStops
	forceStop = forceStop && in.ModelStopped
	forceStop = forceStop && v.overrideTimer <= 0

	if forceStop {
		v.forceStopTimer += ms.DT
	} else {
		v.forceStopTimer = 0
	}

	forceStopEnabled := v.forceStopTimer >= ms.FORCE_STOP_ARM_TIME

	v.overrideForceStop = v.overrideForceStop || snap.Car.GasPressed
	v.overrideForceStop = v.overrideForceStop || snap.CarExt.AccelPressed
	v.overrideForceStop = v.overrideForceStop && forceStopEnabled

	if v.overrideForceStop {
		v.overrideTimer = ms.FORCE_STOP_OVERRIDE_TIME
	} else if v.overrideTimer > 0 {
		v.overrideTimer -= ms.DT
	}

	vCruiseCluster := max(snap.Controls.VCruiseCluster*ms.KPH_TO_MS, vCruise)
	vCruiseDiff := vCruiseCluster - vCruise

	vEgoCluster := max(snap.Car.VEgoCluster, vEgo)
	vEgoDiff := vEgoCluster - vEgo

	// linear braking toward a slower lead that is not yet inside the gap
	leadBraking := snap.Lead.VLead < vEgo && vEgo > ms.CRUISING_SPEED
	if leadBraking && snap.Controls.Enabled && in.TrackingLead && toggles.HumanFollowing && !in.FollowingLead {
		decelRate := (vEgo - snap.Lead.VLead) * (vEgo - snap.Lead.VLead) / snap.Lead.DRel
		v.BrakingTarget = max(vEgo-decelRate*ms.DT, snap.Lead.VLead+ms.CRUISING_SPEED)
	} else {
		v.BrakingTarget = vCruise
	}

	// map based turn speed
	if vEgo > ms.CRUISING_SPEED && snap.Controls.Enabled && toggles.MapTurnSpeedController {
		mtscActive := v.MtscTarget < vCruise

		if in.RoadCurvatureDetected && mtscActive {
			// hold while the vision detector confirms the curve
		} else if !in.RoadCurvatureDetected && toggles.MtscCurvatureCheck {
			v.MtscTarget = vCruise
		} else {
			mapCurvature := v.Mtsc.GetMapCurvature(location, vEgo)
			mtscSpeed := float32(math.Sqrt(float64(ms.TARGET_LAT_A * toggles.TurnAggressiveness / (mapCurvature * toggles.CurveSensitivity))))
			v.MtscTarget = max(ms.CRUISING_SPEED, mtscSpeed)
		}
	} else {
		v.MtscTarget = vCruise
	}

	// posted speed limits
	if toggles.SpeedLimitController {
		v.Slc.UpdateLimits(snap.CarExt.DashboardSpeedLimit, location, snap.Nav.SpeedLimit, vCruise, vEgo, snap, toggles)
		v.Slc.UpdateOverride(vCruise, vCruiseDiff, vEgo, vEgoDiff, snap, toggles)

		v.SlcOffset = v.Slc.Offset
		v.SlcTarget = v.Slc.Target
	} else if toggles.ShowSpeedLimits {
		v.Slc.UpdateLimits(snap.CarExt.DashboardSpeedLimit, location, snap.Nav.SpeedLimit, vCruise, vEgo, snap, toggles)

		v.SlcOffset = 0
		v.SlcTarget = v.Slc.Target
	} else {
		v.SlcOffset = 0
		v.SlcTarget = 0
	}

	// vision based turn speed
	if vEgo > ms.CRUISING_SPEED && snap.Controls.Enabled && in.RoadCurvatureDetected && toggles.VisionTurnSpeedController {
		curvature := float32(math.Abs(float64(in.RoadCurvature)))
		vtscSpeed := float32(math.Sqrt(float64(ms.TARGET_LAT_A * toggles.TurnAggressiveness / (curvature * toggles.CurveSensitivity))))
		v.VtscTarget = max(ms.CRUISING_SPEED, vtscSpeed)
	} else {
		v.VtscTarget = vCruise
	}

	target := CruiseTarget{Speed: vCruise}

	if snap.Car.Standstill && !v.overrideForceStop && snap.Controls.Enabled && toggles.ForceStandstill {
		v.ForcingStop = true

		target = CruiseTarget{FullStop: true}
	} else if forceStopEnabled && !v.overrideForceStop {
		v.ForcingStop = v.ForcingStop || !snap.Car.Standstill

		v.TrackedModelLength = max(v.TrackedModelLength-vEgo*ms.DT, 0)
		target.Speed = min(float32(math.Floor(float64(v.TrackedModelLength/ms.PLANNER_TIME))), vCruise)
	} else {
		v.ForcingStop = false

		v.TrackedModelLength = in.ModelLength

		targets := []float32{v.BrakingTarget, v.MtscTarget, v.VtscTarget, vCruise}
		if toggles.SpeedLimitController {
			targets = append(targets, max(v.Slc.OverriddenSpeed, v.SlcTarget+v.SlcOffset)-vEgoDiff)
		}

		for _, candidate := range targets {
			if candidate <= ms.CRUISING_SPEED {
				candidate = vCruise
			}
			target.Speed = min(target.Speed, candidate)
		}
	}

	// report the turn targets in cluster units
	v.MtscTarget += vCruiseDiff
	v.VtscTarget += vCruiseDiff

	return target
}
