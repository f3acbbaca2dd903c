package main

import (
	m "pfeifer.dev/plannerd/math"
	ms "pfeifer.dev/plannerd/settings"
)

var trafficModeBreakpoints = []float32{0, ms.CITY_SPEED_LIMIT}

// Following computes the jerk coefficients and follow gap handed to the
// longitudinal mpc, perturbed by relative lead speed for a more human
// approach and fallback.
type Following struct {
	FollowingLead bool
	SlowerLead    bool

	BaseAccelerationJerk float32
	BaseDangerJerk       float32
	BaseSpeedJerk        float32

	AccelerationJerk float32
	DangerJerk       float32
	SpeedJerk        float32

	TFollow               float32
	DesiredFollowDistance float32
}

func (f *Following) Update(vEgo float32, snap *Snapshot, trackingLead bool, toggles ms.PlannerSettings) {
	accelerating := snap.Car.AEgo >= 0

	if snap.Controls.Enabled && snap.CarExt.TrafficModeEnabled {
		if accelerating {
			f.BaseAccelerationJerk = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeJerkAcceleration[:])
			f.BaseSpeedJerk = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeJerkSpeed[:])
		} else {
			f.BaseAccelerationJerk = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeJerkDeceleration[:])
			f.BaseSpeedJerk = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeJerkSpeedDecrease[:])
		}

		f.BaseDangerJerk = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeJerkDanger[:])
		f.TFollow = m.Interp(vEgo, trafficModeBreakpoints, toggles.TrafficModeFollow[:])
	} else if snap.Controls.Enabled {
		f.BaseAccelerationJerk, f.BaseDangerJerk, f.BaseSpeedJerk = getJerkFactor(accelerating, snap.Controls.Personality, toggles)
		f.TFollow = getTFollow(snap.Controls.Personality, toggles)
	} else {
		f.BaseAccelerationJerk = 0
		f.BaseDangerJerk = 0
		f.BaseSpeedJerk = 0
		f.TFollow = 0
	}

	f.AccelerationJerk = f.BaseAccelerationJerk
	f.DangerJerk = f.BaseDangerJerk
	f.SpeedJerk = f.BaseSpeedJerk

	f.FollowingLead = trackingLead && snap.Lead.DRel < (f.TFollow+1)*vEgo

	if snap.Controls.Enabled && trackingLead {
		f.updateFollowValues(snap.Lead.DRel, vEgo, snap.Lead.VLead, toggles)
		f.DesiredFollowDistance = float32(int(desiredFollowDistance(vEgo, snap.Lead.VLead, f.TFollow)))
	} else {
		f.DesiredFollowDistance = 0
	}
}

func (f *Following) updateFollowValues(leadDistance, vEgo, vLead float32, toggles ms.PlannerSettings) {
	// ease into a faster lead instead of chasing it at full jerk
	if toggles.HumanFollowing && vLead > vEgo {
		distanceFactor := max(leadDistance-vEgo*f.TFollow, 1)
		acceleratingOffset := m.Clamp(ms.STOP_DISTANCE-vEgo, 1, distanceFactor)

		f.AccelerationJerk /= acceleratingOffset
		f.SpeedJerk /= acceleratingOffset
		f.TFollow /= acceleratingOffset
	}

	// stretch the gap toward a slower lead so braking starts earlier
	if (toggles.ConditionalSlowerLead || toggles.HumanFollowing) && vLead < vEgo {
		distanceFactor := max(leadDistance-vLead*f.TFollow, 1)
		brakingOffset := m.Clamp(min(vEgo-vLead, vLead)-ms.COMFORT_BRAKE, 1, distanceFactor)

		if toggles.HumanFollowing {
			farLeadOffset := float32(0)
			if !f.FollowingLead && vLead > ms.CITY_SPEED_LIMIT {
				farLeadOffset = max(leadDistance-vEgo*f.TFollow-ms.STOP_DISTANCE, 0)
			}
			f.TFollow /= brakingOffset + farLeadOffset
		}
		f.SlowerLead = brakingOffset > 1
	}
}
