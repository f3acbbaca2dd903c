package main

import (
	"pfeifer.dev/plannerd/cereal/log"
	ms "pfeifer.dev/plannerd/settings"
)

// Baseline jerk factors and follow gaps per personality when custom
// personalities are disabled.
const (
	AGGRESSIVE_JERK   = 0.5
	STANDARD_JERK     = 1.0
	RELAXED_JERK      = 1.0
	AGGRESSIVE_FOLLOW = 1.25
	STANDARD_FOLLOW   = 1.45
	RELAXED_FOLLOW    = 1.75
)

func getJerkFactor(accelerating bool, personality log.LongitudinalPersonality, toggles ms.PlannerSettings) (accelJerk, dangerJerk, speedJerk float32) {
	if !toggles.CustomPersonalities {
		switch personality {
		case log.LongitudinalPersonality_aggressive:
			return AGGRESSIVE_JERK, AGGRESSIVE_JERK, AGGRESSIVE_JERK
		case log.LongitudinalPersonality_relaxed:
			return RELAXED_JERK, RELAXED_JERK, RELAXED_JERK
		default:
			return STANDARD_JERK, STANDARD_JERK, STANDARD_JERK
		}
	}

	switch personality {
	case log.LongitudinalPersonality_aggressive:
		if accelerating {
			return toggles.AggressiveJerkAcceleration, toggles.AggressiveJerkDanger, toggles.AggressiveJerkSpeed
		}
		return toggles.AggressiveJerkDeceleration, toggles.AggressiveJerkDanger, toggles.AggressiveJerkSpeedDecrease
	case log.LongitudinalPersonality_relaxed:
		if accelerating {
			return toggles.RelaxedJerkAcceleration, toggles.RelaxedJerkDanger, toggles.RelaxedJerkSpeed
		}
		return toggles.RelaxedJerkDeceleration, toggles.RelaxedJerkDanger, toggles.RelaxedJerkSpeedDecrease
	default:
		if accelerating {
			return toggles.StandardJerkAcceleration, toggles.StandardJerkDanger, toggles.StandardJerkSpeed
		}
		return toggles.StandardJerkDeceleration, toggles.StandardJerkDanger, toggles.StandardJerkSpeedDecrease
	}
}

func getTFollow(personality log.LongitudinalPersonality, toggles ms.PlannerSettings) float32 {
	if !toggles.CustomPersonalities {
		switch personality {
		case log.LongitudinalPersonality_aggressive:
			return AGGRESSIVE_FOLLOW
		case log.LongitudinalPersonality_relaxed:
			return RELAXED_FOLLOW
		default:
			return STANDARD_FOLLOW
		}
	}

	switch personality {
	case log.LongitudinalPersonality_aggressive:
		return toggles.AggressiveFollow
	case log.LongitudinalPersonality_relaxed:
		return toggles.RelaxedFollow
	default:
		return toggles.StandardFollow
	}
}

// getStoppedEquivalenceFactor is the distance credit for the lead's own
// stopping capability.
func getStoppedEquivalenceFactor(vLead float32) float32 {
	return (vLead * vLead) / (2 * ms.COMFORT_BRAKE)
}

func getSafeObstacleDistance(vEgo, tFollow float32) float32 {
	return (vEgo*vEgo)/(2*ms.COMFORT_BRAKE) + tFollow*vEgo + ms.STOP_DISTANCE
}

func desiredFollowDistance(vEgo, vLead, tFollow float32) float32 {
	return getSafeObstacleDistance(vEgo, tFollow) - getStoppedEquivalenceFactor(vLead)
}
