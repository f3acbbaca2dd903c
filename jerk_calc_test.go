package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pfeifer.dev/plannerd/cereal/log"
	ms "pfeifer.dev/plannerd/settings"
)

func TestJerkFactorStockPersonalities(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()

	accel, danger, speed := getJerkFactor(true, log.LongitudinalPersonality_aggressive, toggles)
	assert.Equal(t, float32(AGGRESSIVE_JERK), accel)
	assert.Equal(t, float32(AGGRESSIVE_JERK), danger)
	assert.Equal(t, float32(AGGRESSIVE_JERK), speed)

	accel, _, _ = getJerkFactor(false, log.LongitudinalPersonality_standard, toggles)
	assert.Equal(t, float32(STANDARD_JERK), accel)

	accel, _, _ = getJerkFactor(true, log.LongitudinalPersonality_relaxed, toggles)
	assert.Equal(t, float32(RELAXED_JERK), accel)
}

func TestJerkFactorCustomPersonalities(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.CustomPersonalities = true
	toggles.StandardJerkAcceleration = 0.7
	toggles.StandardJerkDeceleration = 0.9
	toggles.StandardJerkDanger = 1.1
	toggles.StandardJerkSpeed = 0.6
	toggles.StandardJerkSpeedDecrease = 0.8

	accel, danger, speed := getJerkFactor(true, log.LongitudinalPersonality_standard, toggles)
	assert.Equal(t, float32(0.7), accel)
	assert.Equal(t, float32(1.1), danger)
	assert.Equal(t, float32(0.6), speed)

	accel, danger, speed = getJerkFactor(false, log.LongitudinalPersonality_standard, toggles)
	assert.Equal(t, float32(0.9), accel)
	assert.Equal(t, float32(1.1), danger)
	assert.Equal(t, float32(0.8), speed)
}

func TestTFollow(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()

	assert.Equal(t, float32(AGGRESSIVE_FOLLOW), getTFollow(log.LongitudinalPersonality_aggressive, toggles))
	assert.Equal(t, float32(STANDARD_FOLLOW), getTFollow(log.LongitudinalPersonality_standard, toggles))
	assert.Equal(t, float32(RELAXED_FOLLOW), getTFollow(log.LongitudinalPersonality_relaxed, toggles))

	toggles.CustomPersonalities = true
	toggles.RelaxedFollow = 2.1
	assert.Equal(t, float32(2.1), getTFollow(log.LongitudinalPersonality_relaxed, toggles))
}

func TestDesiredFollowDistance(t *testing.T) {
	// matched speeds cancel the braking terms, leaving gap time plus the
	// stop distance
	got := desiredFollowDistance(20, 20, 1.45)
	assert.InDelta(t, 1.45*20+ms.STOP_DISTANCE, got, 1e-4)

	// a stopped lead gets no stopping credit
	got = desiredFollowDistance(20, 0, 1.45)
	assert.InDelta(t, 400/(2*ms.COMFORT_BRAKE)+1.45*20+ms.STOP_DISTANCE, got, 1e-4)

	// a faster lead shrinks the desired gap
	assert.Less(t, desiredFollowDistance(20, 25, 1.45), desiredFollowDistance(20, 20, 1.45))
}
