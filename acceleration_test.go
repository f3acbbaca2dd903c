package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ms "pfeifer.dev/plannerd/settings"
)

func TestAccelerationProfiles(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()

	limits := AccelerationLimits{}

	toggles.AccelerationProfile = ACCELERATION_PROFILE_ECO
	limits.Update(10, toggles)
	assert.InDelta(t, 0.9, limits.MaxAccel, 1e-6)

	toggles.AccelerationProfile = ACCELERATION_PROFILE_STANDARD
	limits.Update(10, toggles)
	assert.InDelta(t, 1.2, limits.MaxAccel, 1e-6)

	toggles.AccelerationProfile = ACCELERATION_PROFILE_SPORT
	limits.Update(10, toggles)
	assert.InDelta(t, 2.4, limits.MaxAccel, 1e-6)

	assert.Equal(t, float32(ms.A_CRUISE_MIN), limits.MinAccel)
}

func TestAccelerationInterpolatesBetweenBreakpoints(t *testing.T) {
	toggles := ms.PlannerSettings{}
	toggles.Default()
	toggles.AccelerationProfile = ACCELERATION_PROFILE_STANDARD

	limits := AccelerationLimits{}
	limits.Update(5, toggles)

	assert.InDelta(t, 1.4, limits.MaxAccel, 1e-6)
}

func TestAccelerationZero(t *testing.T) {
	limits := AccelerationLimits{MaxAccel: 1.2, MinAccel: -1.2}
	limits.Zero()

	assert.Zero(t, limits.MaxAccel)
	assert.Zero(t, limits.MinAccel)
}
