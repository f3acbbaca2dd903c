package settings

import (
	"math"
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond

	MS_TO_KPH  = 3.6
	KPH_TO_MS  = 1 / 3.6
	MPH_TO_MS  = 0.44704
	TO_RADIANS = math.Pi / 180
	TO_DEGREES = 180 / math.Pi

	R = 6373000.0 // approximate radius of earth in meters
)

const (
	// DT is the planner tick duration. All internal timers are tick
	// accumulators driven by this value, never wall clock.
	DT = 0.05 // s

	// PLANNER_TIME is the model prediction horizon.
	PLANNER_TIME = 10.0 // s

	// CRUISING_SPEED is the arbitration floor. Targets at or below it are
	// treated as non-binding.
	CRUISING_SPEED = 5.0 // m/s

	CITY_SPEED_LIMIT = 25 * MPH_TO_MS // m/s

	V_CRUISE_MAX = 145.0 // km/h, commanded cruise clamp

	MINIMUM_LATERAL_ACCELERATION = 1.0 // m/s^2

	// TRACKING_THRESHOLD is squared before comparison against the lead
	// filter output, widening the hysteresis.
	TRACKING_THRESHOLD = 0.6

	TARGET_LAT_A = 2.0 // m/s^2, turn speed lateral acceleration budget

	// Longitudinal mpc constants. The jerk outputs are scaled by the mpc
	// cost weights before publishing.
	STOP_DISTANCE    = 6.0 // m
	COMFORT_BRAKE    = 2.5 // m/s^2
	A_CHANGE_COST    = 200.0
	DANGER_ZONE_COST = 100.0
	J_EGO_COST       = 5.0

	A_CRUISE_MIN = -1.2 // m/s^2

	FORCE_STOP_ARM_TIME       = 1.0  // s of continuous arming before a forced stop engages
	FORCE_STOP_OVERRIDE_TIME  = 10.0 // s of cooldown after a driver override
	SPEED_LIMIT_CHANGED_TIME  = 5.0  // s the changed flag stays up after a new limit
	MAP_CURVATURE_FILTER_SIZE = 5    // ticks of map curvature smoothing
)

func GetSegmentSize(name string) int64 {
	return DEFAULT_SEGMENT_SIZE
}
