package main

import (
	"math"

	m "pfeifer.dev/plannerd/math"
)

// CalculateRoadCurvature estimates the tightest curvature over the predicted
// path from the model's yaw rate and forward velocity profiles.
func CalculateRoadCurvature(model Model, vEgo float32) float32 {
	count := min(len(model.OrientationRateZ), len(model.VelocityX))
	maxPredLatAccel := float32(0)
	for i := range count {
		latAccel := float32(math.Abs(float64(model.OrientationRateZ[i] * model.VelocityX[i])))
		if latAccel > maxPredLatAccel {
			maxPredLatAccel = latAccel
		}
	}

	denominator := max(vEgo, 1)
	return maxPredLatAccel / (denominator * denominator)
}

// CalculateLaneWidth measures the lateral distance from the current lane
// line to the adjacent lane line and the road edge, taking whichever is
// closer. All three polylines come from the model output.
func CalculateLaneWidth(lane Path, currentLane Path, roadEdge Path) float32 {
	if len(currentLane.X) == 0 || len(currentLane.X) != len(currentLane.Y) {
		return 0
	}

	distanceToLane := float32(0)
	distanceToRoadEdge := float32(0)
	for i, x := range currentLane.X {
		laneY := m.Interp(x, lane.X, lane.Y)
		edgeY := m.Interp(x, roadEdge.X, roadEdge.Y)
		distanceToLane += float32(math.Abs(float64(currentLane.Y[i] - laneY)))
		distanceToRoadEdge += float32(math.Abs(float64(currentLane.Y[i] - edgeY)))
	}
	distanceToLane /= float32(len(currentLane.X))
	distanceToRoadEdge /= float32(len(currentLane.X))

	return min(distanceToLane, distanceToRoadEdge)
}
