package main

import (
	ms "pfeifer.dev/plannerd/settings"
)

// ConditionalInputs carries the planner scalars the detector needs. Curve
// detection and lead flags come from the previous cycle because the planner
// recomputes them after the detector runs.
type ConditionalInputs struct {
	ModelLength           float32
	RoadCurvatureDetected bool
	TrackingLead          bool
	SlowerLead            bool
}

// ConditionalMode decides when the experimental longitudinal policy should
// take over from the cruise target, and detects upcoming stop signals from
// the predicted path.
type ConditionalMode struct {
	CurveDetected     bool
	StopLightDetected bool
	ExperimentalMode  bool
}

// StopSignAndLight flags a stop signal when the model predicts stopping
// within the lookahead and no tracked lead explains the short path.
func (c *ConditionalMode) StopSignAndLight(vEgo float32, lead Lead, in ConditionalInputs, lookahead float32) {
	leadStopping := in.TrackingLead && lead.DRel < in.ModelLength+ms.STOP_DISTANCE
	c.StopLightDetected = !leadStopping && in.ModelLength < vEgo*lookahead
}

func (c *ConditionalMode) Update(vEgo float32, snap *Snapshot, in ConditionalInputs, toggles ms.PlannerSettings) {
	c.StopSignAndLight(vEgo, snap.Lead, in, ms.PLANNER_TIME)

	c.CurveDetected = toggles.ConditionalCurves && in.RoadCurvatureDetected

	belowConditionalSpeed := toggles.ConditionalSpeed > 0 && vEgo < toggles.ConditionalSpeed
	slowerLead := toggles.ConditionalSlowerLead && in.SlowerLead

	c.ExperimentalMode = c.StopLightDetected || c.CurveDetected || belowConditionalSpeed || slowerLead
}
