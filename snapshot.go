package main

import (
	"time"

	capnp "capnproto.org/go/capnp/v3"
	"pfeifer.dev/plannerd/cereal/car"
	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/cereal/log"
	"pfeifer.dev/plannerd/utils"
)

// MAX_INPUT_AGE is how stale the carState or controlsState groups may be
// before the published plan is flagged invalid.
const MAX_INPUT_AGE = 500 * time.Millisecond

type CarState struct {
	VEgo             float32
	VEgoCluster      float32
	AEgo             float32
	SteeringAngleDeg float32
	Standstill       bool
	LeftBlinker      bool
	RightBlinker     bool
	GasPressed       bool
	BrakePressed     bool
}

type CarStateExt struct {
	TrafficModeEnabled     bool
	AccelPressed           bool
	AlwaysOnLateralEnabled bool
	DashboardSpeedLimit    float32
	SteerRatio             float32
	Wheelbase              float32
	AngleOffsetDeg         float32
}

type ControlsState struct {
	Enabled        bool
	Personality    log.LongitudinalPersonality
	VCruise        float32
	VCruiseCluster float32
}

type CarControl struct {
	LatActive  bool
	LongActive bool
}

type Lead struct {
	DRel   float32
	VRel   float32
	VLead  float32
	Status bool
}

type Navigation struct {
	SpeedLimit float32
}

// Path is one polyline from the model output, x forward and y lateral in
// vehicle frame.
type Path struct {
	X []float32
	Y []float32
}

type Model struct {
	PositionX        []float32
	OrientationRateZ []float32
	VelocityX        []float32
	LaneLines        []Path
	RoadEdges        []Path
}

// Location is the localizer fix. HasFix is only true when the kalman status
// is valid, gps is ok and both measurement groups carry usable values.
type Location struct {
	HasFix     bool
	Latitude   float64
	Longitude  float64
	BearingRad float64
}

// Snapshot is the read-only per cycle input bundle. The daemon refreshes it
// from the conflated subscribers and the core never mutates it.
type Snapshot struct {
	Car      CarState
	CarExt   CarStateExt
	Controls ControlsState
	Control  CarControl
	Lead     Lead
	Nav      Navigation
	Model    Model
	Location Location

	carUpdated      utils.UpdateTracker
	controlsUpdated utils.UpdateTracker
}

func (s *Snapshot) Init() {
	s.carUpdated.Init(100)
	s.controlsUpdated.Init(100)
	s.CarExt.SteerRatio = 15.0
	s.CarExt.Wheelbase = 2.7
}

// Valid reports whether the freshness checks on the carState and
// controlsState groups pass for this cycle.
func (s *Snapshot) Valid() bool {
	return s.carUpdated.Age() < MAX_INPUT_AGE && s.controlsUpdated.Age() < MAX_INPUT_AGE
}

func (s *Snapshot) UpdateCar(data car.CarState) {
	s.Car.VEgo = data.VEgo()
	s.Car.VEgoCluster = data.VEgoCluster()
	s.Car.AEgo = data.AEgo()
	s.Car.SteeringAngleDeg = data.SteeringAngleDeg()
	s.Car.Standstill = data.Standstill()
	s.Car.LeftBlinker = data.LeftBlinker()
	s.Car.RightBlinker = data.RightBlinker()
	s.Car.GasPressed = data.GasPressed()
	s.Car.BrakePressed = data.BrakePressed()
	s.carUpdated.Update()
}

func (s *Snapshot) UpdateCarExt(data custom.CarStateExt) {
	s.CarExt.TrafficModeEnabled = data.TrafficModeEnabled()
	s.CarExt.AccelPressed = data.AccelPressed()
	s.CarExt.AlwaysOnLateralEnabled = data.AlwaysOnLateralEnabled()
	s.CarExt.DashboardSpeedLimit = data.DashboardSpeedLimit()
	if data.SteerRatio() > 0 {
		s.CarExt.SteerRatio = data.SteerRatio()
	}
	if data.Wheelbase() > 0 {
		s.CarExt.Wheelbase = data.Wheelbase()
	}
	s.CarExt.AngleOffsetDeg = data.AngleOffsetDeg()
}

func (s *Snapshot) UpdateControls(data log.ControlsState) {
	s.Controls.Enabled = data.Enabled()
	s.Controls.Personality = data.Personality()
	s.Controls.VCruise = data.VCruise()
	s.Controls.VCruiseCluster = data.VCruiseCluster()
	s.controlsUpdated.Update()
}

func (s *Snapshot) UpdateCarControl(data log.CarControl) {
	s.Control.LatActive = data.LatActive()
	s.Control.LongActive = data.LongActive()
}

func (s *Snapshot) UpdateRadar(data log.RadarState) {
	lead, err := data.LeadOne()
	if err != nil {
		utils.Logde(err)
		return
	}
	s.Lead.DRel = lead.DRel()
	s.Lead.VRel = lead.VRel()
	s.Lead.VLead = lead.VLead()
	s.Lead.Status = lead.Status()
}

func (s *Snapshot) UpdateNavigation(data custom.NavigationState) {
	s.Nav.SpeedLimit = data.NavigationSpeedLimit()
}

func (s *Snapshot) UpdateModel(data log.ModelDataV2) {
	position, err := data.Position()
	if err != nil {
		utils.Logde(err)
		return
	}
	orientationRate, err := data.OrientationRate()
	if err != nil {
		utils.Logde(err)
		return
	}
	velocity, err := data.Velocity()
	if err != nil {
		utils.Logde(err)
		return
	}

	s.Model.PositionX = readXYZTList(position, xAxis)
	s.Model.OrientationRateZ = readXYZTList(orientationRate, zAxis)
	s.Model.VelocityX = readXYZTList(velocity, xAxis)

	laneLines, err := data.LaneLines()
	if err != nil {
		utils.Logde(err)
		return
	}
	s.Model.LaneLines = readPaths(laneLines)

	roadEdges, err := data.RoadEdges()
	if err != nil {
		utils.Logde(err)
		return
	}
	s.Model.RoadEdges = readPaths(roadEdges)
}

func (s *Snapshot) UpdateLocation(data log.LiveLocationKalman) {
	s.Location.HasFix = false

	if !data.GpsOK() {
		return
	}
	if data.Status() != log.LiveLocationKalman_Status_valid {
		return
	}

	position, err := data.PositionGeodetic()
	if err != nil {
		utils.Logde(err)
		return
	}
	orientation, err := data.CalibratedOrientationNED()
	if err != nil {
		utils.Logde(err)
		return
	}
	if !position.Valid() {
		return
	}

	positionValues, err := position.Value()
	if err != nil {
		utils.Logde(err)
		return
	}
	orientationValues, err := orientation.Value()
	if err != nil {
		utils.Logde(err)
		return
	}
	if positionValues.Len() < 2 || orientationValues.Len() < 3 {
		return
	}

	s.Location.Latitude = positionValues.At(0)
	s.Location.Longitude = positionValues.At(1)
	s.Location.BearingRad = orientationValues.At(2)
	s.Location.HasFix = true
}

type xyztAxis int

const (
	xAxis xyztAxis = iota
	zAxis
)

func readXYZTList(data log.XYZTData, axis xyztAxis) []float32 {
	var list capnp.Float32List
	var err error
	switch axis {
	case xAxis:
		list, err = data.X()
	case zAxis:
		list, err = data.Z()
	}
	if err != nil {
		utils.Logde(err)
		return nil
	}
	return readFloat32List(list)
}

func readFloat32List(list capnp.Float32List) []float32 {
	values := make([]float32, list.Len())
	for i := range list.Len() {
		values[i] = list.At(i)
	}
	return values
}

func readPaths(lines log.XYZTData_List) []Path {
	paths := make([]Path, lines.Len())
	for i := range lines.Len() {
		line := lines.At(i)
		x, err := line.X()
		if err != nil {
			utils.Logde(err)
			continue
		}
		y, err := line.Y()
		if err != nil {
			utils.Logde(err)
			continue
		}
		paths[i] = Path{X: readFloat32List(x), Y: readFloat32List(y)}
	}
	return paths
}
