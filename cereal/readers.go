package cereal

import (
	"pfeifer.dev/plannerd/cereal/car"
	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/cereal/log"
)

func CarStateReader(evt log.Event) (car.CarState, error) {
	return evt.CarState()
}

func ControlsStateReader(evt log.Event) (log.ControlsState, error) {
	return evt.ControlsState()
}

func RadarStateReader(evt log.Event) (log.RadarState, error) {
	return evt.RadarState()
}

func LiveLocationKalmanReader(evt log.Event) (log.LiveLocationKalman, error) {
	return evt.LiveLocationKalman()
}

func ModelV2Reader(evt log.Event) (log.ModelDataV2, error) {
	return evt.ModelV2()
}

func CarStateExtReader(evt log.Event) (custom.CarStateExt, error) {
	return evt.CarStateExt()
}

func NavigationReader(evt log.Event) (custom.NavigationState, error) {
	return evt.Navigation()
}

func PlannerInReader(evt log.Event) (custom.PlannerIn, error) {
	return evt.PlannerIn()
}

func PlannerOutReader(evt log.Event) (custom.PlannerOut, error) {
	return evt.PlannerOut()
}

func CarControlReader(evt log.Event) (log.CarControl, error) {
	return evt.CarControl()
}
