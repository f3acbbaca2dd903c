package cereal

import (
	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/cereal/log"
)

func PlannerInCreator(evt log.Event) (custom.PlannerIn, error) {
	return evt.NewPlannerIn()
}

func PlannerOutCreator(evt log.Event) (custom.PlannerOut, error) {
	return evt.NewPlannerOut()
}
