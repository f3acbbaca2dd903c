package main

import (
	"time"

	"pfeifer.dev/plannerd/cereal"
	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/cli"
	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(30)

	snapshot := Snapshot{}
	snapshot.Init()

	planner := NewPlanner()
	tracking := NewTracking()

	carSub := cereal.NewSubscriber("carState", cereal.CarStateReader, true)
	carExtSub := cereal.NewSubscriber("carStateExt", cereal.CarStateExtReader, true)
	carControlSub := cereal.NewSubscriber("carControl", cereal.CarControlReader, true)
	controlsSub := cereal.NewSubscriber("controlsState", cereal.ControlsStateReader, true)
	locationSub := cereal.NewSubscriber("liveLocationKalman", cereal.LiveLocationKalmanReader, true)
	modelSub := cereal.NewSubscriber("modelV2", cereal.ModelV2Reader, true)
	navigationSub := cereal.NewSubscriber("navigation", cereal.NavigationReader, true)
	radarSub := cereal.NewSubscriber("radarState", cereal.RadarStateReader, true)

	plannerInSub := cereal.NewSubscriber("plannerIn", cereal.PlannerInReader, false)
	plannerOutPub := cereal.NewPublisher("plannerOut", cereal.PlannerOutCreator)

	for {
		time.Sleep(ms.LOOP_DELAY)

		themeUpdated := false
		togglesUpdated := false
		for {
			input, ok := plannerInSub.Read()
			if !ok {
				break
			}
			ms.Settings.Handle(input)
			togglesUpdated = true

			switch input.Type() {
			case custom.PlannerInputType_reloadSettings,
				custom.PlannerInputType_loadDefaultSettings,
				custom.PlannerInputType_loadRecommendedSettings:
				themeUpdated = true
			}
		}

		if carState, ok := carSub.Read(); ok {
			snapshot.UpdateCar(carState)
		}
		if carStateExt, ok := carExtSub.Read(); ok {
			snapshot.UpdateCarExt(carStateExt)
		}
		if carControl, ok := carControlSub.Read(); ok {
			snapshot.UpdateCarControl(carControl)
		}
		if controlsState, ok := controlsSub.Read(); ok {
			snapshot.UpdateControls(controlsState)
		}
		if location, ok := locationSub.Read(); ok {
			snapshot.UpdateLocation(location)
		}
		if model, ok := modelSub.Read(); ok {
			snapshot.UpdateModel(model)
		}
		if navigation, ok := navigationSub.Read(); ok {
			snapshot.UpdateNavigation(navigation)
		}
		if radarState, ok := radarSub.Read(); ok {
			snapshot.UpdateRadar(radarState)
		}

		toggles := ms.Settings

		planner.Update(&snapshot, toggles)
		planner.Publish(&plannerOutPub, &snapshot, themeUpdated, togglesUpdated)

		tracking.Update(&snapshot)
	}
}
