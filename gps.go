package main

import (
	"encoding/json"

	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
	"pfeifer.dev/plannerd/utils"
)

type gpsPosition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Bearing   float64 `json:"bearing"`
}

// PublishGpsPosition shares the current fix with the map daemon through a
// memory param. Without a fix the param is removed so consumers see "no
// position" instead of a stale one. Best effort, never fails the cycle.
func PublishGpsPosition(location Location) {
	if !location.HasFix {
		utils.Logde(params.RemoveParam(params.LAST_GPS_POSITION))
		return
	}

	position := gpsPosition{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Bearing:   location.BearingRad * ms.TO_DEGREES,
	}

	data, err := json.Marshal(position)
	if err != nil {
		utils.Loge(err)
		return
	}

	utils.Logwe(params.PutParam(params.LAST_GPS_POSITION, data))
}
