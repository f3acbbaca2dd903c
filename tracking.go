package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"pfeifer.dev/plannerd/params"
	ms "pfeifer.dev/plannerd/settings"
	"pfeifer.dev/plannerd/utils"
)

// UsageStats is the persisted engagement time blob.
type UsageStats struct {
	TotalAOLTime          float64 `json:"TotalAOLTime"`
	TotalLateralTime      float64 `json:"TotalLateralTime"`
	TotalLongitudinalTime float64 `json:"TotalLongitudinalTime"`
	TotalTrackedTime      float64 `json:"TotalTrackedTime"`
}

// Tracking accumulates usage counters per tick and flushes them to params
// once the drive has settled at a standstill.
type Tracking struct {
	Stats           UsageStats
	TotalDrives     int64
	TotalKilometers float64
	TotalMinutes    float64

	driveAdded bool
	enabled    bool

	aolEngagedTime          float64
	driveDistance           float64
	driveTime               float64
	lateralEngagedTime      float64
	longitudinalEngagedTime float64
}

func NewTracking() *Tracking {
	t := &Tracking{}

	if data, err := params.GetParam(params.PLANNER_STATS); err == nil {
		utils.Logde(json.Unmarshal(data, &t.Stats))
	}

	t.TotalDrives = getParamInt(params.PLANNER_DRIVES)
	t.TotalKilometers = getParamFloat(params.PLANNER_KILOMETERS)
	t.TotalMinutes = getParamFloat(params.PLANNER_MINUTES)

	return t
}

func (t *Tracking) Update(snap *Snapshot) {
	t.enabled = t.enabled || snap.Controls.Enabled || snap.CarExt.AlwaysOnLateralEnabled

	t.driveDistance += float64(snap.Car.VEgo) * ms.DT
	t.driveTime += ms.DT

	if snap.Control.LatActive {
		t.lateralEngagedTime += ms.DT
	}
	if snap.Control.LongActive {
		t.longitudinalEngagedTime += ms.DT
	} else if snap.CarExt.AlwaysOnLateralEnabled {
		t.aolEngagedTime += ms.DT
	}

	if t.driveTime > 60 && snap.Car.Standstill && t.enabled {
		t.flush()
	}
}

func (t *Tracking) flush() {
	t.TotalKilometers += t.driveDistance / 1000
	putParamFloatNonblocking(params.PLANNER_KILOMETERS, t.TotalKilometers)
	t.driveDistance = 0

	t.TotalMinutes += t.driveTime / 60
	putParamFloatNonblocking(params.PLANNER_MINUTES, t.TotalMinutes)

	t.Stats.TotalAOLTime += t.aolEngagedTime
	t.Stats.TotalLateralTime += t.lateralEngagedTime
	t.Stats.TotalLongitudinalTime += t.longitudinalEngagedTime
	t.Stats.TotalTrackedTime += t.driveTime

	if data, err := json.Marshal(t.Stats); err != nil {
		utils.Loge(err)
	} else {
		go func() { utils.Logwe(params.PutParam(params.PLANNER_STATS, data)) }()
	}

	t.aolEngagedTime = 0
	t.driveTime = 0
	t.lateralEngagedTime = 0
	t.longitudinalEngagedTime = 0

	if !t.driveAdded {
		t.TotalDrives += 1
		drives := t.TotalDrives
		go func() {
			utils.Logwe(params.PutParam(params.PLANNER_DRIVES, []byte(strconv.FormatInt(drives, 10))))
		}()
		t.driveAdded = true
	}
}

func getParamInt(path string) int64 {
	data, err := params.GetParam(path)
	if err != nil {
		return 0
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		utils.Logde(err)
		return 0
	}
	return value
}

func getParamFloat(path string) float64 {
	data, err := params.GetParam(path)
	if err != nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		utils.Logde(err)
		return 0
	}
	return value
}

func putParamFloatNonblocking(path string, value float64) {
	go func() {
		utils.Logwe(params.PutParam(path, []byte(strconv.FormatFloat(value, 'f', -1, 64))))
	}()
}
