package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/plannerd/cereal/custom"
	"pfeifer.dev/plannerd/params"
	"pfeifer.dev/plannerd/utils"
)

var (
	Settings = PlannerSettings{}
)

// PlannerSettings is the process wide toggle bundle. The daemon snapshots it
// once per cycle and hands the copy to the planner core, so the core never
// reads it ambiently.
type PlannerSettings struct {
	LogLevel string `json:"log_level"`

	ConditionalMode       bool    `json:"conditional_mode"`
	ConditionalCurves     bool    `json:"conditional_curves"`
	ConditionalSlowerLead bool    `json:"conditional_slower_lead"`
	ConditionalSpeed      float32 `json:"conditional_speed"`

	ForceStops      bool `json:"force_stops"`
	ForceStandstill bool `json:"force_standstill"`
	HumanFollowing  bool `json:"human_following"`

	MapTurnSpeedController    bool    `json:"map_turn_speed_controller"`
	MtscCurvatureCheck        bool    `json:"mtsc_curvature_check"`
	VisionTurnSpeedController bool    `json:"vision_turn_speed_controller"`
	CurveSensitivity          float32 `json:"curve_sensitivity"`
	TurnAggressiveness        float32 `json:"turn_aggressiveness"`

	SpeedLimitController bool    `json:"speed_limit_controller"`
	ShowSpeedLimits      bool    `json:"show_speed_limits"`
	SpeedLimitOverride   bool    `json:"speed_limit_override"`
	SpeedLimitPriority1  string  `json:"speed_limit_priority_1"`
	SpeedLimitPriority2  string  `json:"speed_limit_priority_2"`
	SpeedLimitPriority3  string  `json:"speed_limit_priority_3"`
	SpeedLimitFallback   string  `json:"speed_limit_fallback"`
	OffsetLow            float32 `json:"offset_low"`
	OffsetCity           float32 `json:"offset_city"`
	OffsetHighway        float32 `json:"offset_highway"`
	OffsetMax            float32 `json:"offset_max"`

	CustomPersonalities bool `json:"custom_personalities"`

	AggressiveJerkAcceleration  float32 `json:"aggressive_jerk_acceleration"`
	AggressiveJerkDanger        float32 `json:"aggressive_jerk_danger"`
	AggressiveJerkDeceleration  float32 `json:"aggressive_jerk_deceleration"`
	AggressiveJerkSpeed         float32 `json:"aggressive_jerk_speed"`
	AggressiveJerkSpeedDecrease float32 `json:"aggressive_jerk_speed_decrease"`
	AggressiveFollow            float32 `json:"aggressive_follow"`

	StandardJerkAcceleration  float32 `json:"standard_jerk_acceleration"`
	StandardJerkDanger        float32 `json:"standard_jerk_danger"`
	StandardJerkDeceleration  float32 `json:"standard_jerk_deceleration"`
	StandardJerkSpeed         float32 `json:"standard_jerk_speed"`
	StandardJerkSpeedDecrease float32 `json:"standard_jerk_speed_decrease"`
	StandardFollow            float32 `json:"standard_follow"`

	RelaxedJerkAcceleration  float32 `json:"relaxed_jerk_acceleration"`
	RelaxedJerkDanger        float32 `json:"relaxed_jerk_danger"`
	RelaxedJerkDeceleration  float32 `json:"relaxed_jerk_deceleration"`
	RelaxedJerkSpeed         float32 `json:"relaxed_jerk_speed"`
	RelaxedJerkSpeedDecrease float32 `json:"relaxed_jerk_speed_decrease"`
	RelaxedFollow            float32 `json:"relaxed_follow"`

	TrafficModeJerkAcceleration  [2]float32 `json:"traffic_mode_jerk_acceleration"`
	TrafficModeJerkDanger        [2]float32 `json:"traffic_mode_jerk_danger"`
	TrafficModeJerkDeceleration  [2]float32 `json:"traffic_mode_jerk_deceleration"`
	TrafficModeJerkSpeed         [2]float32 `json:"traffic_mode_jerk_speed"`
	TrafficModeJerkSpeedDecrease [2]float32 `json:"traffic_mode_jerk_speed_decrease"`
	TrafficModeFollow            [2]float32 `json:"traffic_mode_follow"`

	AccelerationProfile int `json:"acceleration_profile"`

	LaneDetection          bool    `json:"lane_detection"`
	AdjacentPaths          bool    `json:"adjacent_paths"`
	AdjacentPathMetrics    bool    `json:"adjacent_path_metrics"`
	BlindSpotPath          bool    `json:"blind_spot_path"`
	MinimumLaneChangeSpeed float32 `json:"minimum_lane_change_speed"`

	PauseLateralBelowSpeed  float32 `json:"pause_lateral_below_speed"`
	PauseLateralBelowSignal bool    `json:"pause_lateral_below_signal"`
}

func (s *PlannerSettings) Default() {
	s.LogLevel = "error"

	s.ConditionalMode = false
	s.ConditionalCurves = false
	s.ConditionalSlowerLead = false
	s.ConditionalSpeed = 0

	s.ForceStops = false
	s.ForceStandstill = false
	s.HumanFollowing = false

	s.MapTurnSpeedController = false
	s.MtscCurvatureCheck = false
	s.VisionTurnSpeedController = false
	s.CurveSensitivity = 1.0
	s.TurnAggressiveness = 1.0

	s.SpeedLimitController = false
	s.ShowSpeedLimits = false
	s.SpeedLimitOverride = false
	s.SpeedLimitPriority1 = "dashboard"
	s.SpeedLimitPriority2 = "map"
	s.SpeedLimitPriority3 = "navigation"
	s.SpeedLimitFallback = "none"
	s.OffsetLow = 0
	s.OffsetCity = 0
	s.OffsetHighway = 0
	s.OffsetMax = 0

	s.CustomPersonalities = false

	s.AggressiveJerkAcceleration = 0.5
	s.AggressiveJerkDanger = 0.5
	s.AggressiveJerkDeceleration = 0.5
	s.AggressiveJerkSpeed = 0.5
	s.AggressiveJerkSpeedDecrease = 0.5
	s.AggressiveFollow = 1.25

	s.StandardJerkAcceleration = 1.0
	s.StandardJerkDanger = 1.0
	s.StandardJerkDeceleration = 1.0
	s.StandardJerkSpeed = 1.0
	s.StandardJerkSpeedDecrease = 1.0
	s.StandardFollow = 1.45

	s.RelaxedJerkAcceleration = 1.0
	s.RelaxedJerkDanger = 1.0
	s.RelaxedJerkDeceleration = 1.0
	s.RelaxedJerkSpeed = 1.0
	s.RelaxedJerkSpeedDecrease = 1.0
	s.RelaxedFollow = 1.75

	s.TrafficModeJerkAcceleration = [2]float32{0.5, 1.0}
	s.TrafficModeJerkDanger = [2]float32{1.0, 1.0}
	s.TrafficModeJerkDeceleration = [2]float32{0.5, 1.0}
	s.TrafficModeJerkSpeed = [2]float32{0.5, 1.0}
	s.TrafficModeJerkSpeedDecrease = [2]float32{0.5, 1.0}
	s.TrafficModeFollow = [2]float32{0.5, 1.0}

	s.AccelerationProfile = 2

	s.LaneDetection = false
	s.AdjacentPaths = false
	s.AdjacentPathMetrics = false
	s.BlindSpotPath = false
	s.MinimumLaneChangeSpeed = 20 * MPH_TO_MS

	s.PauseLateralBelowSpeed = 0
	s.PauseLateralBelowSignal = false
}

func (s *PlannerSettings) Recommended() {
	s.Default()

	s.ConditionalMode = true
	s.ConditionalCurves = true
	s.ConditionalSlowerLead = true
	s.ConditionalSpeed = 10 * MPH_TO_MS

	s.ForceStops = true
	s.HumanFollowing = true

	s.MapTurnSpeedController = true
	s.MtscCurvatureCheck = true
	s.VisionTurnSpeedController = true

	s.SpeedLimitController = true
	s.ShowSpeedLimits = true
	s.SpeedLimitOverride = true
	s.SpeedLimitFallback = "experimental"
	s.OffsetLow = 5 * MPH_TO_MS
	s.OffsetCity = 5 * MPH_TO_MS
	s.OffsetHighway = 5 * MPH_TO_MS
	s.OffsetMax = 5 * MPH_TO_MS

	s.LaneDetection = true
}

func (s *PlannerSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in the param are defaulted
	data, err := params.GetParam(params.PLANNER_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *PlannerSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *PlannerSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.PLANNER_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *PlannerSettings) Unmarshal(data []byte) {
	if len(data) == 0 {
		return
	}
	utils.Loge(json.Unmarshal(data, s))
}

func (s *PlannerSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

func (s *PlannerSettings) Handle(input custom.PlannerIn) {
	switch input.Type() {
	case custom.PlannerInputType_reloadSettings:
		s.Load()
	case custom.PlannerInputType_saveSettings:
		go s.Save()
	case custom.PlannerInputType_loadDefaultSettings:
		s.Default()
	case custom.PlannerInputType_loadRecommendedSettings:
		s.Recommended()
	case custom.PlannerInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	case custom.PlannerInputType_setConditionalMode:
		s.ConditionalMode = input.Bool()
	case custom.PlannerInputType_setForceStops:
		s.ForceStops = input.Bool()
	case custom.PlannerInputType_setForceStandstill:
		s.ForceStandstill = input.Bool()
	case custom.PlannerInputType_setHumanFollowing:
		s.HumanFollowing = input.Bool()
	case custom.PlannerInputType_setMapTurnSpeedControl:
		s.MapTurnSpeedController = input.Bool()
	case custom.PlannerInputType_setMtscCurvatureCheck:
		s.MtscCurvatureCheck = input.Bool()
	case custom.PlannerInputType_setVisionTurnSpeedControl:
		s.VisionTurnSpeedController = input.Bool()
	case custom.PlannerInputType_setCurveSensitivity:
		s.CurveSensitivity = input.Float()
	case custom.PlannerInputType_setTurnAggressiveness:
		s.TurnAggressiveness = input.Float()
	case custom.PlannerInputType_setSpeedLimitControl:
		s.SpeedLimitController = input.Bool()
	case custom.PlannerInputType_setShowSpeedLimits:
		s.ShowSpeedLimits = input.Bool()
	case custom.PlannerInputType_setSpeedLimitOverride:
		s.SpeedLimitOverride = input.Bool()
	case custom.PlannerInputType_setCustomPersonalities:
		s.CustomPersonalities = input.Bool()
	case custom.PlannerInputType_setAccelerationProfile:
		s.AccelerationProfile = int(input.Float())
	case custom.PlannerInputType_setPauseLateralBelowSpeed:
		s.PauseLateralBelowSpeed = input.Float()
	case custom.PlannerInputType_setPauseLateralBelowSignal:
		s.PauseLateralBelowSignal = input.Bool()
	}
}
