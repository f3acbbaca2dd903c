package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/plannerd/params"
)

func TestMapCurvatureWithoutFix(t *testing.T) {
	redirectParams(t)

	mtsc := NewMapTurnSpeedController()

	assert.Equal(t, float32(NO_CURVATURE), mtsc.GetMapCurvature(Location{}, 10))
}

func TestMapCurvatureWithoutTargetVelocities(t *testing.T) {
	redirectParams(t)

	mtsc := NewMapTurnSpeedController()
	location := Location{HasFix: true, Latitude: 52.52, Longitude: 13.405}

	assert.Equal(t, float32(NO_CURVATURE), mtsc.GetMapCurvature(location, 10))

	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, []byte("not json")))
	assert.Equal(t, float32(NO_CURVATURE), mtsc.GetMapCurvature(location, 10))

	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, []byte("[]")))
	assert.Equal(t, float32(NO_CURVATURE), mtsc.GetMapCurvature(location, 10))
}

func TestMapCurvatureFromTargetVelocities(t *testing.T) {
	redirectParams(t)

	// one point at the fix and a tighter one ~56m ahead
	velocities := []byte(`[
		{"latitude": 52.52, "longitude": 13.405, "velocity": 10},
		{"latitude": 52.5205, "longitude": 13.405, "velocity": 5}
	]`)
	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, velocities))

	mtsc := NewMapTurnSpeedController()
	location := Location{HasFix: true, Latitude: 52.52, Longitude: 13.405}

	// 2.0 / 5^2 from the slower point
	assert.InDelta(t, 0.08, mtsc.GetMapCurvature(location, 10), 1e-4)
}

func TestMapCurvatureIgnoresPointsBeyondLookahead(t *testing.T) {
	redirectParams(t)

	// the slow point sits ~334m out, far beyond a 100m lookahead
	velocities := []byte(`[
		{"latitude": 52.52, "longitude": 13.405, "velocity": 10},
		{"latitude": 52.523, "longitude": 13.405, "velocity": 2}
	]`)
	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, velocities))

	mtsc := NewMapTurnSpeedController()
	location := Location{HasFix: true, Latitude: 52.52, Longitude: 13.405}

	assert.InDelta(t, 0.02, mtsc.GetMapCurvature(location, 10), 1e-4)
}

func TestMapCurvatureSmoothing(t *testing.T) {
	redirectParams(t)

	velocities := []byte(`[{"latitude": 52.52, "longitude": 13.405, "velocity": 10}]`)
	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, velocities))

	mtsc := NewMapTurnSpeedController()
	location := Location{HasFix: true, Latitude: 52.52, Longitude: 13.405}

	first := mtsc.GetMapCurvature(location, 10)
	assert.InDelta(t, 0.02, first, 1e-4)

	// a sudden tighter reading only moves the average one window slot
	velocities = []byte(`[{"latitude": 52.52, "longitude": 13.405, "velocity": 5}]`)
	require.NoError(t, params.PutParam(params.MAP_TARGET_VELOCITIES, velocities))

	second := mtsc.GetMapCurvature(location, 10)
	assert.Greater(t, second, first)
	assert.Less(t, second, float32(0.08))
}
