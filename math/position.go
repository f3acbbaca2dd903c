package math

import (
	m "math"
)

const (
	earthRadius = 6373000.0 // meters
	toRadians   = m.Pi / 180
)

func NewPosition(latDeg, lonDeg float64) Position {
	return Position{latitudeDeg: latDeg, longitudeDeg: lonDeg}
}

type Position struct {
	latitudeDeg  float64
	longitudeDeg float64
}

func (p *Position) LatRad() float64 {
	return p.latitudeDeg * toRadians
}

func (p *Position) LonRad() float64 {
	return p.longitudeDeg * toRadians
}

func (p *Position) Lat() float64 {
	return p.latitudeDeg
}

func (p *Position) Lon() float64 {
	return p.longitudeDeg
}

func (p *Position) DistanceTo(end Position) float32 {
	latDiff := end.LatRad() - p.LatRad()
	lonDiff := end.LonRad() - p.LonRad()
	a := m.Pow(m.Sin(latDiff/2), 2) + m.Cos(p.LatRad())*m.Cos(end.LatRad())*m.Pow(m.Sin(lonDiff/2), 2)
	c := 2 * m.Atan2(m.Sqrt(a), m.Sqrt(1-a))

	return float32(earthRadius * c) // in metres
}
