package utils

import (
	"math"
	"time"
)

// Float32Tracker remembers the previous distinct value of a signal. Unless
// AllowNullLastValue is set, zero and NaN never become LastValue, so a signal
// dropping out does not register as a change baseline.
type Float32Tracker struct {
	LastValue          float32
	Value              float32
	UpdatedTime        time.Time
	AllowNullLastValue bool
}

// Update records val and reports whether it differs from the current value.
func (t *Float32Tracker) Update(val float32) (updated bool) {
	if t.Value == val {
		return false
	}

	if t.AllowNullLastValue || !(math.IsNaN(float64(t.Value)) || t.Value == 0) {
		t.LastValue = t.Value
	}
	t.UpdatedTime = time.Now()
	t.Value = val
	return true
}
