package math

// MovingAverage is a fixed-window smoother. The first update after Init or
// Reset seeds the whole window, so the estimate starts at the observed value
// instead of ramping up from zero.
type MovingAverage struct {
	Estimate float64

	values      []float64
	index       int
	size        int
	initialized bool
}

func (a *MovingAverage) Init(size int) {
	a.size = size
	a.values = make([]float64, size)
	a.index = 0
	a.initialized = false
}

func (a *MovingAverage) Reset() {
	a.initialized = false
}

func (a *MovingAverage) Update(val float64) float64 {
	// zero readings are nudged so downstream divisions stay finite
	corrected := val
	if corrected == 0 {
		corrected = 0.01
	}

	if !a.initialized {
		for i := range a.values {
			a.values[i] = corrected
		}
		a.initialized = true
		a.Estimate = corrected
		return corrected
	}

	a.index = (a.index + 1) % a.size
	a.values[a.index] = corrected

	total := 0.0
	for _, v := range a.values {
		total += v
	}
	a.Estimate = total / float64(a.size)
	return a.Estimate
}
