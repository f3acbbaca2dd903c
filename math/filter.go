package math

// FirstOrderFilter is a single pole IIR low pass. The time constant and tick
// duration are fixed at construction; Update advances the filter one tick.
type FirstOrderFilter struct {
	X float32

	alpha       float32
	initialized bool
}

func NewFirstOrderFilter(x0, rc, dt float32) FirstOrderFilter {
	return FirstOrderFilter{
		X:           x0,
		alpha:       dt / (rc + dt),
		initialized: true,
	}
}

func (f *FirstOrderFilter) Update(val float32) float32 {
	if !f.initialized {
		f.X = val
		f.initialized = true
		return f.X
	}
	f.X = (1-f.alpha)*f.X + f.alpha*val
	return f.X
}

func (f *FirstOrderFilter) UpdateBool(val bool) float32 {
	if val {
		return f.Update(1)
	}
	return f.Update(0)
}

func (f *FirstOrderFilter) Reset(val float32) {
	f.X = val
	f.initialized = true
}
