package deck

// ResizeAdapter coalesces viewport-height notifications with a trailing-edge
// debounce driven by frame time. It fires only when the settled height
// differs from the last height it fired with.
type ResizeAdapter struct {
	delay     float32
	remaining float32
	pending   bool
	height    float64
	last      float64
	fire      func(height float64)
}

// NewResizeAdapter creates an adapter that considers `initial` already
// applied. fire runs from Tick.
func NewResizeAdapter(delay float32, initial float64, fire func(height float64)) *ResizeAdapter {
	return &ResizeAdapter{delay: delay, last: initial, fire: fire}
}

// Notify records a measured height and restarts the debounce timer.
func (r *ResizeAdapter) Notify(height float64) {
	r.height = height
	r.remaining = r.delay
	r.pending = true
}

// Pending reports whether a notification is waiting for the timer.
func (r *ResizeAdapter) Pending() bool {
	return r.pending
}

// Tick advances the timer by dt seconds and reports whether fire ran.
func (r *ResizeAdapter) Tick(dt float32) bool {
	if !r.pending {
		return false
	}
	r.remaining -= dt
	if r.remaining > 0 {
		return false
	}
	r.pending = false
	if r.height == r.last {
		return false
	}
	r.last = r.height
	r.fire(r.height)
	return true
}
