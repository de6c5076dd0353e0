package presenter

import "sync/atomic"

// Redraw coalesces repaint requests. Request marks the canvas dirty and asks
// the scheduler for one deferred Flush; further requests before that flush
// only keep the flag set. The zero value paints synchronously on Request.
type Redraw struct {
	Schedule func(fn func())
	Paint    func()

	dirty     bool
	scheduled bool
	paints    atomic.Uint64
}

// NewRedraw returns a coalescer that paints through paint once per
// scheduled flush.
func NewRedraw(schedule func(fn func()), paint func()) *Redraw {
	return &Redraw{Schedule: schedule, Paint: paint}
}

// Request marks the canvas dirty.
func (r *Redraw) Request() {
	if r == nil {
		return
	}
	r.dirty = true
	if r.scheduled {
		return
	}
	if r.Schedule == nil {
		r.Flush()
		return
	}
	r.scheduled = true
	r.Schedule(r.Flush)
}

// Flush paints if anything was requested since the last paint.
func (r *Redraw) Flush() {
	if r == nil {
		return
	}
	r.scheduled = false
	if !r.dirty {
		return
	}
	r.dirty = false
	r.paints.Add(1)
	if r.Paint != nil {
		r.Paint()
	}
}

// Pending reports whether a paint is outstanding.
func (r *Redraw) Pending() bool { return r != nil && r.dirty }

// Paints returns how many paints have run. Safe from any goroutine.
func (r *Redraw) Paints() uint64 {
	if r == nil {
		return 0
	}
	return r.paints.Load()
}
