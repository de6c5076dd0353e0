package model

import (
	"sync/atomic"
)

// OverlayModel tracks whether the help overlay is shown. The zero value is hidden and usable.
type OverlayModel struct{ visible atomic.Bool }

// NewOverlayModel returns a model with the given initial visibility.
func NewOverlayModel(visible bool) *OverlayModel {
	m := &OverlayModel{}
	m.visible.Store(visible)
	return m
}

// Visible reports whether the overlay is currently shown.
func (m *OverlayModel) Visible() bool {
	if m == nil {
		return false
	}
	return m.visible.Load()
}

// Toggle flips visibility and returns the new value.
func (m *OverlayModel) Toggle() bool {
	if m == nil {
		return false
	}
	for {
		prev := m.visible.Load()
		if m.visible.CompareAndSwap(prev, !prev) {
			return !prev
		}
	}
}
