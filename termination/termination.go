// Package termination implements the termination operators: a fitness
// threshold, a hard generation cap, and a hysteresis variant that
// requires the threshold to hold for several consecutive calls before
// stopping.
package termination

import "sync"

// Threshold stops the search once the best fitness reaches target.
type Threshold[C any] struct {
	target float64
}

// NewThreshold returns a fresh Threshold; state is never shared across
// instances or Solve invocations.
func NewThreshold[C any](target float64) *Threshold[C] {
	return &Threshold[C]{target: target}
}

func (t *Threshold[C]) Terminate(_ C, fitness float64) bool {
	return fitness >= t.target
}

// MaxGenerations stops the search after a fixed number of calls.
// Safe for concurrent use since a future diagnostics consumer may read
// its counter while the driver advances it.
type MaxGenerations[C any] struct {
	mu    sync.Mutex
	max   uint64
	count uint64
}

func NewMaxGenerations[C any](max uint64) *MaxGenerations[C] {
	return &MaxGenerations[C]{max: max}
}

func (m *MaxGenerations[C]) Terminate(_ C, _ float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	return m.count >= m.max
}

// Count reports the number of Terminate calls observed so far.
func (m *MaxGenerations[C]) Count() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Hysteresis stops the search once the best fitness has been at or
// above target for streak consecutive calls, resetting the streak on
// any call that falls below target.
type Hysteresis[C any] struct {
	mu     sync.Mutex
	target float64
	streak uint64
	run    uint64
}

func NewHysteresis[C any](target float64, streak uint64) *Hysteresis[C] {
	if streak == 0 {
		streak = 1
	}
	return &Hysteresis[C]{target: target, streak: streak}
}

func (h *Hysteresis[C]) Terminate(_ C, fitness float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if fitness >= h.target {
		h.run++
	} else {
		h.run = 0
	}
	return h.run >= h.streak
}
