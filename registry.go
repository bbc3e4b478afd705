package microgui

import (
	"errors"
	"image/color"
	"sync"
)

// Registry errors.
var (
	// ErrReentrantRefresh is returned when Refresh is called for a
	// surface that is currently being flushed. A widget's Show must
	// never refresh its own surface; doing so would corrupt the
	// pending-set iteration.
	ErrReentrantRefresh = errors.New("microgui: reentrant refresh on surface being flushed")
)

// Widget is anything the registry can schedule for redraw.
//
// Show redraws the widget on its surface using the current state.
// Device reports the surface the widget lives on; it keys the
// registry's pending sets.
type Widget interface {
	Show()
	Device() Surface
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Default returns the process-wide default registry used by the
// package-level Pend and Refresh functions.
func Default() *Registry {
	return globalRegistry
}

// Pend schedules a widget for redraw on the default registry.
func Pend(w Widget) {
	globalRegistry.Pend(w)
}

// Refresh flushes a surface on the default registry. See
// [Registry.Refresh].
func Refresh(dev Surface, hardClear bool) error {
	return globalRegistry.Refresh(dev, hardClear)
}

// Registry coordinates deferred rendering: it maps each active surface
// to the set of widgets pending redraw on it, and batches all of them
// into a single present per Refresh call.
//
// The registry holds non-owning references. Widget lifetime is
// controlled entirely by the application; removal from a pending set
// on flush does not destroy the widget, and surfaces are never evicted
// automatically (use Drop for application-controlled teardown).
//
// Most code should use an explicit Registry from NewRegistry so the
// core stays testable in isolation; the package-level functions exist
// for small programs with a single display.
type Registry struct {
	mu      sync.Mutex
	pending map[Surface]map[Widget]struct{}
	// initialized marks surfaces that have received their one-time
	// blank-and-present. A surface may acquire a pending set before
	// its first Refresh; it is still initialized exactly once.
	initialized map[Surface]bool
	// flushing guards against reentrant Refresh while a pending set
	// is being drawn.
	flushing map[Surface]bool
	clear    color.Color
}

// NewRegistry creates an empty registry. Surfaces are blanked to black
// on first use unless SetClearColor is called.
func NewRegistry() *Registry {
	return &Registry{
		pending:     make(map[Surface]map[Widget]struct{}),
		initialized: make(map[Surface]bool),
		flushing:    make(map[Surface]bool),
		clear:       color.Black,
	}
}

// SetClearColor sets the color surfaces are blanked to on first use
// and on hard clears.
func (r *Registry) SetClearColor(c color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c == nil {
		c = color.Black
	}
	r.clear = c
}

// Pend schedules a widget for redraw on its surface during the next
// Refresh. Pending is a set operation: registering the same widget
// multiple times before a flush coalesces to one redraw.
func (r *Registry) Pend(w Widget) {
	dev := w.Device()
	if dev == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.pending[dev]
	if !ok {
		set = make(map[Widget]struct{})
		r.pending[dev] = set
	}
	set[w] = struct{}{}
}

// Refresh presents a surface, with three distinct outcomes:
//
//  1. Surface never refreshed before: blank it to the clear color and
//     present it. Widgets already pending survive for the next call.
//  2. hardClear: discard the pending set without drawing any of it,
//     blank the surface and present it (full repaint from scratch).
//  3. Otherwise: invoke each pending widget's Show in unspecified
//     order, clear the pending set, and present the surface once.
//
// Refresh returns ErrInvalidSurface for targets that do not satisfy
// the surface contract, ErrReentrantRefresh when called from within a
// Show for the same surface, and otherwise the error from the
// surface's present step.
func (r *Registry) Refresh(dev Surface, hardClear bool) error {
	if err := validateSurface(dev); err != nil {
		return err
	}

	r.mu.Lock()
	if r.flushing[dev] {
		r.mu.Unlock()
		return ErrReentrantRefresh
	}
	if !r.initialized[dev] {
		r.initialized[dev] = true
		if _, ok := r.pending[dev]; !ok {
			r.pending[dev] = make(map[Widget]struct{})
		}
		clearColor := r.clear
		r.mu.Unlock()
		dev.Fill(clearColor)
		return dev.Show()
	}
	set := r.pending[dev]
	if hardClear {
		for w := range set {
			delete(set, w)
		}
		clearColor := r.clear
		r.mu.Unlock()
		dev.Fill(clearColor)
		return dev.Show()
	}

	// Snapshot and clear the pending set before drawing so a widget
	// that pends itself again from Show lands in the next cycle.
	widgets := make([]Widget, 0, len(set))
	for w := range set {
		widgets = append(widgets, w)
		delete(set, w)
	}
	r.flushing[dev] = true
	r.mu.Unlock()

	for _, w := range widgets {
		w.Show()
	}
	Logger().Debug("microgui: refresh flushed", "widgets", len(widgets))

	r.mu.Lock()
	delete(r.flushing, dev)
	r.mu.Unlock()
	return dev.Show()
}

// Drop forgets a surface entirely: its pending set and its
// initialization record. A later Refresh treats it as never seen.
func (r *Registry) Drop(dev Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, dev)
	delete(r.initialized, dev)
	delete(r.flushing, dev)
}
