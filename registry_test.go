package microgui

import (
	"errors"
	"image/color"
	"testing"
)

// stubWidget counts Show invocations and can run a hook during Show.
type stubWidget struct {
	dev    Surface
	shows  int
	onShow func()
}

func (w *stubWidget) Show() {
	w.shows++
	if w.onShow != nil {
		w.onShow()
	}
}

func (w *stubWidget) Device() Surface { return w.dev }

func TestRefreshFirstUseInitializes(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	w := &stubWidget{dev: dev}
	reg.Pend(w)

	// First refresh blanks and presents; it never draws widgets, even
	// ones already pending.
	if err := reg.Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if dev.fills != 1 {
		t.Errorf("fills = %d, want 1 (first-use blank)", dev.fills)
	}
	if dev.shows != 1 {
		t.Errorf("shows = %d, want 1", dev.shows)
	}
	if w.shows != 0 {
		t.Errorf("widget drawn during first-use init: shows = %d, want 0", w.shows)
	}

	// The pending widget survives to the next flush.
	if err := reg.Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if w.shows != 1 {
		t.Errorf("widget shows = %d after second refresh, want 1", w.shows)
	}
	if dev.fills != 1 {
		t.Errorf("fills = %d, want 1 (no re-blank on flush)", dev.fills)
	}
}

func TestRefreshIdempotentWhenNothingPending(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	w := &stubWidget{dev: dev}

	reg.Refresh(dev, false)
	reg.Pend(w)
	reg.Refresh(dev, false)

	writes := dev.writes
	shows := dev.shows
	if err := reg.Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if dev.writes != writes {
		t.Errorf("refresh with nothing pending performed %d pixel writes, want 0", dev.writes-writes)
	}
	if dev.shows != shows+1 {
		t.Errorf("shows = %d, want %d (exactly one more present)", dev.shows, shows+1)
	}
}

func TestPendCoalesces(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	w := &stubWidget{dev: dev}

	reg.Refresh(dev, false)
	reg.Pend(w)
	reg.Pend(w)
	reg.Pend(w)
	reg.Refresh(dev, false)

	if w.shows != 1 {
		t.Errorf("widget shows = %d, want 1 (duplicate pends coalesce)", w.shows)
	}
}

func TestRefreshHardClearDiscardsPending(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	w := &stubWidget{dev: dev}

	reg.Refresh(dev, false)
	reg.Pend(w)
	if err := reg.Refresh(dev, true); err != nil {
		t.Fatalf("Refresh(hardClear) = %v", err)
	}
	if w.shows != 0 {
		t.Errorf("widget drawn during hard clear: shows = %d, want 0", w.shows)
	}
	if dev.fills != 2 {
		t.Errorf("fills = %d, want 2 (init + hard clear)", dev.fills)
	}

	// Pending set was discarded, not deferred.
	reg.Refresh(dev, false)
	if w.shows != 0 {
		t.Errorf("discarded widget drawn on later flush: shows = %d, want 0", w.shows)
	}
}

func TestRefreshInvalidSurface(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Refresh(nil, false); !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("Refresh(nil) = %v, want ErrInvalidSurface", err)
	}
	if err := reg.Refresh(newTestSurface(0, 8), false); !errors.Is(err, ErrInvalidSurface) {
		t.Errorf("Refresh(zero-width) = %v, want ErrInvalidSurface", err)
	}
}

func TestRefreshReentrancyDisallowed(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	other := newTestSurface(16, 16)

	var sameErr, otherErr error
	w := &stubWidget{dev: dev}
	w.onShow = func() {
		sameErr = reg.Refresh(dev, false)
		otherErr = reg.Refresh(other, false)
	}

	reg.Refresh(dev, false)
	reg.Pend(w)
	if err := reg.Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}

	if !errors.Is(sameErr, ErrReentrantRefresh) {
		t.Errorf("Refresh on surface being flushed = %v, want ErrReentrantRefresh", sameErr)
	}
	if otherErr != nil {
		t.Errorf("Refresh on a different surface during flush = %v, want nil", otherErr)
	}
}

func TestPendDuringShowDefersToNextFlush(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)

	w := &stubWidget{dev: dev}
	w.onShow = func() {
		if w.shows == 1 {
			reg.Pend(w)
		}
	}

	reg.Refresh(dev, false)
	reg.Pend(w)
	reg.Refresh(dev, false)
	if w.shows != 1 {
		t.Fatalf("widget shows = %d after first flush, want 1", w.shows)
	}
	reg.Refresh(dev, false)
	if w.shows != 2 {
		t.Errorf("widget shows = %d after second flush, want 2 (re-pend deferred)", w.shows)
	}
}

func TestDropForgetsSurface(t *testing.T) {
	reg := NewRegistry()
	dev := newTestSurface(16, 16)
	w := &stubWidget{dev: dev}

	reg.Refresh(dev, false)
	reg.Pend(w)
	reg.Drop(dev)

	// Dropped surface is treated as never seen: next refresh is a
	// first-use init and the old pending set is gone.
	if err := reg.Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if dev.fills != 2 {
		t.Errorf("fills = %d, want 2 (re-init after Drop)", dev.fills)
	}
	reg.Refresh(dev, false)
	if w.shows != 0 {
		t.Errorf("widget shows = %d, want 0 (pending set forgotten)", w.shows)
	}
}

func TestSetClearColor(t *testing.T) {
	reg := NewRegistry()
	reg.SetClearColor(color.RGBA{B: 0xff, A: 0xff})
	dev := newTestSurface(4, 4)

	reg.Refresh(dev, false)
	got := dev.pixels[[2]int{0, 0}]
	r, g, b, _ := got.RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("blanked pixel = %v, want pure blue", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	dev := newTestSurface(8, 8)
	w := &stubWidget{dev: dev}

	if err := Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	Pend(w)
	if err := Refresh(dev, false); err != nil {
		t.Fatalf("Refresh() = %v", err)
	}
	if w.shows != 1 {
		t.Errorf("widget shows = %d, want 1", w.shows)
	}
	Default().Drop(dev)
}
