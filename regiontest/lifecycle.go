package regiontest

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/jmgilman/go/region/core"
)

// testSync verifies the provider's documented durability behavior: a real
// flush for durable media, ErrUnsupported otherwise.
func testSync(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	r := newRegion(t)
	defer closeRegion(t, r)

	if _, err := r.WriteAt(pattern(0x3c, int(cfg.BlockSize)), 0); err != nil {
		t.Fatalf("WriteAt(): got error %v", err)
	}

	err := r.Sync()
	if cfg.SupportsSync {
		if err != nil {
			t.Errorf("Sync() = %v, want nil", err)
		}
		return
	}
	if !errors.Is(err, core.ErrUnsupported) {
		t.Errorf("Sync() = %v, want ErrUnsupported", err)
	}
}

// closeCounter wraps a provider region to observe teardown.
type closeCounter struct {
	core.Region
	closes atomic.Int32
}

func (c *closeCounter) Close() error {
	c.closes.Add(1)
	return c.Region.Close()
}

// testHandle verifies reference-counted lifetime over a real provider
// region: one reference at construction, teardown exactly once on the
// final release, operations dispatching until then.
func testHandle(t *testing.T, newRegion func(t *testing.T) core.Region) {
	cc := &closeCounter{Region: newRegion(t)}
	h := core.NewHandle(cc)

	if got := h.Refs(); got != 1 {
		t.Errorf("Refs() = %d at construction, want 1", got)
	}

	h.Acquire()
	if err := h.Release(); err != nil {
		t.Fatalf("Release(): got error %v", err)
	}
	if got := cc.closes.Load(); got != 0 {
		t.Fatalf("Close ran %d times with a reference outstanding, want 0", got)
	}

	// Operations still dispatch through the live handle.
	if got := h.BlockSize(); got != cc.Region.BlockSize() {
		t.Errorf("BlockSize() through handle = %d, want %d", got, cc.Region.BlockSize())
	}
	if _, err := h.Limit(); err != nil {
		t.Errorf("Limit() through handle: got error %v", err)
	}

	if err := h.Release(); err != nil {
		t.Fatalf("final Release(): got error %v", err)
	}
	if got := cc.closes.Load(); got != 1 {
		t.Errorf("Close ran %d times, want exactly 1", got)
	}
}
