package core

import "sync/atomic"

// Handle is a reference-counted wrapper providing shared ownership of a
// Region. Multiple independent subsystems may hold the same region without
// coordinating lifetimes: each holder pairs one Acquire with one Release,
// and the provider's Close runs exactly once, on the final release.
//
// Handle itself implements Region, passing operations through to the
// wrapped provider, so it can be given to any code that accepts a Region.
// Close on a Handle is an alias for Release, which keeps deterministic
// teardown even when the handle crosses an io.Closer boundary.
//
// Acquire and Release are safe to call concurrently from goroutines holding
// distinct references. Releasing more times than the handle was acquired
// (counting the implicit reference from NewHandle) is a caller bug with
// undefined behavior, not a reported error.
type Handle struct {
	region Region
	refs   atomic.Int64
}

// NewHandle wraps a provider region in a Handle with a reference count of
// exactly 1. The caller owns that initial reference and must Release it.
func NewHandle(r Region) *Handle {
	h := &Handle{region: r}
	h.refs.Store(1)
	return h
}

// Acquire increments the reference count and returns the handle for
// convenient chaining. It never fails.
func (h *Handle) Acquire() *Handle {
	h.refs.Add(1)
	return h
}

// Release decrements the reference count. When the count reaches zero the
// provider's Close is invoked and its result returned; otherwise Release
// returns nil. After the final release the handle must not be used.
func (h *Handle) Release() error {
	if h.refs.Add(-1) <= 0 {
		return h.region.Close()
	}
	return nil
}

// Refs returns the current reference count. It is a point-in-time snapshot
// intended for tests and diagnostics, not for lifetime decisions.
func (h *Handle) Refs() int64 {
	return h.refs.Load()
}

// Unwrap returns the underlying provider region. This is an escape hatch
// for provider-specific capabilities; the returned region's lifetime is
// still governed by the handle.
func (h *Handle) Unwrap() Region {
	return h.region
}

// DataSize implements Region by delegating to the wrapped provider.
func (h *Handle) DataSize() (int64, error) {
	return h.region.DataSize()
}

// Limit implements Region by delegating to the wrapped provider.
func (h *Handle) Limit() (int64, error) {
	return h.region.Limit()
}

// ReadAt implements Region by delegating to the wrapped provider.
func (h *Handle) ReadAt(p []byte, off int64) error {
	return h.region.ReadAt(p, off)
}

// ReadAtLeast implements Region by delegating to the wrapped provider.
func (h *Handle) ReadAtLeast(p []byte, off int64, min int) (int, error) {
	return h.region.ReadAtLeast(p, off, min)
}

// WriteAt implements Region by delegating to the wrapped provider.
func (h *Handle) WriteAt(p []byte, off int64) (int, error) {
	return h.region.WriteAt(p, off)
}

// Sync implements Region by delegating to the wrapped provider.
func (h *Handle) Sync() error {
	return h.region.Sync()
}

// Close implements Region as an alias for Release. Code that treats the
// handle as a plain closeable region still participates in reference
// counting correctly.
func (h *Handle) Close() error {
	return h.Release()
}

// BlockSize implements Region by delegating to the wrapped provider.
func (h *Handle) BlockSize() int64 {
	return h.region.BlockSize()
}

// Compile-time interface check.
var _ Region = (*Handle)(nil)
