// Package billy provides a go-billy-backed region provider.
//
// A billy region adapts a file from any billy.Filesystem to the
// core.Region contract. The common use is NewMemory, which backs the
// region with memfs for deterministic in-memory storage in tests and
// embedded callers; New accepts any billy filesystem (osfs included) for
// callers already living in the billy ecosystem.
//
// The provider tracks the written extent itself, so DataSize is exact.
// Short writes are supported. billy files carry no durability interface,
// so Sync reports core.ErrUnsupported unless the underlying file happens
// to expose a Sync method.
package billy

import (
	"errors"
	"io"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/jmgilman/go/region/core"
)

// Region is a billy-backed implementation of core.Region.
type Region struct {
	file billy.File
	name string

	blockSize int64
	limit     int64

	// mu guards the seek-write pair, the tracked extent, and the closed
	// flag. billy files expose no WriteAt, so writes are positioned with
	// Seek under the lock.
	mu     sync.Mutex
	size   int64
	closed bool
}

// New opens (creating if necessary) the named file on bfs as a region.
// An existing file's size seeds the tracked extent.
func New(bfs billy.Filesystem, name string, opts ...Option) (*Region, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	f, err := bfs.OpenFile(name, openFlags, 0o644)
	if err != nil {
		return nil, core.WrapIO(err, "open %s", name)
	}

	var size int64
	if info, err := bfs.Stat(name); err == nil {
		size = info.Size()
	}

	return &Region{
		file:      f,
		name:      name,
		blockSize: o.blockSize,
		limit:     o.limit,
		size:      size,
	}, nil
}

// NewMemory creates a region backed by a fresh in-memory filesystem.
func NewMemory(opts ...Option) (*Region, error) {
	return New(memfs.New(), "region", opts...)
}

// BlockSize returns the configured alignment unit.
func (r *Region) BlockSize() int64 {
	return r.blockSize
}

// Limit returns the configured limit, or core.Unbounded. The value never
// changes after New.
func (r *Region) Limit() (int64, error) {
	return r.limit, nil
}

// DataSize returns the tracked extent of previously written data.
func (r *Region) DataSize() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, core.NewClosed()
	}
	if r.limit != core.Unbounded && r.size > r.limit {
		return r.limit, nil
	}
	return r.size, nil
}

// ReadAt reads exactly len(p) bytes at off.
func (r *Region) ReadAt(p []byte, off int64) error {
	_, err := r.readAtLeast(p, off, len(p))
	return err
}

// ReadAtLeast reads between min and len(p) bytes at off, reporting the
// actual count.
func (r *Region) ReadAtLeast(p []byte, off int64, min int) (int, error) {
	return r.readAtLeast(p, off, min)
}

func (r *Region) readAtLeast(p []byte, off int64, min int) (int, error) {
	if err := core.CheckReadArgs(r.blockSize, off, len(p), min); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, core.NewClosed()
	}

	end := r.size
	if r.limit != core.Unbounded && r.limit < end {
		end = r.limit
	}
	if off >= end {
		if min == 0 {
			return 0, nil
		}
		return 0, core.NewEndOfData(off)
	}

	buf := p
	if avail := end - off; avail < int64(len(buf)) {
		buf = buf[:avail]
	}

	n, err := r.file.ReadAt(buf, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, core.WrapIO(err, "read %d bytes at offset %d", len(buf), off)
	}
	if n >= min {
		return n, nil
	}
	if n == 0 {
		return 0, core.NewEndOfData(off)
	}
	return n, core.NewShortRead(n, min)
}

// WriteAt writes len(p) bytes at off. Short writes are supported. A write
// extending past the limit fails with core.ErrOutOfRange before any byte
// is stored.
func (r *Region) WriteAt(p []byte, off int64) (int, error) {
	if err := core.CheckWriteArgs(r.blockSize, r.limit, off, len(p), true); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, core.NewClosed()
	}

	if _, err := r.file.Seek(off, io.SeekStart); err != nil {
		return 0, core.WrapIO(err, "seek to offset %d", off)
	}
	n, err := r.file.Write(p)
	if end := off + int64(n); end > r.size {
		r.size = end
	}
	if err != nil {
		return n, core.WrapIO(err, "write %d bytes at offset %d", len(p), off)
	}
	return n, nil
}

// Sync reports core.ErrUnsupported for backends without a durability
// notion (memfs); billy files exposing a Sync method are flushed.
func (r *Region) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return core.NewClosed()
	}
	if syncer, ok := r.file.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			return core.WrapIO(err, "sync %s", r.name)
		}
		return nil
	}
	return core.NewUnsupported("sync")
}

// Close closes the backing billy file. Callers holding the region through
// a core.Handle must not call Close directly; the final Release does.
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return core.NewClosed()
	}
	r.closed = true
	if err := r.file.Close(); err != nil {
		return core.WrapIO(err, "close %s", r.name)
	}
	return nil
}

// Unwrap returns the underlying billy.File for billy-ecosystem
// integration; its lifetime is still governed by the region.
func (r *Region) Unwrap() billy.File {
	return r.file
}

// Compile-time interface check.
var _ core.Region = (*Region)(nil)
