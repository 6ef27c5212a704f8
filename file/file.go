// Package file provides a file-backed region provider.
//
// A file region is backed by a regular file opened read-write. Reads and
// writes use positional I/O (pread/pwrite), Sync flushes file data to disk
// (fdatasync where the platform provides it), and DataSize reflects the
// file's current size, so the extent grows as writes land.
//
// Short writes are supported: the final fragment of a write may be shorter
// than a block, and the file simply ends there. Providers backed by media
// that cannot express partial blocks should use the block package instead.
package file

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/region/core"
)

// Region is a file-backed implementation of core.Region.
type Region struct {
	f         *os.File
	lock      *flock.Flock
	blockSize int64
	limit     int64
}

// Open opens (creating if necessary) the file at path as a region.
// The region defaults to a 4096-byte block size and no fixed limit; see the
// options for overrides and for exclusive locking.
func Open(path string, opts ...Option) (*Region, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var lock *flock.Flock
	if o.exclusive {
		lock = flock.New(path + ".lock")
		held, err := lock.TryLock()
		if err != nil {
			return nil, core.WrapIO(err, "lock %s", lock.Path())
		}
		if !held {
			return nil, platformerrors.Newf(platformerrors.CodeConflict,
				"region %s is locked by another process", path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, o.perm)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, core.WrapIO(err, "open %s", path)
	}

	return &Region{
		f:         f,
		lock:      lock,
		blockSize: o.blockSize,
		limit:     o.limit,
	}, nil
}

// BlockSize returns the configured alignment unit.
func (r *Region) BlockSize() int64 {
	return r.blockSize
}

// Limit returns the configured limit, or core.Unbounded when the file may
// grow without bound. The value never changes after Open.
func (r *Region) Limit() (int64, error) {
	return r.limit, nil
}

// DataSize returns the extent of previously written data, read from file
// metadata and clamped to the limit.
func (r *Region) DataSize() (int64, error) {
	info, err := r.f.Stat()
	if err != nil {
		return 0, r.wrapErr(err, "stat %s", r.f.Name())
	}
	if r.limit != core.Unbounded && info.Size() > r.limit {
		return r.limit, nil
	}
	return info.Size(), nil
}

// ReadAt reads exactly len(p) bytes at off. A read that cannot fill p fails
// with core.ErrEndOfData or core.ErrShortRead.
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

	buf := p
	if r.limit != core.Unbounded {
		if off >= r.limit {
			if min == 0 {
				return 0, nil
			}
			return 0, core.NewEndOfData(off)
		}
		if avail := r.limit - off; avail < int64(len(buf)) {
			buf = buf[:avail]
		}
	}

	n, err := r.f.ReadAt(buf, off)
	switch {
	case err == nil || errors.Is(err, io.EOF):
		if n >= min {
			return n, nil
		}
		if n == 0 {
			return 0, core.NewEndOfData(off)
		}
		return n, core.NewShortRead(n, min)
	default:
		return 0, r.wrapErr(err, "read %d bytes at offset %d", len(buf), off)
	}
}

// WriteAt writes len(p) bytes at off. Short writes are supported: len(p)
// need not be a whole number of blocks. A write extending past the limit
// fails with core.ErrOutOfRange before any byte reaches the file.
func (r *Region) WriteAt(p []byte, off int64) (int, error) {
	if err := core.CheckWriteArgs(r.blockSize, r.limit, off, len(p), true); err != nil {
		return 0, err
	}
	n, err := r.f.WriteAt(p, off)
	if err != nil {
		return n, r.wrapErr(err, "write %d bytes at offset %d", len(p), off)
	}
	return n, nil
}

// Sync flushes written data to durable storage.
func (r *Region) Sync() error {
	if err := fdatasync(r.f); err != nil {
		return r.wrapErr(err, "sync %s", r.f.Name())
	}
	return nil
}

// Close closes the backing file and releases the exclusive lock, if held.
// Callers holding the region through a core.Handle must not call Close
// directly; the final Release does.
func (r *Region) Close() error {
	err := r.f.Close()
	if r.lock != nil {
		if uerr := r.lock.Unlock(); err == nil {
			err = uerr
		}
	}
	if err != nil {
		return r.wrapErr(err, "close %s", r.f.Name())
	}
	return nil
}

// Unwrap returns the underlying *os.File. This is an escape hatch for
// callers needing descriptor-level access; the file's lifetime is still
// governed by the region.
func (r *Region) Unwrap() *os.File {
	return r.f
}

// wrapErr classifies backing-file failures: operations on a closed file
// surface as the closed-region condition, everything else as an I/O
// failure. The original error stays in the chain.
func (r *Region) wrapErr(err error, format string, args ...interface{}) error {
	if errors.Is(err, fs.ErrClosed) {
		return platformerrors.Wrap(err, core.CodeClosed, "region is closed")
	}
	return core.WrapIO(err, format, args...)
}

// Compile-time interface check.
var _ core.Region = (*Region)(nil)
