// Package block provides a block-range region provider.
//
// A block region is backed by a fixed byte range [start, start+limit) of a
// block device, or of a device-like file for testing. Offsets presented to
// the region are relative to the range and translated before reaching the
// device.
//
// Block media cannot express partial blocks, so short writes are rejected
// with core.ErrBufferSize: len(p) must be a whole number of blocks. The
// written extent is not trackable either; DataSize reports the limit.
package block

import (
	"errors"
	"io"
	"io/fs"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/region/core"
)

// Region is a block-range implementation of core.Region.
type Region struct {
	f         *os.File
	start     int64
	limit     int64
	blockSize int64
}

// Open opens the byte range [start, start+limit) of the device or file at
// path as a region. The range must lie within the device: start must be
// aligned to the block size and limit must be a positive whole number of
// blocks. The device must already exist; nothing is created.
func Open(path string, start, limit int64, opts ...Option) (*Region, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.blockSize <= 0 {
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"block size %d must be positive", o.blockSize)
	}
	if start < 0 || start%o.blockSize != 0 {
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"range start %d must be a non-negative multiple of block size %d",
			start, o.blockSize)
	}
	if limit <= 0 || limit%o.blockSize != 0 {
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"limit %d must be a positive multiple of block size %d",
			limit, o.blockSize)
	}

	flag := os.O_RDWR
	if o.readOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, core.WrapIO(err, "open %s", path)
	}

	size, err := deviceSize(f)
	if err != nil {
		_ = f.Close()
		return nil, core.WrapIO(err, "size %s", path)
	}
	if start+limit > size {
		_ = f.Close()
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"range [%d, %d) exceeds device size %d", start, start+limit, size)
	}

	return &Region{
		f:         f,
		start:     start,
		limit:     limit,
		blockSize: o.blockSize,
	}, nil
}

// BlockSize returns the configured alignment unit.
func (r *Region) BlockSize() int64 {
	return r.blockSize
}

// Limit returns the fixed size of the range. The value never changes after
// Open.
func (r *Region) Limit() (int64, error) {
	return r.limit, nil
}

// DataSize returns the limit: a raw range cannot track how much of it has
// been written.
func (r *Region) DataSize() (int64, error) {
	return r.limit, nil
}

// ReadAt reads exactly len(p) bytes at off.
func (r *Region) ReadAt(p []byte, off int64) error {
	_, err := r.readAtLeast(p, off, len(p))
	return err
}

// ReadAtLeast reads between min and len(p) bytes at off, reporting the
// actual count. Only the limit bounds availability: every offset under it
// is readable.
func (r *Region) ReadAtLeast(p []byte, off int64, min int) (int, error) {
	return r.readAtLeast(p, off, min)
}

func (r *Region) readAtLeast(p []byte, off int64, min int) (int, error) {
	if err := core.CheckReadArgs(r.blockSize, off, len(p), min); err != nil {
		return 0, err
	}
	if off >= r.limit {
		if min == 0 {
			return 0, nil
		}
		return 0, core.NewEndOfData(off)
	}

	buf := p
	if avail := r.limit - off; avail < int64(len(buf)) {
		buf = buf[:avail]
	}

	n, err := r.f.ReadAt(buf, r.start+off)
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

// WriteAt writes len(p) bytes at off. Short writes are not supported:
// len(p) must be a whole number of blocks, and a write extending past the
// limit fails with core.ErrOutOfRange before any byte reaches the device.
func (r *Region) WriteAt(p []byte, off int64) (int, error) {
	if err := core.CheckWriteArgs(r.blockSize, r.limit, off, len(p), false); err != nil {
		return 0, err
	}
	n, err := r.f.WriteAt(p, r.start+off)
	if err != nil {
		return n, r.wrapErr(err, "write %d bytes at offset %d", len(p), off)
	}
	return n, nil
}

// Sync flushes written data to the device.
func (r *Region) Sync() error {
	if err := fdatasync(r.f); err != nil {
		return r.wrapErr(err, "sync %s", r.f.Name())
	}
	return nil
}

// Close closes the device descriptor. Callers holding the region through a
// core.Handle must not call Close directly; the final Release does.
func (r *Region) Close() error {
	if err := r.f.Close(); err != nil {
		return r.wrapErr(err, "close %s", r.f.Name())
	}
	return nil
}

// Start returns the absolute device offset where the range begins.
func (r *Region) Start() int64 {
	return r.start
}

// Unwrap returns the underlying *os.File. This is an escape hatch for
// callers needing descriptor-level access; the descriptor's lifetime is
// still governed by the region.
func (r *Region) Unwrap() *os.File {
	return r.f
}

func (r *Region) wrapErr(err error, format string, args ...interface{}) error {
	if errors.Is(err, fs.ErrClosed) {
		return platformerrors.Wrap(err, core.CodeClosed, "region is closed")
	}
	return core.WrapIO(err, format, args...)
}

// Compile-time interface check.
var _ core.Region = (*Region)(nil)
