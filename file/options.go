package file

import (
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/region/core"
)

// DefaultBlockSize is the alignment unit used when no override is given.
// It matches the common filesystem page size.
const DefaultBlockSize int64 = 4096

// Option configures region creation.
type Option func(*options)

type options struct {
	blockSize int64
	limit     int64
	perm      os.FileMode
	exclusive bool
}

func defaultOptions() options {
	return options{
		blockSize: DefaultBlockSize,
		limit:     core.Unbounded,
		perm:      0o644,
	}
}

func (o *options) validate() error {
	if o.blockSize <= 0 {
		return platformerrors.Newf(platformerrors.CodeInvalidInput,
			"block size %d must be positive", o.blockSize)
	}
	if o.limit != core.Unbounded {
		if o.limit <= 0 || o.limit%o.blockSize != 0 {
			return platformerrors.Newf(platformerrors.CodeInvalidInput,
				"limit %d must be a positive multiple of block size %d",
				o.limit, o.blockSize)
		}
	}
	return nil
}

// WithBlockSize overrides the region's alignment unit.
func WithBlockSize(blockSize int64) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

// WithLimit gives the region a fixed limit. Writes extending past it fail
// with core.ErrOutOfRange and reads past it report core.ErrEndOfData. The
// limit must be a positive multiple of the block size.
func WithLimit(limit int64) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithPermissions overrides the mode used when the backing file is created.
func WithPermissions(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithExclusiveLock takes an advisory lock next to the backing file so two
// processes cannot open the same region concurrently. Open fails when the
// lock is already held.
func WithExclusiveLock() Option {
	return func(o *options) {
		o.exclusive = true
	}
}
