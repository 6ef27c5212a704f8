package billy

import (
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/region/core"
)

// DefaultBlockSize is the alignment unit used when no override is given.
const DefaultBlockSize int64 = 4096

// openFlags opens the backing file read-write, creating it when absent.
const openFlags = os.O_CREATE | os.O_RDWR

// Option configures region creation.
type Option func(*options)

type options struct {
	blockSize int64
	limit     int64
}

func defaultOptions() options {
	return options{
		blockSize: DefaultBlockSize,
		limit:     core.Unbounded,
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
