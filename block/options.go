package block

// DefaultBlockSize is the alignment unit used when no override is given.
// It matches the common logical sector grouping used by storage stacks.
const DefaultBlockSize int64 = 4096

// Option configures region creation.
type Option func(*options)

type options struct {
	blockSize int64
	readOnly  bool
}

func defaultOptions() options {
	return options{blockSize: DefaultBlockSize}
}

// WithBlockSize overrides the region's alignment unit.
func WithBlockSize(blockSize int64) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

// WithReadOnly opens the device read-only. Writes fail at the descriptor
// level; reads and capacity queries behave normally.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}
