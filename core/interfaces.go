package core

import "math"

// Unbounded is the sentinel limit for regions with no fixed size.
// Limit returns it when the backing medium can grow without bound
// (for example a regular file opened without an explicit limit).
const Unbounded int64 = math.MaxInt64

// Region is the capability contract every provider must implement.
//
// A Region represents a contiguous addressable extent of storage on which
// aligned reads, aligned writes, capacity queries, and durability flushes
// can be performed. The contract is deliberately small: it is the seam
// across which every backing medium must behave identically despite very
// different underlying I/O primitives.
//
// Alignment: all offsets presented to ReadAt, ReadAtLeast, and WriteAt must
// be multiples of BlockSize, and read buffers must be whole blocks.
// Providers reject violations with ErrMisaligned or ErrBufferSize before
// touching the medium.
//
// Lifetime: callers normally hold a Region through a Handle, which invokes
// Close on the final release. After Close the region is invalid; providers
// report further operations with ErrClosed where they can detect them.
type Region interface {
	// DataSize returns the offset one past the last byte known to have
	// been written. Providers that cannot track this return the same
	// value as Limit. It fails only when discovering the extent requires
	// a metadata read that itself fails.
	DataSize() (int64, error)

	// Limit returns the maximum valid offset for the region, or Unbounded
	// when the region has no fixed size. The limit is immutable for the
	// lifetime of the region.
	Limit() (int64, error)

	// ReadAt reads exactly len(p) bytes starting at off into p.
	// The offset and len(p) must be multiples of BlockSize. A read that
	// cannot fill p fails with ErrEndOfData (nothing available) or
	// ErrShortRead (partially available); no partial result is returned.
	ReadAt(p []byte, off int64) error

	// ReadAtLeast reads between min and len(p) bytes starting at off into
	// p, returning the number of bytes actually read. The offset and
	// len(p) must be multiples of BlockSize and min must not exceed
	// len(p). Fewer than min available bytes is an error: ErrEndOfData
	// when nothing could be read, ErrShortRead otherwise.
	ReadAtLeast(p []byte, off int64, min int) (int, error)

	// WriteAt writes len(p) bytes from p at off, returning the number of
	// bytes written. The offset must be a multiple of BlockSize. Whether
	// len(p) may be shorter than a whole block (a short write) is
	// provider-specific and documented per provider; providers that do
	// not support short writes reject them with ErrBufferSize. A write
	// extending past Limit fails with ErrOutOfRange and leaves no
	// partial data visible to a subsequent read.
	WriteAt(p []byte, off int64) (int, error)

	// Sync forces previously written data to reach durable backing
	// storage. Providers with no durability notion (in-memory media)
	// return ErrUnsupported; callers should treat that as a normal,
	// expected outcome rather than a failure.
	Sync() error

	// Close releases all provider-held resources (descriptors, locks,
	// buffers). Callers holding the region through a Handle must not
	// call Close directly; the final Release does.
	Close() error

	// BlockSize returns the provider's alignment unit in bytes. It is a
	// fixed constant for the lifetime of the region.
	BlockSize() int64
}
