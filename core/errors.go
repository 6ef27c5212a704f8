package core

import (
	"errors"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes attached to platform errors produced by this module.
// Codes categorize failures for structured handling; the sentinel errors
// below remain in the cause chain so errors.Is keeps working.
const (
	// CodeMisaligned indicates an offset or size that is not a multiple
	// of the provider's block size.
	CodeMisaligned platformerrors.ErrorCode = "MISALIGNED_OFFSET"

	// CodeBufferSize indicates a buffer-shape mismatch: a zero or
	// non-block-multiple buffer, a minimum length exceeding the buffer,
	// or a short write against a provider that does not support them.
	CodeBufferSize platformerrors.ErrorCode = "BUFFER_SIZE_MISMATCH"

	// CodeEndOfData indicates a read at or past the end of the region's
	// data where nothing could be read.
	CodeEndOfData platformerrors.ErrorCode = "END_OF_DATA"

	// CodeShortRead indicates a read that delivered fewer bytes than the
	// required minimum.
	CodeShortRead platformerrors.ErrorCode = "SHORT_READ"

	// CodeOutOfRange indicates a write extending past the region's limit.
	CodeOutOfRange platformerrors.ErrorCode = "OUT_OF_RANGE"

	// CodeUnsupported indicates an operation the provider does not
	// implement, such as Sync on an in-memory region.
	CodeUnsupported platformerrors.ErrorCode = "UNSUPPORTED_OPERATION"

	// CodeClosed indicates an operation on a region that has already
	// been closed.
	CodeClosed platformerrors.ErrorCode = "REGION_CLOSED"

	// CodeIO indicates a provider-specific I/O failure from the backing
	// medium.
	CodeIO platformerrors.ErrorCode = "IO_FAILURE"
)

var (
	// ErrMisaligned is returned when an offset or size violates the
	// provider's block-size alignment requirement.
	ErrMisaligned = errors.New("misaligned offset or size")

	// ErrBufferSize is returned when a buffer's shape is invalid for the
	// requested operation.
	ErrBufferSize = errors.New("invalid buffer size")

	// ErrEndOfData is returned when a read starts at or past the end of
	// the region's data.
	ErrEndOfData = errors.New("read past end of region data")

	// ErrShortRead is returned when a read delivers fewer bytes than the
	// caller's required minimum.
	ErrShortRead = errors.New("short read")

	// ErrOutOfRange is returned when a write would extend past the
	// region's limit.
	ErrOutOfRange = errors.New("write out of range")

	// ErrUnsupported is returned when the provider does not implement
	// the requested operation.
	ErrUnsupported = errors.New("operation not supported")

	// ErrClosed is returned when an operation is performed on a closed
	// region. Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed
)

// NewMisaligned returns a platform error reporting an offset that is not a
// multiple of the provider's block size. ErrMisaligned is in the chain.
func NewMisaligned(off, blockSize int64) error {
	return platformerrors.Wrapf(ErrMisaligned, CodeMisaligned,
		"offset %d is not a multiple of block size %d", off, blockSize)
}

// NewBufferSize returns a platform error reporting a buffer-shape mismatch.
// ErrBufferSize is in the chain.
func NewBufferSize(format string, args ...interface{}) error {
	return platformerrors.Wrapf(ErrBufferSize, CodeBufferSize, format, args...)
}

// NewEndOfData returns a platform error reporting a read at or past the end
// of the region's data. ErrEndOfData is in the chain.
func NewEndOfData(off int64) error {
	return platformerrors.Wrapf(ErrEndOfData, CodeEndOfData,
		"no data readable at offset %d", off)
}

// NewShortRead returns a platform error reporting a read that delivered
// fewer bytes than required. ErrShortRead is in the chain.
func NewShortRead(got, min int) error {
	return platformerrors.Wrapf(ErrShortRead, CodeShortRead,
		"read %d bytes, required at least %d", got, min)
}

// NewOutOfRange returns a platform error reporting a write extending past
// the region's limit. ErrOutOfRange is in the chain.
func NewOutOfRange(off int64, length int, limit int64) error {
	return platformerrors.Wrapf(ErrOutOfRange, CodeOutOfRange,
		"write of %d bytes at offset %d exceeds limit %d", length, off, limit)
}

// NewUnsupported returns a platform error reporting an operation the
// provider does not implement. ErrUnsupported is in the chain.
func NewUnsupported(op string) error {
	return platformerrors.Wrapf(ErrUnsupported, CodeUnsupported,
		"%s is not supported by this provider", op)
}

// NewClosed returns a platform error reporting an operation on a closed
// region. ErrClosed is in the chain.
func NewClosed() error {
	return platformerrors.Wrap(ErrClosed, CodeClosed, "region is closed")
}

// WrapIO wraps a provider I/O failure with CodeIO while preserving the
// original error chain for errors.Is and errors.As.
func WrapIO(err error, format string, args ...interface{}) error {
	return platformerrors.Wrapf(err, CodeIO, format, args...)
}
