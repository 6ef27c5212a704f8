package core

// Validation helpers shared by every provider. Keeping the checks here
// means the alignment and bounds contract cannot drift between backends:
// a provider validates first, then touches the medium.

// CheckAlignment verifies that off is a multiple of blockSize and size is
// a whole number of blocks. blockSize must be positive.
func CheckAlignment(blockSize, off int64, size int) error {
	if blockSize <= 0 {
		return NewBufferSize("block size %d must be positive", blockSize)
	}
	if off < 0 || off%blockSize != 0 {
		return NewMisaligned(off, blockSize)
	}
	if int64(size)%blockSize != 0 {
		return NewBufferSize("buffer size %d is not a multiple of block size %d",
			size, blockSize)
	}
	return nil
}

// CheckReadArgs validates the arguments of ReadAt and ReadAtLeast: the
// offset and buffer must be aligned, the buffer non-empty, and the minimum
// within the buffer. ReadAt is the min == size case.
func CheckReadArgs(blockSize, off int64, size, min int) error {
	if err := CheckAlignment(blockSize, off, size); err != nil {
		return err
	}
	if size == 0 {
		return NewBufferSize("read buffer must not be empty")
	}
	if min < 0 || min > size {
		return NewBufferSize("required length %d outside buffer of %d bytes",
			min, size)
	}
	return nil
}

// CheckWriteArgs validates the arguments of WriteAt: the offset must be
// aligned, the data must fit under the limit, and unless the provider
// supports short writes the data must be a whole number of blocks.
func CheckWriteArgs(blockSize, limit, off int64, size int, allowShort bool) error {
	if blockSize <= 0 {
		return NewBufferSize("block size %d must be positive", blockSize)
	}
	if off < 0 || off%blockSize != 0 {
		return NewMisaligned(off, blockSize)
	}
	if !allowShort && int64(size)%blockSize != 0 {
		return NewBufferSize("write of %d bytes is not a multiple of block size %d",
			size, blockSize)
	}
	if limit != Unbounded && off+int64(size) > limit {
		return NewOutOfRange(off, size, limit)
	}
	return nil
}
