//go:build linux

package block

import (
	"os"

	"golang.org/x/sys/unix"
)

// deviceSize returns the addressable size of f in bytes: the BLKGETSIZE64
// ioctl for block devices, file size otherwise.
func deviceSize(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Mode()&os.ModeDevice == 0 {
		return info.Size(), nil
	}
	size, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKGETSIZE64)
	if err != nil {
		return 0, err
	}
	return int64(size), nil
}
