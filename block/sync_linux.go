//go:build linux

package block

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes device data without forcing a metadata update.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
