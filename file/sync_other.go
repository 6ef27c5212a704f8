//go:build !linux

package file

import "os"

// fdatasync falls back to a full Sync on platforms without fdatasync.
func fdatasync(f *os.File) error {
	return f.Sync()
}
