//go:build !linux

package block

import "os"

// deviceSize returns the size of f from file metadata. Raw device sizing
// is only wired up on Linux; other platforms are limited to device-like
// files.
func deviceSize(f *os.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
