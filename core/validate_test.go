package core_test

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/region/core"
)

// TestCheckAlignment verifies offset and size alignment checks.
func TestCheckAlignment(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int64
		off       int64
		size      int
		wantErr   error
	}{
		{"aligned", 4096, 4096, 8192, nil},
		{"zero offset", 4096, 0, 4096, nil},
		{"zero size", 4096, 0, 0, nil},
		{"misaligned offset", 4096, 100, 4096, core.ErrMisaligned},
		{"negative offset", 4096, -4096, 4096, core.ErrMisaligned},
		{"partial block size", 4096, 0, 100, core.ErrBufferSize},
		{"invalid block size", 0, 0, 4096, core.ErrBufferSize},
		{"byte granularity", 1, 17, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.CheckAlignment(tt.blockSize, tt.off, tt.size)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckAlignment() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckAlignment() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckReadArgs verifies read argument validation.
func TestCheckReadArgs(t *testing.T) {
	tests := []struct {
		name    string
		off     int64
		size    int
		min     int
		wantErr error
	}{
		{"exact read", 0, 4096, 4096, nil},
		{"partial read", 4096, 8192, 4096, nil},
		{"zero minimum", 0, 4096, 0, nil},
		{"empty buffer", 0, 0, 0, core.ErrBufferSize},
		{"min beyond buffer", 0, 4096, 8192, core.ErrBufferSize},
		{"negative min", 0, 4096, -1, core.ErrBufferSize},
		{"misaligned offset", 100, 4096, 4096, core.ErrMisaligned},
		{"partial buffer", 0, 100, 100, core.ErrBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.CheckReadArgs(4096, tt.off, tt.size, tt.min)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckReadArgs() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckReadArgs() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCheckWriteArgs verifies write argument validation, including the
// short-write allowance and limit enforcement.
func TestCheckWriteArgs(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		off        int64
		size       int
		allowShort bool
		wantErr    error
	}{
		{"full block under limit", 8192, 0, 4096, false, nil},
		{"fills limit exactly", 8192, 4096, 4096, false, nil},
		{"unbounded", core.Unbounded, 1 << 40, 4096, false, nil},
		{"short write allowed", core.Unbounded, 0, 100, true, nil},
		{"short write rejected", core.Unbounded, 0, 100, false, core.ErrBufferSize},
		{"misaligned offset", 8192, 100, 4096, true, core.ErrMisaligned},
		{"past limit", 8192, 8192, 4096, false, core.ErrOutOfRange},
		{"straddles limit", 8192, 4096, 8192, false, core.ErrOutOfRange},
		{"short write past limit", 8192, 8192, 1, true, core.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.CheckWriteArgs(4096, tt.limit, tt.off, tt.size, tt.allowShort)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckWriteArgs() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckWriteArgs() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
