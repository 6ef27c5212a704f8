package core_test

import (
	"errors"
	"io/fs"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/region/core"
)

// TestErrorVariablesExist verifies all sentinel errors are defined.
func TestErrorVariablesExist(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrMisaligned", core.ErrMisaligned},
		{"ErrBufferSize", core.ErrBufferSize},
		{"ErrEndOfData", core.ErrEndOfData},
		{"ErrShortRead", core.ErrShortRead},
		{"ErrOutOfRange", core.ErrOutOfRange},
		{"ErrUnsupported", core.ErrUnsupported},
		{"ErrClosed", core.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Errorf("%s should not be nil", tt.name)
			}
		})
	}
}

// TestErrClosedMatchesStdlib verifies the re-exported error matches io/fs.
func TestErrClosedMatchesStdlib(t *testing.T) {
	if !errors.Is(core.ErrClosed, fs.ErrClosed) || !errors.Is(fs.ErrClosed, core.ErrClosed) {
		t.Errorf("ErrClosed does not match stdlib: core=%v, stdlib=%v",
			core.ErrClosed, fs.ErrClosed)
	}
}

// TestConstructorsPreserveSentinels verifies constructed errors keep the
// sentinel in the chain so errors.Is keeps working across wrapping.
func TestConstructorsPreserveSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     platformerrors.ErrorCode
	}{
		{"NewMisaligned", core.NewMisaligned(100, 4096), core.ErrMisaligned, core.CodeMisaligned},
		{"NewBufferSize", core.NewBufferSize("bad buffer"), core.ErrBufferSize, core.CodeBufferSize},
		{"NewEndOfData", core.NewEndOfData(8192), core.ErrEndOfData, core.CodeEndOfData},
		{"NewShortRead", core.NewShortRead(512, 4096), core.ErrShortRead, core.CodeShortRead},
		{"NewOutOfRange", core.NewOutOfRange(8192, 4096, 8192), core.ErrOutOfRange, core.CodeOutOfRange},
		{"NewUnsupported", core.NewUnsupported("sync"), core.ErrUnsupported, core.CodeUnsupported},
		{"NewClosed", core.NewClosed(), core.ErrClosed, core.CodeClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false, want true", tt.err)
			}
			if got := platformerrors.GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %s, want %s", got, tt.code)
			}
		})
	}
}

// TestWrapIOPreservesChain verifies WrapIO keeps the cause reachable.
func TestWrapIOPreservesChain(t *testing.T) {
	cause := errors.New("device unplugged")
	err := core.WrapIO(cause, "read at offset %d", 4096)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(wrapped, cause) = false, want true")
	}
	if got := platformerrors.GetCode(err); got != core.CodeIO {
		t.Errorf("GetCode() = %s, want %s", got, core.CodeIO)
	}
}

// TestWrapIONil verifies wrapping nil stays nil.
func TestWrapIONil(t *testing.T) {
	if err := core.WrapIO(nil, "no failure"); err != nil {
		t.Errorf("WrapIO(nil) = %v, want nil", err)
	}
}
