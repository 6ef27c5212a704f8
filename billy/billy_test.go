package billy_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/region/billy"
	"github.com/jmgilman/go/region/core"
	"github.com/jmgilman/go/region/regiontest"
)

// TestNewMemory_Defaults verifies construction applies the default
// configuration.
func TestNewMemory_Defaults(t *testing.T) {
	r, err := billy.NewMemory()
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	assert.Equal(t, billy.DefaultBlockSize, r.BlockSize())

	limit, err := r.Limit()
	require.NoError(t, err)
	assert.Equal(t, core.Unbounded, limit)

	ds, err := r.DataSize()
	require.NoError(t, err)
	assert.Zero(t, ds)
}

// TestNew_InvalidOptions verifies configuration errors are rejected.
func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []billy.Option
	}{
		{"zero block size", []billy.Option{billy.WithBlockSize(0)}},
		{"negative limit", []billy.Option{billy.WithLimit(-4096)}},
		{"limit not block multiple", []billy.Option{billy.WithLimit(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := billy.NewMemory(tt.opts...)
			require.Error(t, err)
			assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
		})
	}
}

// TestNew_ExistingFileSeedsExtent verifies wrapping an existing file picks
// up its size as the written extent.
func TestNew_ExistingFileSeedsExtent(t *testing.T) {
	bfs := memfs.New()
	f, err := bfs.Create("seeded")
	require.NoError(t, err)
	_, err = f.Write(make([]byte, 8192))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	r, err := billy.New(bfs, "seeded")
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	ds, err := r.DataSize()
	require.NoError(t, err)
	assert.Equal(t, int64(8192), ds)
}

// TestRegion_SyncUnsupported verifies the in-memory backend reports Sync
// as unsupported rather than succeeding silently.
func TestRegion_SyncUnsupported(t *testing.T) {
	r, err := billy.NewMemory()
	require.NoError(t, err)
	defer func() { require.NoError(t, r.Close()) }()

	err = r.Sync()
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Equal(t, core.CodeUnsupported, platformerrors.GetCode(err))
}

// TestRegion_ClosedOperations verifies operations after Close report the
// closed condition.
func TestRegion_ClosedOperations(t *testing.T) {
	r, err := billy.NewMemory()
	require.NoError(t, err)
	require.NoError(t, r.Close())

	buf := make([]byte, 4096)

	err = r.ReadAt(buf, 0)
	assert.ErrorIs(t, err, core.ErrClosed)

	_, err = r.WriteAt(buf, 0)
	assert.ErrorIs(t, err, core.ErrClosed)

	_, err = r.DataSize()
	assert.ErrorIs(t, err, core.ErrClosed)

	err = r.Sync()
	assert.ErrorIs(t, err, core.ErrClosed)

	err = r.Close()
	assert.ErrorIs(t, err, core.ErrClosed)
}

// TestRegion_Conformance runs the shared suite with the volatile
// configuration.
func TestRegion_Conformance(t *testing.T) {
	regiontest.TestSuite(t, func(t *testing.T) core.Region {
		r, err := billy.NewMemory()
		require.NoError(t, err)
		return r
	}, regiontest.VolatileConfig())
}

// TestRegion_ConformanceBounded runs the shared suite with a two-block
// limit, exercising limit enforcement and the canonical scenario.
func TestRegion_ConformanceBounded(t *testing.T) {
	cfg := regiontest.VolatileConfig()
	cfg.Limit = 2 * cfg.BlockSize

	regiontest.TestSuite(t, func(t *testing.T) core.Region {
		r, err := billy.NewMemory(billy.WithLimit(cfg.Limit))
		require.NoError(t, err)
		return r
	}, cfg)
}
