package regiontest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jmgilman/go/region/core"
)

// pattern returns n deterministic bytes derived from seed, so mismatched
// reads fail loudly instead of comparing zero-filled buffers to each other.
func pattern(seed byte, n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = seed + byte(i%251)
	}
	return p
}

// closeRegion closes r and reports any failure as a test error.
func closeRegion(t *testing.T, r core.Region) {
	t.Helper()
	if err := r.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
}

// testContract verifies block size, limit immutability, and data size
// reporting against the configured characteristics.
func testContract(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	r := newRegion(t)
	defer closeRegion(t, r)

	if got := r.BlockSize(); got != cfg.BlockSize {
		t.Errorf("BlockSize() = %d, want %d", got, cfg.BlockSize)
	}

	limit, err := r.Limit()
	if err != nil {
		t.Fatalf("Limit(): got error %v", err)
	}
	if limit != cfg.Limit {
		t.Errorf("Limit() = %d, want %d", limit, cfg.Limit)
	}

	ds, err := r.DataSize()
	if err != nil {
		t.Fatalf("DataSize(): got error %v", err)
	}
	if cfg.TracksDataSize {
		if ds != 0 {
			t.Errorf("DataSize() = %d on a fresh region, want 0", ds)
		}
	} else if ds != limit {
		t.Errorf("DataSize() = %d, want limit %d for an extent-untracked provider", ds, limit)
	}

	// The limit must not move after a write.
	if _, err := r.WriteAt(pattern(0x01, int(cfg.BlockSize)), 0); err != nil {
		t.Fatalf("WriteAt(): got error %v", err)
	}
	after, err := r.Limit()
	if err != nil {
		t.Fatalf("Limit() after write: got error %v", err)
	}
	if after != limit {
		t.Errorf("Limit() changed from %d to %d after a write", limit, after)
	}
}

// testRoundTrip verifies written bytes read back identically.
func testRoundTrip(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	r := newRegion(t)
	defer closeRegion(t, r)

	bs := int(cfg.BlockSize)
	first := pattern(0x5a, bs)
	n, err := r.WriteAt(first, 0)
	if err != nil {
		t.Fatalf("WriteAt(0): got error %v", err)
	}
	if n != bs {
		t.Fatalf("WriteAt(0) = %d bytes, want %d", n, bs)
	}

	got := make([]byte, bs)
	if err := r.ReadAt(got, 0); err != nil {
		t.Fatalf("ReadAt(0): got error %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Error("ReadAt(0): data does not match written bytes")
	}

	if cfg.Limit == core.Unbounded || cfg.Limit >= 2*cfg.BlockSize {
		second := pattern(0xa5, bs)
		if _, err := r.WriteAt(second, cfg.BlockSize); err != nil {
			t.Fatalf("WriteAt(%d): got error %v", cfg.BlockSize, err)
		}
		if err := r.ReadAt(got, cfg.BlockSize); err != nil {
			t.Fatalf("ReadAt(%d): got error %v", cfg.BlockSize, err)
		}
		if !bytes.Equal(got, second) {
			t.Error("ReadAt: second block does not match written bytes")
		}

		// The first block must be untouched by the second write.
		if err := r.ReadAt(got, 0); err != nil {
			t.Fatalf("ReadAt(0) after second write: got error %v", err)
		}
		if !bytes.Equal(got, first) {
			t.Error("ReadAt(0): first block corrupted by adjacent write")
		}
	}
}

// testReadAtLeast verifies partial-read semantics: reads shorter than the
// buffer succeed when at least min bytes are available, and reads that
// cannot deliver min bytes fail with short-read or end-of-data.
func testReadAtLeast(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	r := newRegion(t)
	defer closeRegion(t, r)

	bs := int(cfg.BlockSize)
	written := pattern(0x11, bs)
	if _, err := r.WriteAt(written, 0); err != nil {
		t.Fatalf("WriteAt(): got error %v", err)
	}

	if cfg.TracksDataSize {
		// One block present, two requested: tolerated when min fits.
		buf := make([]byte, 2*bs)
		n, err := r.ReadAtLeast(buf, 0, bs)
		if err != nil {
			t.Fatalf("ReadAtLeast(min=%d): got error %v", bs, err)
		}
		if n != bs {
			t.Errorf("ReadAtLeast() = %d bytes, want %d", n, bs)
		}
		if !bytes.Equal(buf[:n], written) {
			t.Error("ReadAtLeast(): data does not match written bytes")
		}

		// One block present, two required: a short read is an error.
		if _, err := r.ReadAtLeast(buf, 0, 2*bs); !errors.Is(err, core.ErrShortRead) {
			t.Errorf("ReadAtLeast(min=%d) = %v, want ErrShortRead", 2*bs, err)
		}

		// Nothing present past the written extent.
		small := make([]byte, bs)
		if _, err := r.ReadAtLeast(small, cfg.BlockSize, 1); !errors.Is(err, core.ErrEndOfData) {
			t.Errorf("ReadAtLeast past data = %v, want ErrEndOfData", err)
		}

		// A zero minimum never fails on available length.
		n, err = r.ReadAtLeast(small, cfg.BlockSize, 0)
		if err != nil {
			t.Errorf("ReadAtLeast(min=0) past data: got error %v, want nil", err)
		}
		if n != 0 {
			t.Errorf("ReadAtLeast(min=0) past data = %d bytes, want 0", n)
		}
		return
	}

	// Extent-untracked providers treat the whole range as readable.
	if cfg.Limit >= 2*cfg.BlockSize {
		buf := make([]byte, 2*bs)
		n, err := r.ReadAtLeast(buf, 0, bs)
		if err != nil {
			t.Fatalf("ReadAtLeast(): got error %v", err)
		}
		if n < bs {
			t.Errorf("ReadAtLeast() = %d bytes, want at least %d", n, bs)
		}
		if !bytes.Equal(buf[:bs], written) {
			t.Error("ReadAtLeast(): data does not match written bytes")
		}
	}

	// Past the limit nothing is readable.
	if cfg.Limit != core.Unbounded && cfg.Limit%cfg.BlockSize == 0 {
		small := make([]byte, bs)
		if _, err := r.ReadAtLeast(small, cfg.Limit, 1); !errors.Is(err, core.ErrEndOfData) {
			t.Errorf("ReadAtLeast at limit = %v, want ErrEndOfData", err)
		}
	}
}

// testAlignment verifies misaligned offsets and ill-shaped buffers are
// rejected before touching the medium.
func testAlignment(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	if cfg.BlockSize == 1 {
		t.Skip("byte-granularity provider has no alignment to violate")
		return
	}

	r := newRegion(t)
	defer closeRegion(t, r)

	bs := int(cfg.BlockSize)
	buf := make([]byte, bs)

	if err := r.ReadAt(buf, 100); !errors.Is(err, core.ErrMisaligned) {
		t.Errorf("ReadAt(misaligned) = %v, want ErrMisaligned", err)
	}
	if _, err := r.ReadAtLeast(buf, 100, 0); !errors.Is(err, core.ErrMisaligned) {
		t.Errorf("ReadAtLeast(misaligned) = %v, want ErrMisaligned", err)
	}
	if _, err := r.WriteAt(buf, 100); !errors.Is(err, core.ErrMisaligned) {
		t.Errorf("WriteAt(misaligned) = %v, want ErrMisaligned", err)
	}
	if err := r.ReadAt(buf, -cfg.BlockSize); !errors.Is(err, core.ErrMisaligned) {
		t.Errorf("ReadAt(negative offset) = %v, want ErrMisaligned", err)
	}

	odd := make([]byte, bs/2)
	if err := r.ReadAt(odd, 0); !errors.Is(err, core.ErrBufferSize) {
		t.Errorf("ReadAt(partial buffer) = %v, want ErrBufferSize", err)
	}
}

// testShortWrite verifies the provider's documented short-write behavior.
func testShortWrite(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	if cfg.BlockSize == 1 {
		t.Skip("byte-granularity provider cannot express a short write")
		return
	}

	r := newRegion(t)
	defer closeRegion(t, r)

	bs := int(cfg.BlockSize)
	data := pattern(0x42, bs/2)
	n, err := r.WriteAt(data, 0)

	if !cfg.SupportsShortWrites {
		if !errors.Is(err, core.ErrBufferSize) {
			t.Errorf("WriteAt(short) = %v, want ErrBufferSize", err)
		}
		return
	}

	if err != nil {
		t.Fatalf("WriteAt(short): got error %v", err)
	}
	if n != len(data) {
		t.Fatalf("WriteAt(short) = %d bytes, want %d", n, len(data))
	}

	if cfg.TracksDataSize {
		ds, err := r.DataSize()
		if err != nil {
			t.Fatalf("DataSize(): got error %v", err)
		}
		if ds != int64(len(data)) {
			t.Errorf("DataSize() = %d after short write, want %d", ds, len(data))
		}

		buf := make([]byte, bs)
		got, err := r.ReadAtLeast(buf, 0, len(data))
		if err != nil {
			t.Fatalf("ReadAtLeast(): got error %v", err)
		}
		if got != len(data) {
			t.Errorf("ReadAtLeast() = %d bytes, want %d", got, len(data))
		}
		if !bytes.Equal(buf[:got], data) {
			t.Error("ReadAtLeast(): data does not match short write")
		}
	}
}

// testLimitEnforcement verifies out-of-range writes fail without leaving
// partial data visible to subsequent reads.
func testLimitEnforcement(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	if cfg.Limit < cfg.BlockSize || cfg.Limit%cfg.BlockSize != 0 {
		t.Fatalf("config limit %d must be a positive multiple of block size %d",
			cfg.Limit, cfg.BlockSize)
	}

	r := newRegion(t)
	defer closeRegion(t, r)

	bs := int(cfg.BlockSize)
	lastOff := cfg.Limit - cfg.BlockSize
	want := pattern(0x77, bs)
	if _, err := r.WriteAt(want, lastOff); err != nil {
		t.Fatalf("WriteAt(last block): got error %v", err)
	}

	if _, err := r.WriteAt(pattern(0x88, 2*bs), lastOff); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("WriteAt(straddling limit) = %v, want ErrOutOfRange", err)
	}
	if _, err := r.WriteAt(pattern(0x99, bs), cfg.Limit); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("WriteAt(at limit) = %v, want ErrOutOfRange", err)
	}

	// The rejected writes must not have modified the last block.
	got := make([]byte, bs)
	if err := r.ReadAt(got, lastOff); err != nil {
		t.Fatalf("ReadAt(last block): got error %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("ReadAt(last block): out-of-range write left partial data")
	}
}

// testTwoBlockScenario runs the canonical two-block exercise: a 4096-byte
// block size with an 8192-byte limit.
func testTwoBlockScenario(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	r := newRegion(t)
	defer closeRegion(t, r)

	want := pattern(0xde, 4096)
	if _, err := r.WriteAt(want, 0); err != nil {
		t.Fatalf("WriteAt(0): got error %v", err)
	}

	got := make([]byte, 4096)
	if err := r.ReadAt(got, 0); err != nil {
		t.Fatalf("ReadAt(0): got error %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("ReadAt(0): data does not match written bytes")
	}

	if _, err := r.WriteAt(pattern(0xad, 4096), 8192); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("WriteAt(8192) = %v, want ErrOutOfRange", err)
	}
	if err := r.ReadAt(got, 100); !errors.Is(err, core.ErrMisaligned) {
		t.Errorf("ReadAt(100) = %v, want ErrMisaligned", err)
	}
}
