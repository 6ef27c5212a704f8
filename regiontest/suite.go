// Package regiontest provides a conformance test suite for validating
// region provider implementations against the core.Region contracts.
//
// This package contains test functions that can be imported and executed by
// provider packages to verify they correctly implement the core.Region
// interface: alignment enforcement, exact and partial read semantics, limit
// enforcement, durability reporting, and handle lifetime behavior.
//
// The suite validates the interface contract, not backend-specific behavior.
// Providers differ in whether they track the written extent, support short
// writes, or can flush to durable storage; Config describes those
// characteristics so the suite can adapt its expectations.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    regiontest.TestSuite(t, func(t *testing.T) core.Region {
//	        return newMyRegion(t)
//	    }, regiontest.DurableConfig())
//	}
package regiontest

import (
	"testing"

	"github.com/jmgilman/go/region/core"
)

// Config describes provider behavior characteristics so the suite can adapt
// its expectations to the backend under test.
type Config struct {
	// BlockSize is the alignment unit the factory configures its regions
	// with. The suite derives all offsets and buffer sizes from it.
	BlockSize int64

	// Limit is the region limit the factory configures, or core.Unbounded.
	// Bounded configurations additionally run limit-enforcement tests.
	Limit int64

	// SupportsSync indicates Sync reaches durable storage. When false the
	// suite expects Sync to fail with core.ErrUnsupported.
	SupportsSync bool

	// SupportsShortWrites indicates writes shorter than a whole block are
	// accepted. When false the suite expects core.ErrBufferSize.
	SupportsShortWrites bool

	// TracksDataSize indicates DataSize reflects the written extent.
	// When false DataSize is expected to equal Limit, and partial-read
	// expectations that depend on a tracked extent are skipped.
	TracksDataSize bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "Group/SubTest" (e.g., "Alignment/MisalignedWrite").
	SkipTests []string
}

// DurableConfig returns the configuration for file-like providers: durable,
// extent-tracking, short writes accepted, no fixed limit.
func DurableConfig() Config {
	return Config{
		BlockSize:           4096,
		Limit:               core.Unbounded,
		SupportsSync:        true,
		SupportsShortWrites: true,
		TracksDataSize:      true,
	}
}

// FixedRangeConfig returns the configuration for block-range providers: a
// fixed limit, durable, whole-block writes only, extent not tracked.
func FixedRangeConfig(limit int64) Config {
	return Config{
		BlockSize:           4096,
		Limit:               limit,
		SupportsSync:        true,
		SupportsShortWrites: false,
		TracksDataSize:      false,
	}
}

// VolatileConfig returns the configuration for in-memory providers: extent
// tracked, short writes accepted, no durable medium behind Sync.
func VolatileConfig() Config {
	return Config{
		BlockSize:           4096,
		Limit:               core.Unbounded,
		SupportsSync:        false,
		SupportsShortWrites: true,
		TracksDataSize:      true,
	}
}

// TestSuite runs all applicable conformance tests against regions produced
// by newRegion. The factory must return a fresh region for each call,
// configured with cfg.BlockSize and cfg.Limit; the suite owns the returned
// region and closes it.
func TestSuite(t *testing.T, newRegion func(t *testing.T) core.Region, cfg Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range cfg.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("Contract", func(t *testing.T) {
		if shouldSkip("Contract") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testContract(t, newRegion, cfg)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		if shouldSkip("RoundTrip") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testRoundTrip(t, newRegion, cfg)
	})

	t.Run("ReadAtLeast", func(t *testing.T) {
		if shouldSkip("ReadAtLeast") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testReadAtLeast(t, newRegion, cfg)
	})

	t.Run("Alignment", func(t *testing.T) {
		if shouldSkip("Alignment") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testAlignment(t, newRegion, cfg)
	})

	t.Run("ShortWrite", func(t *testing.T) {
		if shouldSkip("ShortWrite") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testShortWrite(t, newRegion, cfg)
	})

	if cfg.Limit != core.Unbounded {
		t.Run("LimitEnforcement", func(t *testing.T) {
			if shouldSkip("LimitEnforcement") {
				t.Skip("Skipped by provider configuration")
				return
			}
			testLimitEnforcement(t, newRegion, cfg)
		})
	}

	t.Run("Sync", func(t *testing.T) {
		if shouldSkip("Sync") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testSync(t, newRegion, cfg)
	})

	t.Run("Handle", func(t *testing.T) {
		if shouldSkip("Handle") {
			t.Skip("Skipped by provider configuration")
			return
		}
		testHandle(t, newRegion)
	})

	if cfg.BlockSize == 4096 && cfg.Limit == 2*cfg.BlockSize {
		t.Run("TwoBlockScenario", func(t *testing.T) {
			if shouldSkip("TwoBlockScenario") {
				t.Skip("Skipped by provider configuration")
				return
			}
			testTwoBlockScenario(t, newRegion, cfg)
		})
	}
}
