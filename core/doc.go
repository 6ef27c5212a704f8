// Package core provides the foundational interfaces and types for a
// multi-provider I/O region abstraction.
//
// An I/O region is a contiguous addressable extent of storage — a regular
// file, a byte range of a raw block device, or an in-memory buffer — that
// supports aligned reads, aligned writes, capacity queries, and durability
// flushes through a single uniform contract. Higher-level persistent
// structures treat "where bytes live" as this one polymorphic type rather
// than caring about the backing medium.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Interface-first: providers implement Region; callers accept Region
//   - Shared validation: alignment and bounds checks live here, so the
//     contract cannot drift between providers
//   - Explicit lifetime: shared ownership is modeled by Handle, a
//     reference-counted wrapper with deterministic teardown, rather than
//     relying on the garbage collector for durability-sensitive cleanup
//   - Optional capabilities degrade with defined errors: a provider without
//     a durability notion reports ErrUnsupported from Sync instead of
//     succeeding silently
//
// # The Region Contract
//
// Region defines five operations plus introspection:
//
//   - DataSize: extent of previously written data (the limit when untracked)
//   - Limit: maximum valid offset, immutable for the handle's lifetime
//   - ReadAt / ReadAtLeast: exact and partial aligned reads
//   - WriteAt: aligned writes; short-write support is provider-specific
//   - Sync: flush to durable storage, or ErrUnsupported
//   - Close: provider teardown, normally invoked by the final Handle.Release
//
// All offsets passed to reads and writes must be multiples of the provider's
// block size, and read buffers must be whole blocks. Violations are reported
// as ErrMisaligned or ErrBufferSize before any byte touches the medium.
//
// # Shared Ownership
//
// Multiple independent subsystems (concurrent readers, a background flush
// path) may hold the same region without coordinating lifetimes. Handle
// decouples "who created it" from "who is still using it":
//
//	h := core.NewHandle(r)      // reference count 1
//	h2 := h.Acquire()           // reference count 2
//	_ = h2.Release()            // reference count 1
//	_ = h.Release()             // teardown: r.Close() runs exactly once
//
// # Provider Implementations
//
// This package contains only the contract and its validation. Concrete
// providers live in sibling packages:
//
//   - github.com/jmgilman/go/region/file - file-backed regions
//   - github.com/jmgilman/go/region/block - block-device range regions
//   - github.com/jmgilman/go/region/billy - go-billy-backed in-memory regions
//
// The regiontest package provides an importable conformance suite that
// providers run against their implementations.
package core
