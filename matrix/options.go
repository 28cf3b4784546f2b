// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for owning-matrix constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the chosen storage variant and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Storage policy: without options an owning matrix is inline when StorageFor
//     says so, otherwise heap. WithStorage forces a variant; forcing inline on a
//     shape it cannot hold is a construction error (ErrStorageStrategy), not a panic,
//     because the resolved shape may only be known at run time.
package matrix

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStorageKindInvalid = "matrix: WithStorage: only StorageInline or StorageHeap may be forced"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	storage StorageKind // forced variant, meaningful only when forced == true
	forced  bool        // false ⇒ StorageFor policy
}

// WithStorage forces the owning storage variant.
//
// Inputs:
//   - kind: StorageInline or StorageHeap.
//
// Errors:
//   - Panics with a stable message when kind is a view kind.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Force StorageHeap for a small static matrix that must support Resize.
func WithStorage(kind StorageKind) Option {
	if kind != StorageInline && kind != StorageHeap {
		panic(panicStorageKindInvalid)
	}

	return func(o *Options) {
		o.storage = kind
		o.forced = true
	}
}

// WithAutoStorage restores the StorageFor policy (undoes an earlier WithStorage).
func WithAutoStorage() Option {
	return func(o *Options) { o.forced = false }
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
