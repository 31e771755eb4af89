// Package store implements the durable registries at the heart of keyturn.
//
// A Registry is a concurrent string-to-string mapping persisted as a
// line-oriented text file, one "identifier:value" record per line. Lines
// are split on the first separator only, so values may themselves contain
// the separator. A missing file is the normal first-run state, not an
// error.
//
// # Durability
//
// The in-memory registry is always the source of truth. Flushes are
// scheduled through a Scheduler after each mutation and never block the
// mutating caller:
//
//	keys := store.Open("keys", cfg.KeysPath)
//	flush := store.NewAsyncScheduler()
//	keys.Put(id, comment)
//	flush.Schedule(keys)
//
// AsyncScheduler serializes all writes to a given file through a single
// worker goroutine and coalesces bursts of mutations into one write. A
// failed flush is logged and the next mutation retries it. Files are
// replaced atomically (write to temp, then rename) so a crash cannot
// leave a torn registry on disk.
//
// Tests that need deterministic persistence can inject SyncScheduler
// instead.
package store
