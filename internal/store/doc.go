// Package store archives run reports in SQLite.
//
// Archiving is opt-in: the runner never touches the store, and the CLI only
// writes a report when asked to record it.
//
// # Layout
//
//   - runs: one row per recorded run, with the digest of its canonical snapshot
//   - outcomes: one row per lesson outcome, keyed by (run_id, position)
//   - lines: transcript lines of completed outcomes, keyed by line number
//
// Reads always order by position and line number, never by timestamp, so a
// report read back is identical to the one written.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Digests are computed by package canonical (RFC 8785 JSON, SHA-256 with
// domain separation).
package store
