// Package history provides an optional SQLite-backed log of runs.
//
// Each recorded run stores one row per day with both part values, elapsed
// times and a digest of the answers (see internal/digest). The log is
// append-only and ordered by a seq INTEGER, never by wall-clock time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// All queries order by seq, then year and day, so output is stable.
package history
