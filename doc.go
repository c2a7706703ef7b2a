// Package spend provides the core of a local-first personal expense
// ledger: users record discrete spending events, filter and search them,
// and view aggregate summaries, with all state kept on the local machine.
//
// The core functionalities include:
//   - Record Model: normalizing raw input (dates, amounts, categories,
//     notes) into well-formed expense records, degrading invalid fields to
//     safe defaults instead of failing.
//   - Ledger Store: the single source of truth holding the newest-first
//     record collection, persisting it to a key/value store after every
//     mutation.
//   - Filter Engine: pure, order-preserving subsequence computation from a
//     set of optional constraints (text query, category, date range).
//   - Aggregation Engine: totals, current-month totals and top-category
//     rankings over any record subsequence.
//   - Import/Export Codec: a portable JSON interchange format that can be
//     exported, carried between devices, and re-imported with per-record
//     validation of untrusted input.
//
// This package serves as the foundational logic for the `xps` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package spend
