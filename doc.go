// Package vendas keeps a day-keyed ledger of sales and derives financial
// aggregates from it. It is designed to be local-first: every mutation is
// written through to a key-value store before it becomes visible.
//
// The core functionalities include:
//   - Ledger Store: per-day append-only sequences of sales, keyed by calendar
//     day, listed most recent first.
//   - Aggregator: stateless functions computing line totals, day rollups,
//     chart data and the plain-text sales report.
//   - Preferences: the display theme and the session flag, persisted beside
//     the ledger.
//
// This package is the foundation of the `vendas` command-line tool and of its
// local HTTP API.
package vendas
