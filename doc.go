// Package perf computes investment performance metrics from a ledger of
// buy and sell transactions.
//
// The library is organized as two independent pipelines over the same
// records:
//
//   - Lot matching: buys are reconciled against sells under FIFO
//     accounting, splitting partial lots, and any open quantity is marked
//     to market at an explicit valuation date. Matched lots are then
//     enriched with profit, return, holding duration and CAGR, and folded
//     into per-security and total P&L buckets.
//
//   - Cash flows: the records are turned into a date-keyed signed series
//     (outflow on buy, inflow on sell) closed by the liquidation value of
//     open positions, and the money-weighted return (XIRR) of that series
//     is solved by Newton-Raphson iteration on an actual/365 basis.
//
// All computations are pure: they operate on in-memory collections, never
// mutate their inputs, and report failures as typed errors the caller can
// branch on.
package perf
