// Package limes is a small numerical playground for approximating limits
// of real functions by sampling them ever closer to a point from both
// sides.
//
// 🚀 What is limes?
//
//	A pure-Go toolkit that brings together:
//		• Estimation: two-sided limits via geometrically halving sequences
//		• Verdicts: exists / undefined near the point / one-sided limits disagree
//		• Samples: continuous, removable, jump, divergent and undefined cases
//		• Reports: localized step tables and summaries (English, Indonesian)
//
// ✨ Why choose limes?
//
//   - Deterministic – no randomness, no hidden state, bit-identical reruns
//   - Pure computation – the estimator returns a record; printing is separate
//   - Explicit configuration – offset, epsilon, step cap and tolerance are options
//   - Observable – per-step hooks for logging or custom tracing
//
// Under the hood, everything is organized under these packages:
//
//	limit/          — Estimator, approach sequences, Result and options
//	samples/        — catalogue of demonstration functions with known limits
//	report/         — text rendering of a Result, localized via x/text
//	cmd/limitdemo/  — runs the catalogue and prints every report
//
// Quick sketch, lim(x→1) (x³−1)/(x−1):
//
//	x:    0 ─ 0.5 ─ 0.75 ─ … ─▶ 1 ◀─ … ─ 1.25 ─ 1.5 ─ 2
//	f(x): 1 ─ 1.75 ─ 2.31 ─ … ─▶ 3 ◀─ … ─ 3.81 ─ 4.75 ─ 7
//
//	go get github.com/katalvlaran/limes/limit
package limes
