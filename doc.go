// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coop provides single-threaded cooperative scheduling of poll-driven
// computations via algebraic effects on [code.hybscloud.com/kont].
//
// A computation suspends only at points it explicitly signals: a cooperative
// yield ([Yield]) or a timer wait ([Sleep]). Nothing suspends implicitly and
// nothing can fail mid-flight.
//
// # Architecture
//
//   - State machine: [Task] wraps a [code.hybscloud.com/kont.Expr] program as an explicit
//     NotStarted → Suspended → Completed machine advanced one step per [Task.Poll].
//   - Scheduling: [Executor] owns a bounded lock-free FIFO ready queue via [code.hybscloud.com/lfq]
//     and a deadline-keyed timer heap, run to quiescence on a single goroutine.
//   - Parking: Deadline waits use adaptive backoff ([code.hybscloud.com/iox.Backoff])
//     against a monotonic [Clock]; the clock is never consulted without pending timers.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and defunctionalized
//     (Expr-world) evaluation.
//
// # API Topologies
//
//   - Operations: [Yield], [Sleep]. Both are total; neither can fail.
//   - Cont-world: [YieldThen], [SleepThen], [OpThen], [ForEach], [Loop].
//   - Expr-world: Zero-allocation variants [ExprYieldThen], [ExprSleepThen], [ExprOpThen],
//     [ExprForEach], [ExprLoop]. Bridge via [Reify] and [Reflect].
//   - Traversal: [VisitEach] always builds and drives the traversal task;
//     [VisitEachGuarded] short-circuits an empty sequence before any construction.
//   - Stepping: [Task.Poll] advances one suspension at a time, making tasks easy
//     to integrate with an external drive loop.
//   - Blocking: [Exec], [ExecExpr], and [Drive] evaluate a single computation in
//     place, honoring each suspension point as it is produced.
//
// # Example
//
//	ex := coop.NewExecutor()
//	data := coop.SliceSeq[int]{1, 2, 3}
//	n := coop.VisitEachGuarded(ex, coop.Stack, data, func(v int) { _ = v }, coop.Yield{})
//	// n == 3; one suspension point was emitted per element
package coop
