// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Single-computation evaluators. Exec, ExecExpr, and Drive run one
// computation in place, the stated degenerate use of the Executor
// contract: with nothing else runnable a yield resumes immediately and a
// timer parks the caller until its deadline.

// schedHandler implements kont.Handler for scheduler effects.
// Honors each suspension point synchronously, converting the poll-based
// contract into blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type schedHandler[R any] struct {
	clock Clock
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits out timer points against the monotonic clock with adaptive backoff.
func (h schedHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(schedDispatcher)
	if !ok {
		panic("coop: unhandled effect in schedHandler")
	}
	waitPoint(h.clock, sop.DispatchSched())
	return struct{}{}, true
}

// waitPoint honors a suspension point in place. A yield is a no-op when
// the caller is the only runnable computation; a timer point parks until
// clock.Now() reaches the deadline stamped at suspension time.
func waitPoint(c Clock, pt Point) {
	if !pt.Timer {
		return
	}
	deadline := c.Now().Add(pt.Delay)
	var bo iox.Backoff
	for c.Now().Before(deadline) {
		bo.Wait()
	}
}

// Exec runs a Cont-world computation to completion on c.
// Blocks across timer points via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](c Clock, m kont.Eff[R]) R {
	h := schedHandler[R]{clock: c}
	return kont.Handle(m, h)
}

// ExecExpr runs an Expr-world computation to completion on c.
// Blocks across timer points via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](c Clock, m kont.Expr[R]) R {
	h := schedHandler[R]{clock: c}
	return kont.HandleExpr(m, h)
}

// Drive polls p to completion on c, honoring each emitted point in place.
// This is the explicit poll-loop rendition of Exec for callers that hold
// a task handle rather than a program.
func Drive(c Clock, p Poller) {
	for {
		pt, pending := p.Poll()
		if !pending {
			return
		}
		waitPoint(c, pt)
	}
}
