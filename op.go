// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"time"

	"code.hybscloud.com/kont"
)

// Point describes why a computation cannot currently make further progress.
// The zero value is a cooperative yield; Timer marks a deadline wait, with
// Delay carrying the requested minimum duration. A Point is immutable once
// produced and is consumed exactly once by its scheduler.
type Point struct {
	// Timer reports whether the point is a deadline wait rather than a yield.
	Timer bool

	// Delay is the requested minimum wait for a timer point.
	// The consumer holding the clock stamps the concrete deadline
	// as now + Delay when it processes the point.
	Delay time.Duration
}

// schedDispatcher is the structural interface for scheduler operations.
// DispatchSched describes the suspension as a Point; it cannot fail and
// performs no clock interaction itself.
type schedDispatcher interface {
	DispatchSched() Point
}

// Yield is the effect operation for relinquishing the processor.
// Perform(Yield{}) moves the computation to the back of the ready queue:
// other ready computations get scheduling priority, but no elapsed
// wall-clock time is promised.
type Yield struct {
	kont.Phantom[struct{}]
}

// DispatchSched describes Yield as the zero Point.
func (Yield) DispatchSched() Point { return Point{} }

// Sleep is the effect operation for suspending until a deadline.
// Perform(Sleep{For: d}) suspends the computation until at least now + d
// on the scheduler's monotonic clock. Resumption never occurs before the
// deadline; no upper bound on the delay is guaranteed.
type Sleep struct {
	kont.Phantom[struct{}]
	For time.Duration
}

// DispatchSched describes Sleep as a timer Point carrying the duration.
func (s Sleep) DispatchSched() Point { return Point{Timer: true, Delay: s.For} }

// pointOf extracts the suspension Point from a scheduler operation.
// Panics on operations outside the scheduler effect set.
func pointOf(op kont.Operation) Point {
	sop, ok := op.(schedDispatcher)
	if !ok {
		panic("coop: unhandled effect in scheduler")
	}
	return sop.DispatchSched()
}
