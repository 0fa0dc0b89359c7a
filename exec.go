// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"container/heap"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// readyCapacity is the bounded capacity of the executor's ready queue.
// 128 admits far more concurrent tasks than any single drive needs while
// keeping the ring buffer small.
const readyCapacity = 128

// Executor is a single-threaded cooperative scheduler. It exclusively
// owns a bounded lock-free FIFO ready queue and a deadline-keyed timer
// heap; no other actor mutates them. Computations suspend only at the
// points they explicitly emit, never via preemption, and run to
// completion once spawned.
type Executor struct {
	clock  Clock
	timers timerHeap
	ready  lfq.SPSC[Poller]
}

// NewExecutor creates an executor on the system monotonic clock.
func NewExecutor() *Executor {
	return NewExecutorClock(SysClock{})
}

// NewExecutorClock creates an executor on a caller-supplied clock.
func NewExecutorClock(c Clock) *Executor {
	ex := &Executor{clock: c}
	ex.ready.Init(readyCapacity)
	return ex
}

// Spawn admits p at the tail of the ready queue.
// Spawning past capacity is a usage error and panics; use TrySpawn to
// observe backpressure instead.
func (ex *Executor) Spawn(p Poller) {
	if err := ex.TrySpawn(p); err != nil {
		panic("coop: executor ready queue full")
	}
}

// TrySpawn admits p at the tail of the ready queue.
// Returns iox.ErrWouldBlock when the queue is at capacity.
func (ex *Executor) TrySpawn(p Poller) error {
	return ex.ready.Enqueue(&p)
}

// Run drives every spawned computation to quiescence:
//
//  1. While the ready queue is non-empty, poll its head. A yield point
//     requeues at the tail; a timer point is stamped with deadline
//     now + delay plus an admission serial and pushed onto the timer
//     heap; completion drops the computation (its result stays
//     observable through the caller's task handle).
//  2. When only timers remain, park until the earliest deadline, then
//     move every expired entry to the ready tail in (deadline, serial)
//     order.
//  3. Return when both structures are empty.
//
// Ready computations resume in FIFO order; simultaneously expired timers
// resume in admission order. The clock is consulted only when a timer
// point is stamped or timers are pending, never on a yield-only workload.
func (ex *Executor) Run() {
	for {
		p, err := ex.ready.Dequeue()
		if err == nil {
			point, pending := p.Poll()
			if !pending {
				continue
			}
			if point.Timer {
				heap.Push(&ex.timers, timerEntry{
					deadline: ex.clock.Now().Add(point.Delay),
					serial:   nextSerial(),
					task:     p,
				})
				continue
			}
			if err := ex.ready.Enqueue(&p); err != nil {
				// Unreachable: a slot was freed by the dequeue above
				// and the executor is the queue's only user.
				panic("coop: executor ready queue full")
			}
			continue
		}
		if len(ex.timers) == 0 {
			return
		}
		ex.park(ex.timers[0].deadline)
		ex.moveExpired()
	}
}

// park waits until the clock reaches deadline, backing off adaptively.
func (ex *Executor) park(deadline time.Time) {
	var bo iox.Backoff
	for ex.clock.Now().Before(deadline) {
		bo.Wait()
	}
}

// moveExpired pops every elapsed timer onto the ready tail.
// Heap pop order is (deadline, serial), so ties resume in admission order.
func (ex *Executor) moveExpired() {
	now := ex.clock.Now()
	for len(ex.timers) > 0 && !now.Before(ex.timers[0].deadline) {
		e := heap.Pop(&ex.timers).(timerEntry)
		if err := ex.ready.Enqueue(&e.task); err != nil {
			panic("coop: executor ready queue full")
		}
	}
}

// timerEntry is a pending timer keyed by (deadline, serial).
type timerEntry struct {
	deadline time.Time
	task     Poller
	serial   Serial
}

// timerHeap is a min-heap over (deadline, serial).
type timerHeap []timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].serial < h[j].serial
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(timerEntry)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = timerEntry{}
	*h = old[:n-1]
	return e
}
