// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Status is the lifecycle state of a Task.
// Transitions are strictly forward: NotStarted → Suspended* → Completed.
// No transition leaves Completed.
type Status uint8

const (
	// NotStarted means the task has never been polled.
	NotStarted Status = iota
	// Suspended means the last poll produced a pending Point.
	Suspended
	// Completed means the last poll finished the computation.
	Completed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Suspended:
		return "suspended"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Poller is the single poll contract shared by all task representations.
// Poll advances the computation by exactly one step: it returns
// (point, true) while the computation is pending on the described
// suspension point, or (zero, false) once it has completed.
// Poll must not be called again after it has reported completion.
type Poller interface {
	Poll() (Point, bool)
	Status() Status
}

// Task is a poll-driven suspendable computation over a defunctionalized
// kont program. The state machine is explicit and inspectable: Status
// reports the current lifecycle state and Point the pending suspension.
//
// NewTask performs no suspension by itself; suspension only occurs inside
// Poll. A Task is single-use and not safe for concurrent polling.
type Task[A any] struct {
	program kont.Expr[A]
	susp    *kont.Suspension[A]
	result  A
	point   Point
	status  Status
}

// NewTask wraps a program as an unstarted task. The returned value is
// stack-resident: it lives wherever the caller places it and no owned
// allocation is made for the task state itself.
func NewTask[A any](program kont.Expr[A]) Task[A] {
	return Task[A]{program: program}
}

// Poll advances the task by exactly one step.
// Returns (point, true) if the task suspended on point, or (zero, false)
// if it completed; the result is then available via Result.
// Polling a completed task is a usage error and panics immediately.
func (t *Task[A]) Poll() (Point, bool) {
	switch t.status {
	case Completed:
		panic("coop: task polled after completion")
	case NotStarted:
		t.result, t.susp = kont.StepExpr(t.program)
	default:
		t.result, t.susp = t.susp.Resume(struct{}{})
	}
	if t.susp == nil {
		t.status = Completed
		t.point = Point{}
		return Point{}, false
	}
	t.status = Suspended
	t.point = pointOf(t.susp.Op())
	return t.point, true
}

// Status returns the current lifecycle state.
func (t *Task[A]) Status() Status { return t.status }

// Point returns the pending suspension point.
// Valid only while the task is Suspended; otherwise the zero Point.
func (t *Task[A]) Point() Point { return t.point }

// Result returns the completed value.
// Panics if the task has not completed.
func (t *Task[A]) Result() A {
	if t.status != Completed {
		panic("coop: task result before completion")
	}
	return t.result
}
