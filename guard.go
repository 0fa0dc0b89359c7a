// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// VisitEach traverses s on ex, visiting every element in order with one
// suspension point per element, and returns the visit count. The traversal
// task is always constructed, spawned, and driven to quiescence, even when
// s is empty: the empty case costs one cursor, one emptiness check, and
// one terminal poll.
//
// alloc selects the task representation; see Alloc.
func VisitEach[T any, O kont.Op[O, struct{}]](ex *Executor, alloc Alloc, s Seq[T], visit func(T), op O) int {
	program := ExprForEach(s, visit, op)
	if alloc == Heap {
		b := NewTaskBox(program)
		defer b.Free()
		ex.Spawn(&b)
		ex.Run()
		return b.Result()
	}
	t := NewTask(program)
	ex.Spawn(&t)
	ex.Run()
	return t.Result()
}

// VisitEachGuarded is VisitEach behind an emptiness pre-check: for an
// empty sequence it returns 0 after a single Len read, constructing no
// cursor, no task, and never touching the executor. For any sequence the
// result and every observable side effect are identical to VisitEach;
// only construction and scheduling cost for the empty case differs.
func VisitEachGuarded[T any, O kont.Op[O, struct{}]](ex *Executor, alloc Alloc, s Seq[T], visit func(T), op O) int {
	if s.Len() == 0 {
		return 0
	}
	return VisitEach(ex, alloc, s, visit, op)
}
