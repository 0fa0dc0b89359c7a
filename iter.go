// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive computation (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// ExprLoop runs a recursive computation (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Pure steps are resolved at construction without building frames;
// effectful steps fuse ExprBind inline to avoid the type-erasing
// wrapper closure.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if left, ok := m.Value.GetLeft(); ok {
			return ExprLoop(left, step)
		}
		right, _ := m.Value.GetRight()
		return kont.ExprReturn(right)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if left, ok := e.GetLeft(); ok {
			result := ExprLoop(left, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
		}
		right, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(right), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	var zero A
	return kont.Expr[A]{
		Value: zero,
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}

// ForEach builds the suspending traversal of s (Cont-world).
// One cursor is created per traversal. Each poll with elements remaining
// advances the cursor, visits the element, and performs op, emitting
// exactly one suspension point; the poll after the last element observes
// exhaustion and completes with the visit count. A zero-element traversal
// completes on its single terminal poll with no suspension at all.
//
// Construction performs no cursor reads and no visits; everything happens
// inside evaluation.
func ForEach[T any, O kont.Op[O, struct{}]](s Seq[T], visit func(T), op O) kont.Eff[int] {
	c := NewCursor(s)
	return forEachFrom(&c, visit, op, 0)
}

// forEachFrom suspends the cursor check itself so that construction stays
// pure: the check, visit, and Perform all run under the evaluator.
func forEachFrom[T any, O kont.Op[O, struct{}]](c *Cursor[T], visit func(T), op O, n int) kont.Eff[int] {
	return kont.Suspend[kont.Resumed, int](func(k func(int) kont.Resumed) kont.Resumed {
		if !c.More() {
			return k(n)
		}
		visit(c.Next())
		return kont.Then(kont.Perform(op), forEachFrom(c, visit, op, n+1))(k)
	})
}

// ExprForEach builds the suspending traversal of s (Expr-world).
// Same contract as ForEach with one construction-time difference inherent
// to defunctionalized programs: the first cursor check (and, when elements
// remain, the first visit) runs while the frames are being built. An empty
// traversal therefore resolves to an already-completed expression whose
// single terminal poll observes the result; element counts and visit order
// are identical to ForEach in every case.
func ExprForEach[T any, O kont.Op[O, struct{}]](s Seq[T], visit func(T), op O) kont.Expr[int] {
	c := NewCursor(s)
	return ExprLoop(0, func(n int) kont.Expr[kont.Either[int, int]] {
		if !c.More() {
			return kont.ExprReturn(kont.Right[int, int](n))
		}
		visit(c.Next())
		return ExprOpThen(op, kont.ExprReturn(kont.Left[int, int](n+1)))
	})
}
