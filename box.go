// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// Alloc selects how a traversal task's state is represented.
// Both representations satisfy the same Poller contract; selecting one
// over the other never changes observable results, only the number of
// owned allocations and their latency.
type Alloc uint8

const (
	// Stack keeps the task state inline in the driving frame.
	Stack Alloc = iota
	// Heap places the task state behind one owned allocation.
	Heap
)

// String returns the lowercase name of the strategy.
func (a Alloc) String() string {
	if a == Heap {
		return "heap"
	}
	return "stack"
}

// Package counters for heap-indirected task accounting.
// Every NewTaskBox adds one alloc; every Free adds one free.
var (
	boxAllocs atomix.Uint32
	boxFrees  atomix.Uint32
)

// BoxStats returns the cumulative heap-indirected allocation and release
// counts. Callers interested in a single construction take deltas.
func BoxStats() (allocs, frees uint32) {
	return boxAllocs.Load(), boxFrees.Load()
}

// TaskBox is the heap-indirected representation of a Task: the task state
// is constructed behind an owned pointer allocated by NewTaskBox and
// released by Free. Exactly one allocation and one release occur per box.
type TaskBox[A any] struct {
	task *Task[A]
}

// NewTaskBox wraps a program as a heap-indirected task.
// Performs exactly one owned allocation.
func NewTaskBox[A any](program kont.Expr[A]) TaskBox[A] {
	t := NewTask(program)
	boxAllocs.Add(1)
	return TaskBox[A]{task: &t}
}

// Poll advances the boxed task by exactly one step.
// Panics if the box has been freed.
func (b *TaskBox[A]) Poll() (Point, bool) {
	if b.task == nil {
		panic("coop: task box used after free")
	}
	return b.task.Poll()
}

// Status returns the boxed task's lifecycle state.
// Panics if the box has been freed.
func (b *TaskBox[A]) Status() Status {
	if b.task == nil {
		panic("coop: task box used after free")
	}
	return b.task.Status()
}

// Result returns the boxed task's completed value.
// Panics if the box has been freed or the task has not completed.
func (b *TaskBox[A]) Result() A {
	if b.task == nil {
		panic("coop: task box used after free")
	}
	return b.task.Result()
}

// Free releases the owned task state. Freeing twice is a usage error
// and panics.
func (b *TaskBox[A]) Free() {
	if b.task == nil {
		panic("coop: task box freed twice")
	}
	b.task = nil
	boxFrees.Add(1)
}
