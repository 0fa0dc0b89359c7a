// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/coop"
)

func TestGuardedEmptySkipsConstruction(t *testing.T) {
	seq := &countingSeq{data: coop.SliceSeq[int]{}}
	visit := func(int) { t.Fatal("visited an element of an empty sequence") }
	ex := coop.NewExecutor()

	allocsBefore, freesBefore := coop.BoxStats()
	n := coop.VisitEachGuarded(ex, coop.Heap, seq, visit, coop.Yield{})
	allocsAfter, freesAfter := coop.BoxStats()

	if n != 0 {
		t.Fatalf("count got %d, want 0", n)
	}
	if seq.lens != 1 {
		t.Fatalf("len reads got %d, want exactly 1 (the guard)", seq.lens)
	}
	if seq.ats != 0 {
		t.Fatalf("element reads got %d, want 0", seq.ats)
	}
	if allocsAfter != allocsBefore || freesAfter != freesBefore {
		t.Fatalf("guarded empty run touched box accounting: allocs %d→%d frees %d→%d",
			allocsBefore, allocsAfter, freesBefore, freesAfter)
	}
}

func TestUnguardedEmptySingleCheck(t *testing.T) {
	seq := &countingSeq{data: coop.SliceSeq[int]{}}
	visit := func(int) { t.Fatal("visited an element of an empty sequence") }
	ex := coop.NewExecutor()

	n := coop.VisitEach(ex, coop.Stack, seq, visit, coop.Yield{})

	if n != 0 {
		t.Fatalf("count got %d, want 0", n)
	}
	if seq.lens != 1 {
		t.Fatalf("has-more checks got %d, want exactly 1", seq.lens)
	}
	if seq.ats != 0 {
		t.Fatalf("element reads got %d, want 0", seq.ats)
	}
}

func TestUnguardedEmptyHeapAccounting(t *testing.T) {
	seq := coop.SliceSeq[int]{}
	ex := coop.NewExecutor()

	allocsBefore, freesBefore := coop.BoxStats()
	n := coop.VisitEach(ex, coop.Heap, seq, func(int) {}, coop.Yield{})
	allocsAfter, freesAfter := coop.BoxStats()

	if n != 0 {
		t.Fatalf("count got %d, want 0", n)
	}
	if allocsAfter-allocsBefore != 1 {
		t.Fatalf("allocs got %d, want exactly 1", allocsAfter-allocsBefore)
	}
	if freesAfter-freesBefore != 1 {
		t.Fatalf("frees got %d, want exactly 1", freesAfter-freesBefore)
	}
}

func TestGuardEquivalence(t *testing.T) {
	lengths := []int{0, 1, 2, 5}
	allocs := []coop.Alloc{coop.Stack, coop.Heap}

	for _, n := range lengths {
		data := make(coop.SliceSeq[int], n)
		for i := range data {
			data[i] = i * 11
		}
		for _, alloc := range allocs {
			var guarded, unguarded []int

			ex := coop.NewExecutor()
			gn := coop.VisitEachGuarded(ex, alloc, data, func(v int) { guarded = append(guarded, v) }, coop.Yield{})
			un := coop.VisitEach(ex, alloc, data, func(v int) { unguarded = append(unguarded, v) }, coop.Yield{})

			if gn != un {
				t.Fatalf("len=%d alloc=%v: counts differ guarded=%d unguarded=%d", n, alloc, gn, un)
			}
			if !reflect.DeepEqual(guarded, unguarded) {
				t.Fatalf("len=%d alloc=%v: visits differ guarded=%v unguarded=%v", n, alloc, guarded, unguarded)
			}
		}
	}
}

func TestGuardedNonEmptyMatchesUnguarded(t *testing.T) {
	data := coop.SliceSeq[int]{3, 1, 4}
	ex := coop.NewExecutor()

	var visits []int
	n := coop.VisitEachGuarded(ex, coop.Stack, data, func(v int) { visits = append(visits, v) }, coop.Yield{})

	if n != 3 {
		t.Fatalf("count got %d, want 3", n)
	}
	if len(visits) != 3 || visits[0] != 3 || visits[1] != 1 || visits[2] != 4 {
		t.Fatalf("visits got %v, want [3 1 4]", visits)
	}
}

func TestAllocString(t *testing.T) {
	if coop.Stack.String() != "stack" || coop.Heap.String() != "heap" {
		t.Fatalf("alloc names got %q/%q", coop.Stack, coop.Heap)
	}
}
