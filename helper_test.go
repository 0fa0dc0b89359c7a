// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"time"

	"code.hybscloud.com/coop"
)

// countingSeq wraps a slice and counts Len and At reads, making emptiness
// checks and element accesses observable to tests.
type countingSeq struct {
	data coop.SliceSeq[int]
	lens int
	ats  int
}

func (s *countingSeq) Len() int {
	s.lens++
	return s.data.Len()
}

func (s *countingSeq) At(i int) int {
	s.ats++
	return s.data.At(i)
}

// scriptClock replays a fixed list of readings; the last reading repeats
// forever. Deterministic substitute for the system clock in scheduling
// tests: equal scripted readings produce equal stamped deadlines.
type scriptClock struct {
	times []time.Time
}

func (c *scriptClock) Now() time.Time {
	if len(c.times) > 1 {
		t := c.times[0]
		c.times = c.times[1:]
		return t
	}
	return c.times[0]
}

// drivePoints polls p to completion, collecting every emitted point.
// Only valid for tasks whose points need no waiting (yields and
// zero-delay timers).
func drivePoints(p coop.Poller) []coop.Point {
	var pts []coop.Point
	for {
		pt, pending := p.Poll()
		if !pending {
			return pts
		}
		pts = append(pts, pt)
	}
}
