// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "time"

// Clock is the monotonic time source consumed by the scheduler.
// Implementations must be monotonically non-decreasing. The scheduler
// never reads the clock in the absence of pending timers.
type Clock interface {
	Now() time.Time
}

// SysClock reads the system monotonic clock.
type SysClock struct{}

// Now returns the current reading, carrying Go's monotonic component.
func (SysClock) Now() time.Time { return time.Now() }
