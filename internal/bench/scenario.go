// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"time"

	"code.hybscloud.com/coop"
)

// Suspend selects the suspension primitive a scenario loops over.
type Suspend uint8

const (
	SuspendYield Suspend = iota
	SuspendTimer
)

func (s Suspend) String() string {
	switch s {
	case SuspendYield:
		return "yield"
	case SuspendTimer:
		return "timer"
	default:
		return fmt.Sprintf("suspend(%d)", uint8(s))
	}
}

// Scenario is one cell of the measurement matrix: whether the early-exit
// guard runs first, where the task lives, which suspension primitive the
// loop body performs, and how long the visited sequence is.
type Scenario struct {
	Guard      bool
	Alloc      coop.Alloc
	Suspend    Suspend
	TimerDelay time.Duration
	Length     int
}

// Label renders the scenario as a stable key for reports and logs.
func (s Scenario) Label() string {
	guard := "off"
	if s.Guard {
		guard = "on"
	}
	suspend := s.Suspend.String()
	if s.Suspend == SuspendTimer {
		suspend = fmt.Sprintf("timer(%v)", s.TimerDelay)
	}
	return fmt.Sprintf("guard=%s/alloc=%s/suspend=%s/len=%d",
		guard, s.Alloc, suspend, s.Length)
}

// sampleCount picks the sampling depth for this scenario. Timer
// scenarios wall-wait every iteration, so they sample less.
func (s Scenario) sampleCount(cfg Config) int {
	if s.Suspend == SuspendTimer {
		return cfg.TimerSamples
	}
	return cfg.Samples
}

// Matrix expands a config into the full cross product of scenarios:
// guard on/off × stack/heap × yield plus one timer variant per
// configured delay, over every configured length.
func Matrix(cfg Config) []Scenario {
	var scenarios []Scenario
	for _, guard := range []bool{true, false} {
		for _, alloc := range []coop.Alloc{coop.Stack, coop.Heap} {
			for _, length := range cfg.Lengths {
				scenarios = append(scenarios, Scenario{
					Guard:   guard,
					Alloc:   alloc,
					Suspend: SuspendYield,
					Length:  length,
				})
				for _, delay := range cfg.TimerDelays {
					scenarios = append(scenarios, Scenario{
						Guard:      guard,
						Alloc:      alloc,
						Suspend:    SuspendTimer,
						TimerDelay: time.Duration(delay),
						Length:     length,
					})
				}
			}
		}
	}
	return scenarios
}
