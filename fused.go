// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"time"

	"code.hybscloud.com/kont"
)

// YieldThen yields the processor and then continues with next.
// Fuses Perform(Yield{}) + Then.
func YieldThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield{}), next)
}

// SleepThen sleeps for at least d and then continues with next.
// Fuses Perform(Sleep{For: d}) + Then.
func SleepThen[B any](d time.Duration, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Sleep{For: d}), next)
}

// OpThen performs a scheduler operation and then continues with next.
// Fuses Perform(op) + Then for any operation in the scheduler effect set.
func OpThen[O kont.Op[O, struct{}], B any](op O, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(op), next)
}
