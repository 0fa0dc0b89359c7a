// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"code.hybscloud.com/coop"
)

// clockProbeAttempts bounds the busy readings taken to prove the clock
// advances before any scenario runs.
const clockProbeAttempts = 1 << 10

// sink keeps visited elements observable so the traversal under
// measurement cannot be optimized away.
var sink int

func visitSink(v int) { sink = v }

// Runner executes the scenario matrix sequentially on a single goroutine
// and produces a Report. A run either completes every scenario or aborts
// with an error; partial reports are never produced.
type Runner struct {
	cfg    Config
	clock  coop.Clock
	logger *log.Logger
}

func NewRunner(cfg Config, clock coop.Clock, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, clock: clock, logger: logger}
}

// Run probes the clock, walks the matrix, and aggregates per-scenario
// samples into a report.
func (r *Runner) Run() (*Report, error) {
	if err := probeClock(r.clock); err != nil {
		return nil, fmt.Errorf("clock probe: %w", err)
	}

	report := &Report{
		RunID:     uuid.New(),
		Started:   time.Now(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
	}

	scenarios := Matrix(r.cfg)
	r.logger.Info("starting run", "id", report.RunID, "scenarios", len(scenarios))

	for _, sc := range scenarios {
		r.logger.Debug("running scenario", "label", sc.Label())
		agg, err := r.runScenario(sc)
		if err != nil {
			return nil, err
		}
		report.Aggregates = append(report.Aggregates, agg)
	}

	r.logger.Info("run complete", "id", report.RunID)
	return report, nil
}

// runScenario performs warmup then timed iterations of one scenario on a
// fresh executor. Every iteration must visit exactly Length elements;
// anything else means the harness itself is broken and aborts the run.
func (r *Runner) runScenario(sc Scenario) (Aggregate, error) {
	data := make(coop.SliceSeq[int], sc.Length)
	for i := range data {
		data[i] = i
	}
	ex := coop.NewExecutorClock(r.clock)

	for range r.cfg.Warmup {
		if n := invoke(ex, sc, data); n != sc.Length {
			return Aggregate{}, fmt.Errorf("scenario %s: visited %d of %d elements", sc.Label(), n, sc.Length)
		}
	}

	count := sc.sampleCount(r.cfg)
	samples := make([]time.Duration, 0, count)
	for range count {
		start := r.clock.Now()
		n := invoke(ex, sc, data)
		elapsed := r.clock.Now().Sub(start)
		if n != sc.Length {
			return Aggregate{}, fmt.Errorf("scenario %s: visited %d of %d elements", sc.Label(), n, sc.Length)
		}
		samples = append(samples, elapsed)
	}

	return Aggregated(sc.Label(), samples), nil
}

// invoke dispatches one traversal for the scenario. The op type is part
// of the generic signature, so yield and timer split here.
func invoke(ex *coop.Executor, sc Scenario, data coop.SliceSeq[int]) int {
	if sc.Suspend == SuspendTimer {
		op := coop.Sleep{For: sc.TimerDelay}
		if sc.Guard {
			return coop.VisitEachGuarded(ex, sc.Alloc, data, visitSink, op)
		}
		return coop.VisitEach(ex, sc.Alloc, data, visitSink, op)
	}
	if sc.Guard {
		return coop.VisitEachGuarded(ex, sc.Alloc, data, visitSink, coop.Yield{})
	}
	return coop.VisitEach(ex, sc.Alloc, data, visitSink, coop.Yield{})
}

// probeClock takes repeated readings until the clock is seen to advance.
// A clock that runs backwards or never moves would make every sample
// meaningless, so the run refuses to start.
func probeClock(c coop.Clock) error {
	first := c.Now()
	for range clockProbeAttempts {
		next := c.Now()
		if next.Before(first) {
			return fmt.Errorf("clock went backwards: %v then %v", first, next)
		}
		if next.After(first) {
			return nil
		}
	}
	return errors.New("clock did not advance")
}
