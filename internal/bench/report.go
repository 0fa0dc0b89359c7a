// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report is the result of a complete run: every scenario in the matrix
// produced an aggregate, or the run aborted and no report exists.
type Report struct {
	RunID      uuid.UUID
	Started    time.Time
	GoVersion  string
	OS         string
	Arch       string
	CPUs       int
	Aggregates []Aggregate
}

// Render writes the report as a fixed-width table.
func (r *Report) Render(w io.Writer) error {
	labelWidth := len("scenario")
	for _, agg := range r.Aggregates {
		if len(agg.Label) > labelWidth {
			labelWidth = len(agg.Label)
		}
	}

	if _, err := fmt.Fprintf(w, "coopbench run %s started %s\n",
		r.RunID, r.Started.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s/%s cpus=%d\n\n",
		r.GoVersion, r.OS, r.Arch, r.CPUs); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%-*s %8s %12s %12s %12s %12s\n",
		labelWidth, "scenario", "samples", "mean", "stddev", "min", "max"); err != nil {
		return err
	}
	for _, agg := range r.Aggregates {
		if _, err := fmt.Fprintf(w, "%-*s %8d %12v %12v %12v %12v\n",
			labelWidth, agg.Label, agg.Count,
			agg.Mean, agg.StdDev, agg.Min, agg.Max); err != nil {
			return err
		}
	}
	return nil
}
