// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verify

import (
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-reduce/hwy/contrib/reduce"
	"github.com/ajroetker/go-reduce/hwy/contrib/reduce/sequence"
)

// IntervalKind is the Result.Kind of interval-merge checks.
const IntervalKind = "int2_merge"

// Options configures Run.
type Options struct {
	// Logger receives a warning per mismatch and debug progress.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Scheduler overrides the plan's scheduler when set.
	Scheduler reduce.Scheduler
}

// Run verifies every scenario of the plan for every selected kind, then the
// interval-merge inputs. It returns an error only for an invalid plan;
// mismatches are recorded in the Report.
func Run(plan Plan, opts Options) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sched := opts.Scheduler
	if sched == nil {
		s, pool, err := reduce.NewScheduler(plan.Scheduler, plan.Workers, plan.Seed)
		if err != nil {
			return nil, err
		}
		if pool != nil {
			defer pool.Close()
		}
		sched = s
	}

	engineOpts := []reduce.Option{reduce.WithScheduler(sched), reduce.WithGrain(plan.Grain)}
	if plan.Tree {
		engineOpts = append(engineOpts, reduce.WithTreeCombine())
	}

	report := &Report{}
	kinds := plan.SelectedKinds()
	for _, sc := range plan.Scenarios {
		ranges := sc.Ranges()
		logger.Debug("running scenario", "scenario", sc.Name, "size", sc.Size, "ranges", len(ranges), "kinds", len(kinds))
		for _, k := range kinds {
			for _, o := range k.Run(sc.Size, ranges, engineOpts...) {
				res := Result{
					Kind:     k.Name,
					Scenario: sc.Name,
					Start:    o.Start,
					End:      o.End,
					Got:      o.Got,
					Want:     o.Want,
					Passed:   o.Passed,
				}
				if o.Err != nil {
					res.Err = o.Err.Error()
				}
				record(logger, report, res)
			}
		}
	}

	for _, n := range plan.Intervals {
		record(logger, report, checkIntervals(n, engineOpts))
	}

	logger.Info("reduction checks finished", "status", report.Status(), "checks", len(report.Results), "failures", len(report.Failures()))
	return report, nil
}

func record(logger *slog.Logger, report *Report, res Result) {
	if !res.Passed {
		logger.Warn("incorrect result",
			"kind", res.Kind, "scenario", res.Scenario, "start", res.Start, "end", res.End,
			"result", res.Got, "expected", res.Want, "err", res.Err)
	}
	report.add(res)
}

// checkIntervals merges the intervals of sequence.Intervals(n), which only
// succeeds if the engine keeps every operand in order.
func checkIntervals(n int, opts []reduce.Option) Result {
	want := reduce.Interval{0, int32(n/2 - 1)}
	res := Result{
		Kind:     IntervalKind,
		Scenario: fmt.Sprintf("non_commutative_%d", n),
		Start:    0,
		End:      n / 2,
		Want:     fmt.Sprint(want),
	}

	intervals, err := reduce.Pack2(sequence.Intervals(n))
	if err != nil {
		res.Err = err.Error()
		return res
	}
	got, err := reduce.New(reduce.MergeIntervals(), opts...).Reduce(intervals)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Got = fmt.Sprint(got)
	res.Passed = got == want
	return res
}
