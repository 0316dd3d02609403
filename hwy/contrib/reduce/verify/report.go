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
	"strings"

	"github.com/samber/lo"
)

// Status is the single verdict a client receives for a run.
type Status int

// Status values, numbered like the runtime's client messages.
const (
	TestPassed Status = 100
	TestFailed Status = 101
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case TestPassed:
		return "TEST_PASSED"
	case TestFailed:
		return "TEST_FAILED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is one verified (kind, scenario, range) combination.
type Result struct {
	Kind     string
	Scenario string
	Start    int
	End      int
	Got      string
	Want     string
	Passed   bool
	Err      string
}

// String formats the result on one line.
func (r Result) String() string {
	verdict := "ok"
	if !r.Passed {
		verdict = "FAIL"
	}
	s := fmt.Sprintf("%-4s %-8s %s [%d, %d) got=%s want=%s", verdict, r.Kind, r.Scenario, r.Start, r.End, r.Got, r.Want)
	if r.Err != "" {
		s += " err=" + r.Err
	}
	return s
}

// Report accumulates results. Failures are recorded, never raised, and the
// report folds them into one Status.
type Report struct {
	Results []Result
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
}

// Passed reports whether the report holds at least one result and every
// result passed.
func (r *Report) Passed() bool {
	return len(r.Results) > 0 && lo.EveryBy(r.Results, func(res Result) bool { return res.Passed })
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool { return !res.Passed })
}

// Status returns TestPassed if every result passed, else TestFailed.
func (r *Report) Status() Status {
	if r.Passed() {
		return TestPassed
	}
	return TestFailed
}

// Send delivers the report's Status to a client channel. It blocks until the
// client receives it.
func (r *Report) Send(ch chan<- Status) {
	ch <- r.Status()
}

// Summary returns a short human-readable summary, listing every failure.
func (r *Report) Summary() string {
	var sb strings.Builder
	failures := r.Failures()
	kinds := lo.Uniq(lo.Map(r.Results, func(res Result, _ int) string { return res.Kind }))
	fmt.Fprintf(&sb, "%s: %d checks over %d kinds, %d failed\n", r.Status(), len(r.Results), len(kinds), len(failures))
	for _, f := range failures {
		sb.WriteString("  ")
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
