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

// Package verify runs the reduction engine over every supported element type
// and checks each result against the closed-form oracle of package sequence.
//
// A [Suite] holds the typed pieces for one element type: initializer,
// combining function, oracle and equality predicate. [Kinds] type-erases the
// suites so a [Plan] can select them by name. [Run] executes a plan and
// returns a [Report]. Mismatches are recorded in the report, never returned
// as errors, and the report reduces to a single [Status].
package verify

import (
	"fmt"

	"github.com/ajroetker/go-reduce/hwy/contrib/reduce"
)

// Suite verifies reductions over elements of type T.
type Suite[T any] struct {
	Name   string
	Op     reduce.Op[T]
	Init   func(buf []T)
	Oracle func(x1, x2 uint32) T
	Equal  func(a, b T) bool
}

// Outcome is the result of verifying one [start, end) range.
type Outcome struct {
	Start, End int
	Got, Want  string
	Passed     bool
	Err        error
}

// NewBuffer allocates a buffer of n elements and runs the initializer on it.
func (s Suite[T]) NewBuffer(n int) []T {
	buf := make([]T, n)
	s.Init(buf)
	return buf
}

// Verify reduces buf[start:end] with eng and compares it to the oracle.
// A reduction error is reported as a failed Outcome.
func (s Suite[T]) Verify(eng *reduce.Engine[T], buf []T, start, end int) Outcome {
	out := Outcome{Start: start, End: end}
	want := s.Oracle(uint32(start), uint32(end))
	out.Want = fmt.Sprint(want)

	got, err := eng.ReduceRange(buf, start, end)
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", s.Name, err)
		return out
	}
	out.Got = fmt.Sprint(got)
	out.Passed = s.Equal(got, want)
	return out
}

// Kind is a type-erased Suite, selectable by name.
type Kind struct {
	Name  string
	Op    string
	Width int // Vector width, 1 for scalars

	run func(size int, ranges []Range, opts []reduce.Option) []Outcome
}

// Run initializes one buffer of the given size and verifies every range
// over it with an engine built from opts.
func (k *Kind) Run(size int, ranges []Range, opts ...reduce.Option) []Outcome {
	return k.run(size, ranges, opts)
}

func newKind[T any](s Suite[T], width int) *Kind {
	return &Kind{
		Name:  s.Name,
		Op:    s.Op.Name,
		Width: width,
		run: func(size int, ranges []Range, opts []reduce.Option) []Outcome {
			eng := reduce.New(s.Op, opts...)
			buf := s.NewBuffer(size)
			outcomes := make([]Outcome, len(ranges))
			for i, r := range ranges {
				outcomes[i] = s.Verify(eng, buf, r.Start, r.End)
			}
			return outcomes
		},
	}
}
