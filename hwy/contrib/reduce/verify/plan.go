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
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-reduce/hwy/contrib/reduce"
)

//go:embed default_plan.yaml
var defaultPlanYAML []byte

// Range is the half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Scenario is one input size and the ranges reduced over it.
type Scenario struct {
	Name  string `yaml:"name"`
	Size  int    `yaml:"size"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"` // 0 means Size

	// AllRanges reduces every non-empty [start, end) within Size instead of
	// the single Start/End range.
	AllRanges bool `yaml:"all_ranges"`
}

// Ranges returns the ranges this scenario reduces.
func (s Scenario) Ranges() []Range {
	if s.AllRanges {
		var ranges []Range
		for start := 0; start < s.Size; start++ {
			for end := start + 1; end <= s.Size; end++ {
				ranges = append(ranges, Range{start, end})
			}
		}
		return ranges
	}
	end := s.End
	if end == 0 {
		end = s.Size
	}
	return []Range{{s.Start, end}}
}

func (s Scenario) validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("scenario %q: size %d must be positive", s.Name, s.Size)
	}
	for _, r := range s.Ranges() {
		if r.Start < 0 || r.Start >= r.End || r.End > s.Size {
			return fmt.Errorf("scenario %q: range [%d, %d) is not a non-empty range within size %d",
				s.Name, r.Start, r.End, s.Size)
		}
	}
	return nil
}

// Plan selects what Run verifies and how the engine is scheduled.
type Plan struct {
	Scheduler string     `yaml:"scheduler"` // One of reduce.SchedulerNames
	Workers   int        `yaml:"workers"`   // 0 means GOMAXPROCS
	Grain     int        `yaml:"grain"`     // 0 means the dispatch-width default
	Tree      bool       `yaml:"tree"`
	Seed      uint64     `yaml:"seed"` // For the permuted scheduler
	Types     []string   `yaml:"types"` // Empty means every kind
	Scenarios []Scenario `yaml:"scenarios"`
	Intervals []int      `yaml:"intervals"`
}

// DefaultPlan returns the built-in test matrix.
func DefaultPlan() Plan {
	p, err := ParsePlan(defaultPlanYAML)
	if err != nil {
		panic(fmt.Sprintf("verify: embedded plan: %v", err))
	}
	return p
}

// ParsePlan decodes and validates a YAML plan. Unknown fields are rejected.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	if err := decodeStrict(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parsing plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// LoadPlan reads a YAML plan from path.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	return ParsePlan(data)
}

// Validate checks types, scenario ranges, interval lengths and the scheduler
// name.
func (p Plan) Validate() error {
	if p.Scheduler != "" && !lo.Contains(reduce.SchedulerNames, p.Scheduler) {
		return fmt.Errorf("unknown scheduler %q (want one of %v)", p.Scheduler, reduce.SchedulerNames)
	}
	if unknown := lo.Reject(p.Types, func(name string, _ int) bool { _, ok := Lookup(name); return ok }); len(unknown) > 0 {
		return fmt.Errorf("unknown element types %v", unknown)
	}
	for _, s := range p.Scenarios {
		if err := s.validate(); err != nil {
			return err
		}
	}
	for _, n := range p.Intervals {
		if n < 2 || n%2 != 0 {
			return fmt.Errorf("interval input length %d must be a positive even number", n)
		}
	}
	if len(p.Scenarios) == 0 && len(p.Intervals) == 0 {
		return errors.New("plan has no scenarios and no interval checks")
	}
	return nil
}

// SelectedKinds returns the kinds named by Types, or every kind.
func (p Plan) SelectedKinds() []*Kind {
	if len(p.Types) == 0 {
		return Kinds()
	}
	return lo.FilterMap(lo.Uniq(p.Types), func(name string, _ int) (*Kind, bool) {
		return Lookup(name)
	})
}

// ApplyEnv overrides plan fields from the environment:
//
//   - HWY_REDUCE_SCHEDULER: scheduler name
//   - HWY_REDUCE_WORKERS: worker count
func (p *Plan) ApplyEnv() error {
	if s := os.Getenv("HWY_REDUCE_SCHEDULER"); s != "" {
		p.Scheduler = s
	}
	if s := os.Getenv("HWY_REDUCE_WORKERS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("HWY_REDUCE_WORKERS: %w", err)
		}
		p.Workers = n
	}
	return p.Validate()
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
