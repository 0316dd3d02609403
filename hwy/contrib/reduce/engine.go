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

package reduce

import "github.com/ajroetker/go-reduce/hwy"

// Partition tuning parameters
const (
	// DefaultGrainVectors is the minimum chunk length in SIMD registers of
	// elements. Chunks shorter than this cost more to schedule than to fold.
	DefaultGrainVectors = 64

	// DefaultChunksPerWorker oversubscribes workers so that atomic work
	// stealing can balance uneven chunks.
	DefaultChunksPerWorker = 4
)

type config struct {
	sched           Scheduler
	grain           int
	chunksPerWorker int
	tree            bool
}

// Option configures an Engine.
type Option func(*config)

// WithScheduler sets the scheduler that runs chunk folds. The default is
// Sequential.
func WithScheduler(s Scheduler) Option {
	return func(c *config) { c.sched = s }
}

// WithGrain sets the minimum number of elements per chunk. Values <= 0 select
// DefaultGrainVectors registers of elements for the current dispatch width.
func WithGrain(n int) Option {
	return func(c *config) { c.grain = n }
}

// WithChunksPerWorker sets how many chunks each scheduler worker gets.
func WithChunksPerWorker(n int) Option {
	return func(c *config) { c.chunksPerWorker = max(n, 1) }
}

// WithTreeCombine combines chunk partials pairwise in a balanced tree, one
// level per scheduler round, instead of a single left-to-right pass.
func WithTreeCombine() Option {
	return func(c *config) { c.tree = true }
}

// Engine reduces buffers of T with a fixed Op and scheduling configuration.
// An Engine is safe for concurrent use if its Scheduler is.
type Engine[T any] struct {
	op  Op[T]
	cfg config
}

// New returns an Engine for op. It panics if op.Combine is nil.
func New[T any](op Op[T], opts ...Option) *Engine[T] {
	if op.Combine == nil {
		panic("reduce: New called with nil Combine")
	}
	cfg := config{
		sched:           Sequential(),
		chunksPerWorker: DefaultChunksPerWorker,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sched == nil {
		cfg.sched = Sequential()
	}
	return &Engine[T]{op: op, cfg: cfg}
}

// Reduce folds the whole buffer.
func (e *Engine[T]) Reduce(data []T) (T, error) {
	return e.reduce("Reduce", data, 0, len(data))
}

// ReduceRange folds data[start:end]. The range must be non-empty and inside
// the buffer.
func (e *Engine[T]) ReduceRange(data []T, start, end int) (T, error) {
	return e.reduce("ReduceRange", data, start, end)
}

func (e *Engine[T]) reduce(opName string, data []T, start, end int) (T, error) {
	var zero T
	switch {
	case data == nil:
		return zero, &Error{Kind: KindNilInput, Op: opName}
	case len(data) == 0:
		return zero, &Error{Kind: KindEmptyInput, Op: opName}
	case start < 0:
		return zero, newError(KindInvalidRange, opName, "start %d is negative", start)
	case start >= end:
		return zero, newError(KindInvalidRange, opName, "start %d is not before end %d", start, end)
	case end > len(data):
		return zero, newError(KindInvalidRange, opName, "end %d is past length %d", end, len(data))
	}

	spans := e.partition(start, end)
	if len(spans) == 1 {
		return foldRange(data, spans[0], e.op.Combine), nil
	}

	partials := make([]T, len(spans))
	done := make([]bool, len(spans))
	combine := e.op.Combine
	err := e.cfg.sched.Execute(len(spans), func(i int) {
		partials[i] = foldRange(data, spans[i], combine)
		done[i] = true
	})
	if err != nil {
		return zero, &Error{Kind: KindScheduler, Op: opName, Msg: "chunk fold", Err: err}
	}
	for i, ok := range done {
		if !ok {
			return zero, newError(KindScheduler, opName, "chunk %d of %d never ran", i, len(spans))
		}
	}

	if e.cfg.tree {
		return e.combineTree(opName, partials)
	}
	return foldRange(partials, span{0, len(partials)}, combine), nil
}

// combineTree reduces partials level by level. Level k combines pairs
// (2i, 2i+1) into slot i, so the left operand always covers lower indices.
// An odd element at the end of a level is carried up unchanged.
func (e *Engine[T]) combineTree(opName string, partials []T) (T, error) {
	var zero T
	combine := e.op.Combine
	cur := partials
	for len(cur) > 1 {
		pairs := len(cur) / 2
		next := make([]T, pairs+len(cur)%2)
		done := make([]bool, pairs)
		err := e.cfg.sched.Execute(pairs, func(i int) {
			next[i] = combine(cur[2*i], cur[2*i+1])
			done[i] = true
		})
		if err != nil {
			return zero, &Error{Kind: KindScheduler, Op: opName, Msg: "tree combine", Err: err}
		}
		for i, ok := range done {
			if !ok {
				return zero, newError(KindScheduler, opName, "tree pair %d of %d never ran", i, pairs)
			}
		}
		if len(cur)%2 == 1 {
			next[pairs] = cur[len(cur)-1]
		}
		cur = next
	}
	return cur[0], nil
}

// span is the half-open index range [start, end).
type span struct{ start, end int }

// partition splits [start, end) into contiguous, ordered spans whose lengths
// differ by at most one. The count is bounded by the scheduler's workers times
// chunksPerWorker and by the grain.
func (e *Engine[T]) partition(start, end int) []span {
	n := end - start
	grain := e.cfg.grain
	if grain <= 0 {
		grain = hwy.MaxLanes[T]() * DefaultGrainVectors
	}

	chunks := max(e.cfg.sched.Workers(), 1) * e.cfg.chunksPerWorker
	chunks = min(chunks, (n+grain-1)/grain)
	chunks = max(chunks, 1)

	spans := make([]span, chunks)
	base, extra := n/chunks, n%chunks
	pos := start
	for i := range spans {
		size := base
		if i < extra {
			size++
		}
		spans[i] = span{pos, pos + size}
		pos += size
	}
	return spans
}

// foldRange folds data[s.start:s.end] left to right. The span is non-empty.
func foldRange[T any](data []T, s span, combine func(lhs, rhs T) T) T {
	acc := data[s.start]
	for i := s.start + 1; i < s.end; i++ {
		acc = combine(acc, data[i])
	}
	return acc
}

// Reduce folds data with op using scheduler s and default partitioning.
func Reduce[T any](s Scheduler, data []T, op Op[T]) (T, error) {
	return New(op, WithScheduler(s)).Reduce(data)
}

// Fold is the sequential left fold of data under op, with no chunking.
// It is the reference every Engine configuration must agree with.
func Fold[T any](data []T, op Op[T]) (T, error) {
	var zero T
	if data == nil {
		return zero, &Error{Kind: KindNilInput, Op: "Fold"}
	}
	if len(data) == 0 {
		return zero, &Error{Kind: KindEmptyInput, Op: "Fold"}
	}
	return foldRange(data, span{0, len(data)}, op.Combine), nil
}
