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

// Package reduce computes ordered reductions of a buffer under an associative
// binary function, splitting the work into contiguous chunks that may run in
// parallel.
//
// The result is always the left-to-right fold of the requested range:
//
//	((x[start] op x[start+1]) op x[start+2]) op ... op x[end-1]
//
// up to reassociation. The engine never swaps operands, so combining
// functions only need to be associative, not commutative. Chunk partials are
// written to index-addressed slots and combined in index order once every
// chunk is done, which makes the result independent of which chunk finishes
// first.
//
// # Schedulers
//
// Parallel execution is injected through the [Scheduler] interface:
//   - [Sequential]: runs every chunk on the calling goroutine.
//   - [Goroutines]: spawns goroutines per call.
//   - [Pool]: reuses a persistent workerpool.Pool.
//   - [Group]: bounded errgroup, turning chunk panics into errors.
//   - [Permuted]: runs chunks one at a time in a seeded random order.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-reduce/hwy/contrib/reduce"
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	eng := reduce.New(reduce.Add[int32](), reduce.WithScheduler(reduce.Pool(pool)))
//	sum, err := eng.ReduceRange(data, 34, len(data))
package reduce
