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

// Op is an associative binary combining function over T.
//
// Combine must be pure and associative over the values it will see. It need
// not be commutative: the engine always passes the value covering lower
// indices as lhs.
type Op[T any] struct {
	Name        string
	Combine     func(lhs, rhs T) T
	Commutative bool
}

// Swapped returns op with its operands exchanged: Swapped().Combine(a, b) is
// op.Combine(b, a). The result is still associative. For a non-commutative op
// it computes a different fold, which tests use to detect reordering.
func (op Op[T]) Swapped() Op[T] {
	combine := op.Combine
	return Op[T]{
		Name:        op.Name + "_swapped",
		Combine:     func(lhs, rhs T) T { return combine(rhs, lhs) },
		Commutative: op.Commutative,
	}
}

// Add returns native addition. Integer addition wraps, which keeps it
// associative for unsigned partial sums of signed data.
func Add[T hwy.Numbers]() Op[T] {
	return Op[T]{
		Name:        "add",
		Combine:     func(lhs, rhs T) T { return lhs + rhs },
		Commutative: true,
	}
}

// AddFloat16 returns half-precision addition.
func AddFloat16() Op[hwy.Float16] {
	return Op[hwy.Float16]{
		Name:        "add",
		Combine:     hwy.AddFloat16,
		Commutative: true,
	}
}

// Or returns boolean OR.
func Or() Op[bool] {
	return Op[bool]{
		Name:        "or",
		Combine:     func(lhs, rhs bool) bool { return lhs || rhs },
		Commutative: true,
	}
}

// Lift2 applies op to each component of a Vec2.
func Lift2[T any](op Op[T]) Op[hwy.Vec2[T]] {
	f := op.Combine
	return Op[hwy.Vec2[T]]{
		Name:        op.Name,
		Combine:     func(lhs, rhs hwy.Vec2[T]) hwy.Vec2[T] { return hwy.Map2(lhs, rhs, f) },
		Commutative: op.Commutative,
	}
}

// Lift3 applies op to each component of a Vec3.
func Lift3[T any](op Op[T]) Op[hwy.Vec3[T]] {
	f := op.Combine
	return Op[hwy.Vec3[T]]{
		Name:        op.Name,
		Combine:     func(lhs, rhs hwy.Vec3[T]) hwy.Vec3[T] { return hwy.Map3(lhs, rhs, f) },
		Commutative: op.Commutative,
	}
}

// Lift4 applies op to each component of a Vec4.
func Lift4[T any](op Op[T]) Op[hwy.Vec4[T]] {
	f := op.Combine
	return Op[hwy.Vec4[T]]{
		Name:        op.Name,
		Combine:     func(lhs, rhs hwy.Vec4[T]) hwy.Vec4[T] { return hwy.Map4(lhs, rhs, f) },
		Commutative: op.Commutative,
	}
}

// Interval is the half-open interval (a, b) stored as {a, b}.
// It is valid when a <= b.
type Interval = hwy.Vec2[int32]

// InvalidInterval is the result of merging intervals that do not touch.
var InvalidInterval = Interval{-1, -1}

// MergeIntervals returns the interval merge: (a, b) and (c, d) merge into
// (a, d) when b == c. If either operand is invalid or the intervals are not
// adjacent the result is InvalidInterval, which absorbs any further merge with
// intervals of non-negative bounds. The operation is associative but not
// commutative.
func MergeIntervals() Op[Interval] {
	return Op[Interval]{
		Name:    "merge_intervals",
		Combine: mergeIntervals,
	}
}

func mergeIntervals(lhs, rhs Interval) Interval {
	if lhs[0] > lhs[1] || rhs[0] > rhs[1] {
		return InvalidInterval
	}
	if lhs[1] != rhs[0] {
		return InvalidInterval
	}
	return Interval{lhs[0], rhs[1]}
}
