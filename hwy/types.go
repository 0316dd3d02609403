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

// Package hwy defines the element types reduced by the go-reduce engine and
// the runtime CPU dispatch information used to size reduction chunks.
//
// Element types are the scalar integers and floats, the half-precision
// [Float16], bool, and the fixed-width vectors [Vec2], [Vec3] and [Vec4] of any
// of those. Vectors are plain Go arrays, so two vectors are equal exactly when
// every component is equal.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-reduce/hwy"
//
//	a := hwy.Splat4[int32](3)
//	b := hwy.Vec4[int32]{1, 2, 3, 4}
//	sum := hwy.Map4(a, b, func(x, y int32) int32 { return x + y })
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for the types with a native + operator.
// Float16 is not included: its arithmetic goes through float32.
type Numbers interface {
	Floats | Integers
}
