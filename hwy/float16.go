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

package hwy

import "github.com/x448/float16"

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
// Every integer in [-2048, 2048] is exactly representable, which covers all
// partial sums of the reduction test sequence.
type Float16 = float16.Float16

// Float16 constants for special values.
const (
	Float16Zero    Float16 = 0x0000 // Positive zero
	Float16NegZero Float16 = 0x8000 // Negative zero
	Float16One     Float16 = 0x3C00 // 1.0
	Float16NegOne  Float16 = 0xBC00 // -1.0
)

// NewFloat16 converts a float32 to Float16 with round-to-nearest-even.
func NewFloat16(f float32) Float16 {
	return float16.Fromfloat32(f)
}

// Float16FromInt converts an integer to Float16.
// Values outside [-65504, 65504] become infinities.
func Float16FromInt(v int32) Float16 {
	return float16.Fromfloat32(float32(v))
}

// AddFloat16 returns a+b rounded to Float16.
// The sum is computed in float32 and rounded back, so it is exact whenever
// the true sum is representable as a Float16.
func AddFloat16(a, b Float16) Float16 {
	return float16.Fromfloat32(a.Float32() + b.Float32())
}

// EqualFloat16 reports numeric equality: +0 equals -0 and NaN equals nothing.
func EqualFloat16(a, b Float16) bool {
	return a.Float32() == b.Float32()
}
