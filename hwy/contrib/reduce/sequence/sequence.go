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

// Package sequence generates the deterministic reduction test input and
// computes the expected reduction of any subrange in closed form.
//
// One period of the sequence is
//
//	-15, -14, ..., -1, 0, 1, ..., 14, 15, 15, 14, ..., 1, 0, -1, ..., -14, -15
//
// so every prefix sum stays within [-120, 120] and every subrange sum within
// [-240, 240]. Float types, Float16 included, represent those sums exactly,
// and integer types agree with them modulo their width.
package sequence

const (
	// HalfPeriod is the length of the rising (or falling) half of the wave.
	HalfPeriod = 31
	// Period is the length of one full period. The sum over a period is 0.
	Period = 2 * HalfPeriod
	// Amplitude is the largest magnitude At returns.
	Amplitude = 15
)

// At returns element pos of the sequence: (pos mod 31) - 15, negated on the
// second half of each 62-element period.
func At(pos uint32) int32 {
	base := int32(pos%HalfPeriod) - Amplitude
	if pos%Period < HalfPeriod {
		return base
	}
	return -base
}

// PartialSum returns At(0) + ... + At(pos-1), and 0 for pos 0.
//
// The first n terms of a half-period sum to n(n-31)/2, a full half-period
// sums to 0, and the second half-period mirrors the first with the opposite
// sign. So only pos mod 62 matters.
func PartialSum(pos uint32) int32 {
	n := int32(pos % HalfPeriod)
	// n(n-31) is always even.
	psum := (n - HalfPeriod) * n / 2
	if pos%Period < HalfPeriod {
		return psum
	}
	return -psum
}

// RangeSum returns At(x1) + ... + At(x2-1). It requires x1 <= x2.
func RangeSum(x1, x2 uint32) int32 {
	return PartialSum(x2) - PartialSum(x1)
}

// Oracle returns the typed expected reduction of [x1, x2): RangeSum converted
// with conv. Converting the exact sum gives the same value as summing the
// converted elements for every supported type: integers wrap modulo their
// width, and floats represent every partial sum exactly.
func Oracle[T any](conv func(int32) T) func(x1, x2 uint32) T {
	return func(x1, x2 uint32) T {
		return conv(RangeSum(x1, x2))
	}
}

// Parity returns the boolean sequence element at pos: true for odd pos.
func Parity(pos uint32) bool {
	return pos%2 == 1
}

// ParityOracle returns the OR of Parity over [x1, x2), for x1 < x2: the range
// holds an odd position if it starts at one or spans at least two positions.
func ParityOracle(x1, x2 uint32) bool {
	return x1%2 == 1 || x2-x1 > 1
}

// Fill sets buf[i] = conv(At(i)) for every i.
func Fill[T any](buf []T, conv func(int32) T) {
	for i := range buf {
		buf[i] = conv(At(uint32(i)))
	}
}

// FillParity sets buf[i] = Parity(i) for every i.
func FillParity(buf []bool) {
	for i := range buf {
		buf[i] = Parity(uint32(i))
	}
}

// Intervals returns the flat interval-merge input of the given length:
// flat[i] = (i-1)/2 with division truncating toward zero. Packed into pairs
// it reads (0, 0), (0, 1), (1, 2), (2, 3), ..., which merge into
// (0, length/2-1).
func Intervals(length int) []int32 {
	flat := make([]int32, length)
	for i := range flat {
		flat[i] = int32((i - 1) / 2)
	}
	return flat
}
