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

import (
	"math"
	"testing"
)

// TestFloat16Constants verifies the predefined Float16 constants.
func TestFloat16Constants(t *testing.T) {
	tests := []struct {
		name     string
		value    Float16
		expected float32
	}{
		{"Zero", Float16Zero, 0.0},
		{"NegZero", Float16NegZero, float32(math.Copysign(0, -1))},
		{"One", Float16One, 1.0},
		{"NegOne", Float16NegOne, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Float32()
			if got != tt.expected || math.Signbit(float64(got)) != math.Signbit(float64(tt.expected)) {
				t.Errorf("Float16%s: got %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

// TestFloat16FromIntExact checks every integer a partial sum can take.
func TestFloat16FromIntExact(t *testing.T) {
	for v := int32(-2048); v <= 2048; v++ {
		h := Float16FromInt(v)
		if got := h.Float32(); got != float32(v) {
			t.Fatalf("Float16FromInt(%d) = %v", v, got)
		}
	}
}

func TestAddFloat16(t *testing.T) {
	tests := []struct {
		a, b, want float32
	}{
		{1, 2, 3},
		{-15, 15, 0},
		{-120, 7, -113},
		{0.5, 0.25, 0.75},
		{1024, 1024, 2048},
	}
	for _, tt := range tests {
		got := AddFloat16(NewFloat16(tt.a), NewFloat16(tt.b))
		if got.Float32() != tt.want {
			t.Errorf("AddFloat16(%v, %v) = %v, want %v", tt.a, tt.b, got.Float32(), tt.want)
		}
	}
}

func TestAddFloat16Rounding(t *testing.T) {
	// 2048 + 1 is not representable; ties round to even.
	got := AddFloat16(NewFloat16(2048), Float16One)
	if got.Float32() != 2048 {
		t.Errorf("AddFloat16(2048, 1) = %v, want 2048", got.Float32())
	}
}

func TestEqualFloat16(t *testing.T) {
	if !EqualFloat16(Float16Zero, Float16NegZero) {
		t.Error("+0 and -0 should compare equal")
	}
	if Float16Zero == Float16NegZero {
		t.Error("+0 and -0 should differ bitwise")
	}
	nan := NewFloat16(float32(math.NaN()))
	if EqualFloat16(nan, nan) {
		t.Error("NaN should not equal itself")
	}
	if EqualFloat16(Float16One, Float16NegOne) {
		t.Error("1 and -1 should differ")
	}
}
