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

import "testing"

func TestSplat(t *testing.T) {
	if got := Splat2[int8](-3); got != (Vec2[int8]{-3, -3}) {
		t.Errorf("Splat2 = %v", got)
	}
	if got := Splat3[uint16](7); got != (Vec3[uint16]{7, 7, 7}) {
		t.Errorf("Splat3 = %v", got)
	}
	if got := Splat4(2.5); got != (Vec4[float64]{2.5, 2.5, 2.5, 2.5}) {
		t.Errorf("Splat4 = %v", got)
	}
}

func TestMap(t *testing.T) {
	add := func(x, y int32) int32 { return x + y }
	sub := func(x, y int32) int32 { return x - y }

	if got := Map2(Vec2[int32]{1, 2}, Vec2[int32]{10, 20}, add); got != (Vec2[int32]{11, 22}) {
		t.Errorf("Map2 = %v", got)
	}
	if got := Map3(Vec3[int32]{1, 2, 3}, Vec3[int32]{10, 20, 30}, add); got != (Vec3[int32]{11, 22, 33}) {
		t.Errorf("Map3 = %v", got)
	}
	// Operand order must be kept per component.
	if got := Map4(Vec4[int32]{1, 2, 3, 4}, Vec4[int32]{10, 20, 30, 40}, sub); got != (Vec4[int32]{-9, -18, -27, -36}) {
		t.Errorf("Map4 = %v", got)
	}
}

func TestVectorEquality(t *testing.T) {
	a := Vec3[float32]{1, 2, 3}
	b := Vec3[float32]{1, 2, 3}
	c := Vec3[float32]{1, 2, 4}
	if a != b {
		t.Error("equal vectors compare unequal")
	}
	if a == c {
		t.Error("vectors differing in the last component compare equal")
	}
}

func TestAllEqual(t *testing.T) {
	a := Vec2[Float16]{Float16Zero, Float16One}
	b := Vec2[Float16]{Float16NegZero, Float16One}
	if a == b {
		t.Fatal("expected bitwise difference")
	}
	if !AllEqual(a[:], b[:], EqualFloat16) {
		t.Error("AllEqual should treat +0 and -0 as equal")
	}
	if AllEqual(a[:], b[:1], EqualFloat16) {
		t.Error("AllEqual should reject different lengths")
	}
}
