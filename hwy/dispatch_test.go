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

func TestCurrentWidth(t *testing.T) {
	w := CurrentWidth()
	if w != 16 && w != 32 && w != 64 {
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = unknown for level %d", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, w/4)
	}
	if got := MaxLanes[bool](); got != w {
		t.Errorf("MaxLanes[bool]() = %d, want %d", got, w)
	}
	if got := MaxLanes[Vec4[Float16]](); got != w/8 {
		t.Errorf("MaxLanes[Vec4[Float16]]() = %d, want %d", got, w/8)
	}
	// Elements at least as wide as a register get one lane.
	if got := MaxLanes[[16]float64](); got != 1 {
		t.Errorf("MaxLanes[[16]float64]() = %d, want 1", got)
	}
	if got := MaxLanes[struct{}](); got != 1 {
		t.Errorf("MaxLanes[struct{}]() = %d, want 1", got)
	}
}

func TestDispatchLevelString(t *testing.T) {
	if DispatchAVX2.String() != "avx2" || DispatchNEON.String() != "neon" {
		t.Error("unexpected level names")
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Error("out of range level should be unknown")
	}
}
