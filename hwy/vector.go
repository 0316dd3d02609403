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

// Vec2 is a two-component vector, e.g. int2 or half2.
type Vec2[T any] [2]T

// Vec3 is a three-component vector.
type Vec3[T any] [3]T

// Vec4 is a four-component vector.
type Vec4[T any] [4]T

// Splat2 broadcasts v to both components.
func Splat2[T any](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

// Splat3 broadcasts v to all three components.
func Splat3[T any](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

// Splat4 broadcasts v to all four components.
func Splat4[T any](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}

// Map2 returns fn applied component-wise to a and b.
func Map2[T any](a, b Vec2[T], fn func(x, y T) T) Vec2[T] {
	return Vec2[T]{fn(a[0], b[0]), fn(a[1], b[1])}
}

// Map3 returns fn applied component-wise to a and b.
func Map3[T any](a, b Vec3[T], fn func(x, y T) T) Vec3[T] {
	return Vec3[T]{fn(a[0], b[0]), fn(a[1], b[1]), fn(a[2], b[2])}
}

// Map4 returns fn applied component-wise to a and b.
func Map4[T any](a, b Vec4[T], fn func(x, y T) T) Vec4[T] {
	return Vec4[T]{fn(a[0], b[0]), fn(a[1], b[1]), fn(a[2], b[2]), fn(a[3], b[3])}
}

// AllEqual reports whether eq holds for every pair of components.
// It is used for component types whose == is not the numeric equality,
// such as Float16 where +0 and -0 have different bits.
func AllEqual[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
