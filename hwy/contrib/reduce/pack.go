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

// Pack2 groups a flat array into Vec2 values. The length must be a multiple
// of 2; ranges over the result are then counted in vectors.
func Pack2[T any](flat []T) ([]hwy.Vec2[T], error) {
	return pack(flat, 2, "Pack2", func(s []T) hwy.Vec2[T] { return hwy.Vec2[T]{s[0], s[1]} })
}

// Pack3 groups a flat array into Vec3 values. The length must be a multiple
// of 3.
func Pack3[T any](flat []T) ([]hwy.Vec3[T], error) {
	return pack(flat, 3, "Pack3", func(s []T) hwy.Vec3[T] { return hwy.Vec3[T]{s[0], s[1], s[2]} })
}

// Pack4 groups a flat array into Vec4 values. The length must be a multiple
// of 4.
func Pack4[T any](flat []T) ([]hwy.Vec4[T], error) {
	return pack(flat, 4, "Pack4", func(s []T) hwy.Vec4[T] { return hwy.Vec4[T]{s[0], s[1], s[2], s[3]} })
}

func pack[T, V any](flat []T, width int, opName string, load func([]T) V) ([]V, error) {
	if flat == nil {
		return nil, &Error{Kind: KindNilInput, Op: opName}
	}
	if len(flat)%width != 0 {
		return nil, newError(KindPadding, opName, "length %d is not a multiple of %d", len(flat), width)
	}
	out := make([]V, len(flat)/width)
	for i := range out {
		out[i] = load(flat[i*width : (i+1)*width])
	}
	return out, nil
}
