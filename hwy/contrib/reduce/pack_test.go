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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-reduce/hwy"
)

func TestPack(t *testing.T) {
	v2, err := Pack2([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec2[float32]{{1, 2}, {3, 4}}, v2)

	v3, err := Pack3([]int16{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec3[int16]{{1, 2, 3}, {4, 5, 6}}, v3)

	v4, err := Pack4([]uint8{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec4[uint8]{{1, 2, 3, 4}}, v4)

	empty, err := Pack4([]uint8{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPackPadding(t *testing.T) {
	for _, n := range []int{1, 3} {
		_, err := Pack2(make([]float32, n))
		assert.ErrorIs(t, err, ErrPadding, "Pack2 length %d", n)
	}
	for _, n := range []int{1, 2, 4} {
		_, err := Pack3(make([]float32, n))
		assert.ErrorIs(t, err, ErrPadding, "Pack3 length %d", n)
	}
	for _, n := range []int{1, 2, 3} {
		_, err := Pack4(make([]float32, n))
		assert.ErrorIs(t, err, ErrPadding, "Pack4 length %d", n)
	}

	_, err := Pack2[float32](nil)
	assert.ErrorIs(t, err, ErrNilInput)
}

// TestPackedRangeIsInVectors checks that ranges over packed data count
// vectors: a 2-vector range over 4 floats packed as Vec4 is out of bounds.
func TestPackedRangeIsInVectors(t *testing.T) {
	v4, err := Pack4(make([]float32, 4))
	require.NoError(t, err)
	_, err = New(Lift4(Add[float32]())).ReduceRange(v4, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)

	v2, err := Pack2([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	got, err := New(Lift2(Add[float32]())).ReduceRange(v2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, hwy.Vec2[float32]{4, 6}, got)
}
