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

package verify

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-reduce/hwy"
	"github.com/ajroetker/go-reduce/hwy/contrib/reduce"
	"github.com/ajroetker/go-reduce/hwy/contrib/reduce/sequence"
)

// kinds lists every supported element kind, sorted by name.
var kinds = buildKinds()

var kindsByName = lo.KeyBy(kinds, func(k *Kind) string { return k.Name })

// Kinds returns every supported element kind, sorted by name.
func Kinds() []*Kind {
	return slices.Clone(kinds)
}

// KindNames returns the names of every supported element kind.
func KindNames() []string {
	return lo.Map(kinds, func(k *Kind, _ int) string { return k.Name })
}

// Lookup returns the kind with the given name.
func Lookup(name string) (*Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

func buildKinds() []*Kind {
	all := []*Kind{boolKind()}
	all = append(all, numeric[int8]("char")...)
	all = append(all, numeric[uint8]("uchar")...)
	all = append(all, numeric[int16]("short")...)
	all = append(all, numeric[uint16]("ushort")...)
	all = append(all, numeric[int32]("int")...)
	all = append(all, numeric[uint32]("uint")...)
	all = append(all, numeric[int64]("long")...)
	all = append(all, numeric[uint64]("ulong")...)
	all = append(all, numeric[float32]("float")...)
	all = append(all, numeric[float64]("double")...)
	all = append(all, family("half", reduce.AddFloat16(), hwy.Float16FromInt, hwy.EqualFloat16)...)
	slices.SortFunc(all, func(a, b *Kind) int { return cmp.Compare(a.Name, b.Name) })
	return all
}

func boolKind() *Kind {
	return newKind(Suite[bool]{
		Name:   "bool",
		Op:     reduce.Or(),
		Init:   sequence.FillParity,
		Oracle: sequence.ParityOracle,
		Equal:  func(a, b bool) bool { return a == b },
	}, 1)
}

func numeric[T hwy.Numbers](base string) []*Kind {
	conv := func(v int32) T { return T(v) }
	equal := func(a, b T) bool { return a == b }
	return family(base, reduce.Add[T](), conv, equal)
}

// family builds the scalar kind and its 2, 3 and 4 component vector kinds.
// Vector elements are the scalar sequence splatted to every component.
func family[T any](base string, op reduce.Op[T], conv func(int32) T, equal func(a, b T) bool) []*Kind {
	return []*Kind{
		newKind(suiteFor(base, op, conv, equal), 1),
		newKind(suiteFor(base+"2", reduce.Lift2(op),
			func(v int32) hwy.Vec2[T] { return hwy.Splat2(conv(v)) },
			func(a, b hwy.Vec2[T]) bool { return hwy.AllEqual(a[:], b[:], equal) }), 2),
		newKind(suiteFor(base+"3", reduce.Lift3(op),
			func(v int32) hwy.Vec3[T] { return hwy.Splat3(conv(v)) },
			func(a, b hwy.Vec3[T]) bool { return hwy.AllEqual(a[:], b[:], equal) }), 3),
		newKind(suiteFor(base+"4", reduce.Lift4(op),
			func(v int32) hwy.Vec4[T] { return hwy.Splat4(conv(v)) },
			func(a, b hwy.Vec4[T]) bool { return hwy.AllEqual(a[:], b[:], equal) }), 4),
	}
}

func suiteFor[T any](name string, op reduce.Op[T], conv func(int32) T, equal func(a, b T) bool) Suite[T] {
	return Suite[T]{
		Name:   name,
		Op:     op,
		Init:   func(buf []T) { sequence.Fill(buf, conv) },
		Oracle: sequence.Oracle(conv),
		Equal:  equal,
	}
}
