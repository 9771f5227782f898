// Copyright 2026 go-simdtypes Authors
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

// Package simd provides fixed-width SIMD-friendly value types for float32
// graphics and numerics code.
//
// The package centers on two plain value types:
//
//   - Float4: a 4-lane float32 vector with broadcast, element-wise and
//     scalar arithmetic.
//   - Float3x4: a row-major 3x4 matrix built from three Float4 rows, with
//     element-wise matrix-matrix, matrix-scalar and scalar-matrix arithmetic.
//
// All arithmetic follows IEEE-754 single-precision semantics exactly:
// division by zero produces an infinity or NaN rather than an error, and no
// operation can fail. Operands are never mutated; every operation returns a
// freshly constructed value, so independent values may be used from any
// number of goroutines without synchronization.
//
// The element loops are written over fixed-size arrays so the compiler can
// auto-vectorize them. CurrentLevel and CurrentName report which SIMD
// instruction set the host CPU offers:
//
//	fmt.Printf("SIMD: %s (%d-byte registers)\n", simd.CurrentName(), simd.CurrentWidth())
//
// Basic usage:
//
//	a := simd.Float4{1, 2, 3, 4}
//	b := simd.Broadcast(10)
//	sum := a.Add(b) // {11, 12, 13, 14}
//
//	m := simd.Float3x4{Row0: a, Row1: a, Row2: a}
//	scaled := m.MulScalar(2)
package simd
