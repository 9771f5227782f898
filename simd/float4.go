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

package simd

import "math"

// Float4 is a 4-lane float32 vector. It is a plain value type: copied by
// value, never mutated by its operations, and laid out as four contiguous
// float32 values with no padding.
//
// The loops below run over a fixed-size array so the compiler can
// auto-vectorize them into 128-bit SIMD instructions where available.
type Float4 [4]float32

// Broadcast returns a Float4 with every lane set to s.
func Broadcast(s float32) Float4 {
	return Float4{s, s, s, s}
}

// LoadFloat4 creates a Float4 from the first four elements of src.
// If src holds fewer than four elements, the remaining lanes are zero.
func LoadFloat4(src []float32) Float4 {
	var v Float4
	copy(v[:], src)
	return v
}

// Store writes the vector's lanes to dst, stopping at the shorter length.
func (v Float4) Store(dst []float32) {
	copy(dst, v[:])
}

// Add performs element-wise addition.
func (v Float4) Add(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float4) Sub(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func (v Float4) Mul(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Div performs element-wise division. A zero lane in o yields an infinity
// or NaN per IEEE-754; it is not an error.
func (v Float4) Div(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}

// AddScalar adds s to every lane.
func (v Float4) AddScalar(s float32) Float4 {
	return v.Add(Broadcast(s))
}

// SubScalar subtracts s from every lane.
func (v Float4) SubScalar(s float32) Float4 {
	return v.Sub(Broadcast(s))
}

// MulScalar multiplies every lane by s.
func (v Float4) MulScalar(s float32) Float4 {
	return v.Mul(Broadcast(s))
}

// DivScalar divides every lane by s. Dividing by zero yields infinities
// or NaN per IEEE-754.
func (v Float4) DivScalar(s float32) Float4 {
	return v.Div(Broadcast(s))
}

// Neg negates every lane.
func (v Float4) Neg() Float4 {
	var r Float4
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Abs returns the absolute value of every lane.
func (v Float4) Abs() Float4 {
	var r Float4
	for i := range v {
		r[i] = float32(math.Abs(float64(v[i])))
	}
	return r
}

// Min returns the lane-wise minimum of v and o.
func (v Float4) Min(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = float32(math.Min(float64(v[i]), float64(o[i])))
	}
	return r
}

// Max returns the lane-wise maximum of v and o.
func (v Float4) Max(o Float4) Float4 {
	var r Float4
	for i := range v {
		r[i] = float32(math.Max(float64(v[i]), float64(o[i])))
	}
	return r
}

// Sqrt returns the lane-wise square root. Negative lanes yield NaN.
func (v Float4) Sqrt() Float4 {
	var r Float4
	for i := range v {
		r[i] = float32(math.Sqrt(float64(v[i])))
	}
	return r
}
