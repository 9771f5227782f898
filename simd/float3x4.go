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

// Float3x4 is a row-major 3x4 matrix of float32, stored as three Float4
// rows. The struct is 48 bytes with no padding, bit-compatible with
// [3]Float4. Like Float4 it is a plain value type: operations never mutate
// their operands and always return a freshly constructed matrix.
//
// All arithmetic is element-wise. Mul and Div in particular are Hadamard
// (lane-by-lane) operations, not the linear-algebra matrix product.
type Float3x4 struct {
	Row0, Row1, Row2 Float4
}

// MatrixFloat3x4 is an alias for Float3x4, for callers that prefer the
// matrix_* naming convention.
type MatrixFloat3x4 = Float3x4

// Add performs element-wise addition.
func (m Float3x4) Add(o Float3x4) Float3x4 {
	return Float3x4{
		Row0: m.Row0.Add(o.Row0),
		Row1: m.Row1.Add(o.Row1),
		Row2: m.Row2.Add(o.Row2),
	}
}

// Sub performs element-wise subtraction.
func (m Float3x4) Sub(o Float3x4) Float3x4 {
	return Float3x4{
		Row0: m.Row0.Sub(o.Row0),
		Row1: m.Row1.Sub(o.Row1),
		Row2: m.Row2.Sub(o.Row2),
	}
}

// Mul performs element-wise multiplication.
func (m Float3x4) Mul(o Float3x4) Float3x4 {
	return Float3x4{
		Row0: m.Row0.Mul(o.Row0),
		Row1: m.Row1.Mul(o.Row1),
		Row2: m.Row2.Mul(o.Row2),
	}
}

// Div performs element-wise division. A zero lane in o yields an infinity
// or NaN per IEEE-754; it is not an error.
func (m Float3x4) Div(o Float3x4) Float3x4 {
	return Float3x4{
		Row0: m.Row0.Div(o.Row0),
		Row1: m.Row1.Div(o.Row1),
		Row2: m.Row2.Div(o.Row2),
	}
}

// AddScalar adds s to every lane of the matrix.
func (m Float3x4) AddScalar(s float32) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: m.Row0.Add(b),
		Row1: m.Row1.Add(b),
		Row2: m.Row2.Add(b),
	}
}

// SubScalar subtracts s from every lane of the matrix.
func (m Float3x4) SubScalar(s float32) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: m.Row0.Sub(b),
		Row1: m.Row1.Sub(b),
		Row2: m.Row2.Sub(b),
	}
}

// MulScalar multiplies every lane of the matrix by s.
func (m Float3x4) MulScalar(s float32) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: m.Row0.Mul(b),
		Row1: m.Row1.Mul(b),
		Row2: m.Row2.Mul(b),
	}
}

// DivScalar divides every lane of the matrix by s. Dividing by zero yields
// infinities or NaN per IEEE-754.
func (m Float3x4) DivScalar(s float32) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: m.Row0.Div(b),
		Row1: m.Row1.Div(b),
		Row2: m.Row2.Div(b),
	}
}

// ScalarAdd returns the matrix whose lanes are s + lane. Addition commutes
// lane-by-lane, but the scalar is still broadcast and applied on the left
// for consistency with ScalarSub and ScalarDiv.
func ScalarAdd(s float32, m Float3x4) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: b.Add(m.Row0),
		Row1: b.Add(m.Row1),
		Row2: b.Add(m.Row2),
	}
}

// ScalarSub returns the matrix whose lanes are s - lane. The scalar is the
// left operand: ScalarSub(10, m) is not m.SubScalar(10).
func ScalarSub(s float32, m Float3x4) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: b.Sub(m.Row0),
		Row1: b.Sub(m.Row1),
		Row2: b.Sub(m.Row2),
	}
}

// ScalarMul returns the matrix whose lanes are s * lane.
func ScalarMul(s float32, m Float3x4) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: b.Mul(m.Row0),
		Row1: b.Mul(m.Row1),
		Row2: b.Mul(m.Row2),
	}
}

// ScalarDiv returns the matrix whose lanes are s / lane. The scalar is the
// left operand; a zero lane in m yields an infinity or NaN per IEEE-754.
func ScalarDiv(s float32, m Float3x4) Float3x4 {
	b := Broadcast(s)
	return Float3x4{
		Row0: b.Div(m.Row0),
		Row1: b.Div(m.Row1),
		Row2: b.Div(m.Row2),
	}
}
