package simd

import (
	"math"
	"testing"
)

func TestBroadcast(t *testing.T) {
	v := Broadcast(42.0)

	for i := range v {
		if v[i] != 42.0 {
			t.Errorf("Broadcast: lane %d: got %v, want 42.0", i, v[i])
		}
	}
}

func TestLoadFloat4(t *testing.T) {
	v := LoadFloat4([]float32{1, 2, 3, 4, 5, 6})

	want := Float4{1, 2, 3, 4}
	if v != want {
		t.Errorf("LoadFloat4: got %v, want %v", v, want)
	}
}

func TestLoadFloat4Short(t *testing.T) {
	v := LoadFloat4([]float32{7, 8})

	want := Float4{7, 8, 0, 0}
	if v != want {
		t.Errorf("LoadFloat4: got %v, want %v", v, want)
	}
}

func TestStore(t *testing.T) {
	v := Float4{1, 2, 3, 4}
	dst := make([]float32, 4)
	v.Store(dst)

	for i := range v {
		if dst[i] != v[i] {
			t.Errorf("Store: lane %d: got %v, want %v", i, dst[i], v[i])
		}
	}
}

func TestStoreShortDst(t *testing.T) {
	v := Float4{1, 2, 3, 4}
	dst := make([]float32, 2)
	v.Store(dst)

	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Store: got %v, want [1 2]", dst)
	}
}

func TestFloat4Add(t *testing.T) {
	a := Float4{1, 2, 3, 4}
	b := Float4{10, 20, 30, 40}
	result := a.Add(b)

	want := Float4{11, 22, 33, 44}
	if result != want {
		t.Errorf("Add: got %v, want %v", result, want)
	}
}

func TestFloat4Sub(t *testing.T) {
	a := Float4{10, 20, 30, 40}
	b := Float4{1, 2, 3, 4}
	result := a.Sub(b)

	want := Float4{9, 18, 27, 36}
	if result != want {
		t.Errorf("Sub: got %v, want %v", result, want)
	}
}

func TestFloat4Mul(t *testing.T) {
	a := Float4{1, 2, 3, 4}
	b := Float4{2, 3, 4, 5}
	result := a.Mul(b)

	want := Float4{2, 6, 12, 20}
	if result != want {
		t.Errorf("Mul: got %v, want %v", result, want)
	}
}

func TestFloat4Div(t *testing.T) {
	a := Float4{2, 6, 12, 20}
	b := Float4{2, 3, 4, 5}
	result := a.Div(b)

	want := Float4{1, 2, 3, 4}
	if result != want {
		t.Errorf("Div: got %v, want %v", result, want)
	}
}

func TestFloat4DivByZero(t *testing.T) {
	a := Float4{1, -1, 0, 2}
	result := a.Div(Float4{})

	if !math.IsInf(float64(result[0]), 1) {
		t.Errorf("Div: lane 0: got %v, want +Inf", result[0])
	}
	if !math.IsInf(float64(result[1]), -1) {
		t.Errorf("Div: lane 1: got %v, want -Inf", result[1])
	}
	if !math.IsNaN(float64(result[2])) {
		t.Errorf("Div: lane 2: got %v, want NaN", result[2])
	}
	if !math.IsInf(float64(result[3]), 1) {
		t.Errorf("Div: lane 3: got %v, want +Inf", result[3])
	}
}

func TestFloat4ScalarOps(t *testing.T) {
	v := Float4{1, 2, 3, 4}

	if got, want := v.AddScalar(10), (Float4{11, 12, 13, 14}); got != want {
		t.Errorf("AddScalar: got %v, want %v", got, want)
	}
	if got, want := v.SubScalar(1), (Float4{0, 1, 2, 3}); got != want {
		t.Errorf("SubScalar: got %v, want %v", got, want)
	}
	if got, want := v.MulScalar(2), (Float4{2, 4, 6, 8}); got != want {
		t.Errorf("MulScalar: got %v, want %v", got, want)
	}
	if got, want := v.DivScalar(2), (Float4{0.5, 1, 1.5, 2}); got != want {
		t.Errorf("DivScalar: got %v, want %v", got, want)
	}
}

func TestFloat4Neg(t *testing.T) {
	v := Float4{1, -2, 0, 4}
	result := v.Neg()

	want := Float4{-1, 2, 0, -4}
	if result != want {
		t.Errorf("Neg: got %v, want %v", result, want)
	}
}

func TestFloat4Abs(t *testing.T) {
	v := Float4{-1, 2, -3, 4}
	result := v.Abs()

	want := Float4{1, 2, 3, 4}
	if result != want {
		t.Errorf("Abs: got %v, want %v", result, want)
	}
}

func TestFloat4MinMax(t *testing.T) {
	a := Float4{1, 20, 3, 40}
	b := Float4{10, 2, 30, 4}

	if got, want := a.Min(b), (Float4{1, 2, 3, 4}); got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Float4{10, 20, 30, 40}); got != want {
		t.Errorf("Max: got %v, want %v", got, want)
	}
}

func TestFloat4Sqrt(t *testing.T) {
	v := Float4{16, 4, 1, 0}
	result := v.Sqrt()

	want := Float4{4, 2, 1, 0}
	if result != want {
		t.Errorf("Sqrt: got %v, want %v", result, want)
	}

	neg := Float4{-1, 1, 1, 1}.Sqrt()
	if !math.IsNaN(float64(neg[0])) {
		t.Errorf("Sqrt: negative lane: got %v, want NaN", neg[0])
	}
}

func TestFloat4NaNPassthrough(t *testing.T) {
	nan := float32(math.NaN())
	v := Float4{nan, 1, 2, 3}
	result := v.Add(Broadcast(1))

	if !math.IsNaN(float64(result[0])) {
		t.Errorf("Add: NaN lane: got %v, want NaN", result[0])
	}
	if result[1] != 2 {
		t.Errorf("Add: lane 1: got %v, want 2", result[1])
	}
}
