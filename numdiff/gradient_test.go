package numdiff

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/curioloop/benchfn/testfunc"
	"github.com/stretchr/testify/require"
)

func objSinLog(x []float64) float64 {
	return math.Sin(x[0]*x[1]) * math.Log(x[0])
}

func gradSinLog(x []float64) []float64 {
	return []float64{
		x[1]*math.Cos(x[0]*x[1])*math.Log(x[0]) + math.Sin(x[0]*x[1])/x[0],
		x[0] * math.Cos(x[0]*x[1]) * math.Log(x[0]),
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py (TestAdjustSchemeToBounds)
func TestAdjustToBnd(t *testing.T) {

	// test_no_bounds
	{
		x0 := slices.Repeat([]float64{0}, 3)
		h0 := slices.Repeat([]float64{0.01}, 3)

		h := slices.Clone(h0)
		adjustForward(nil, x0, h)
		if !relativeEqual(h, h0, 0) {
			t.Fatal("unexpected adjust step")
		}

		h = slices.Clone(h0)
		side := make([]bool, 3)
		adjustCentral(nil, x0, h, side)
		switch {
		case !relativeEqual(h, h0, 0):
			t.Fatal("unexpected adjust step")
		case slices.Index(side, true) != -1:
			t.Fatal("unexpected side flag")
		}
	}

	// test_with_bound
	{
		x0 := []float64{0, 0.85, -0.85}
		h0 := []float64{0.1, 0.1, -0.1}
		bnd := testfunc.Bound{Lower: -1, Upper: 1}.Repeat(3)

		h := slices.Clone(h0)
		adjustForward(bnd, x0, h)
		if !relativeEqual(h, h0, 0) {
			t.Fatal("unexpected adjust step")
		}

		h = slices.Clone(h0)
		side := make([]bool, 3)
		adjustCentral(bnd, x0, h, side)
		switch {
		case !relativeEqual(h, []float64{0.1, 0.1, 0.1}, 0):
			t.Fatal("unexpected adjust step")
		case slices.Index(side, true) != -1:
			t.Fatal("unexpected side flag")
		}
	}

	// test_tight_bounds
	{
		x0 := []float64{0.0, 0.03}
		h0 := []float64{-0.1, -0.1}
		bnd := testfunc.Bound{Lower: -0.03, Upper: 0.05}.Repeat(2)

		h := slices.Clone(h0)
		adjustForward(bnd, x0, h)
		if !relativeEqual(h, []float64{0.05, -0.06}, 0) {
			t.Fatal("unexpected adjust step")
		}

		h = slices.Clone(h0)
		side := make([]bool, 2)
		adjustCentral(bnd, x0, h, side)
		switch {
		case !relativeEqual(h, []float64{0.03, -0.03}, 0):
			t.Fatal("unexpected adjust step")
		case !reflect.DeepEqual(side, []bool{false, true}):
			t.Fatal("unexpected side flag")
		}
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py (test_absolute_step_sign)
func TestComputeAbsStp(t *testing.T) {

	x0 := []float64{1e-5, 0, 1, 1e5}
	h := make([]float64, 4)

	// auto select relative step
	for method, relStep := range map[Method]float64{
		Forward: sqrtEps,
		Central: cubeEps,
	} {
		expected := []float64{relStep, relStep, relStep, relStep * math.Abs(x0[3])}

		absoluteStep(method, 0, 0, x0, h)
		if !relativeEqual(h, expected, 1e-12) {
			t.Fatal("unexpected abs step")
		}

		negX0 := make([]float64, len(x0))
		for i, v := range x0 {
			negX0[i] = -v
			expected[i] = math.Copysign(expected[i], -v)
		}

		absoluteStep(method, 0, 0, negX0, h)
		if !relativeEqual(h, expected, 1e-12) {
			t.Fatal("unexpected abs step")
		}
	}

	// user-specified relative step
	for _, relStep := range []float64{0.1, 1, 10, 100} {
		expected := []float64{relStep * x0[0], sqrtEps, relStep * x0[2], relStep * x0[3]}

		absoluteStep(Forward, 0, relStep, x0, h)
		if !relativeEqual(h, expected, 1e-12) {
			t.Fatal("unexpected abs step")
		}
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py (test_absolute_step_sign)
func TestAbsStpSign(t *testing.T) {

	obj := func(x []float64) float64 {
		return -math.Abs(x[0]+1) + math.Abs(x[1]+1)
	}

	x0 := []float64{-1, -1}
	grad := []float64{0, 0}

	tests := []struct {
		abs  float64
		bnd  []testfunc.Bound
		want []float64
	}{
		{1e-8, nil, []float64{-1, 1}},
		{-1e-8, nil, []float64{1, -1}},
		{1e-8, testfunc.Bound{Lower: math.Inf(-1), Upper: -1}.Repeat(2), []float64{1, -1}},
		{-1e-8, testfunc.Bound{Lower: -1, Upper: math.Inf(1)}.Repeat(2), []float64{-1, 1}},
	}

	for _, tt := range tests {
		g := Gradient{Method: Forward, AbsStep: tt.abs, Bounds: tt.bnd}
		if err := g.Diff(obj, grad, x0); err != nil {
			t.Fatal("abs sign failed", err)
		}
		if !relativeEqual(grad, tt.want, 1e-7) {
			t.Fatal("unexpected abs sign")
		}
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py
// (TestApproxDerivativesDense.test_vector_scalar)
func TestVecScalar(t *testing.T) {
	x0 := []float64{100.0, -0.5}
	want := gradSinLog(x0)

	tests := []struct {
		g   Gradient
		tol float64
	}{
		{Gradient{Method: Forward}, 1e-6},
		{Gradient{Method: Central}, 1e-7},
		{Gradient{Method: Forward, AbsStep: 1.49e-8}, 1e-6},
		{Gradient{Method: Central, AbsStep: 1.49e-8}, 1e-6},
	}

	for _, tt := range tests {
		grad := make([]float64, 2)
		if err := tt.g.Diff(objSinLog, grad, x0); err != nil {
			t.Fatal("approx vec-scalar failed", err)
		}
		if !relativeEqual(grad, want, tt.tol) {
			t.Fatal("unexpected approx vec-scalar result")
		}
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py
// (TestApproxDerivativesDense.test_with_bounds_2_point, test_with_bounds_3_point)
func TestBound(t *testing.T) {

	bnd := testfunc.Bound{Lower: -1, Upper: 1}.Repeat(2)
	obj := func(x []float64) float64 { return x[0] * math.Sin(x[1]) }
	grad := func(x []float64) []float64 { return []float64{math.Sin(x[1]), x[0] * math.Cos(x[1])} }

	g := Gradient{Bounds: bnd}
	if err := g.Diff(obj, make([]float64, 2), []float64{-2.0, 0.2}); err == nil {
		t.Fatal("unexpected approx bound status")
	}

	x0 := []float64{-1.0, 1.0}
	got := make([]float64, 2)
	for _, m := range []Method{Forward, Central} {
		g = Gradient{Method: m, Bounds: bnd}
		if err := g.Diff(obj, got, x0); err != nil {
			t.Fatal("approx bound failed", err)
		}
		if !relativeEqual(got, grad(x0), 1e-6) {
			t.Fatal("unexpected approx bound result")
		}
	}

	x0 = []float64{1.0, 2.0}
	for _, b := range [][]testfunc.Bound{
		testfunc.Bound{Lower: 1, Upper: math.Inf(1)}.Repeat(2),
		testfunc.Bound{Lower: math.Inf(-1), Upper: 2}.Repeat(2),
		testfunc.Bound{Lower: 1, Upper: 2}.Repeat(2),
	} {
		g = Gradient{Method: Central, Bounds: b}
		if err := g.Diff(obj, got, x0); err != nil {
			t.Fatal("approx bound failed", err)
		}
		if !relativeEqual(got, grad(x0), 1e-9) {
			t.Fatal("unexpected approx bound result")
		}
	}
}

// Case Sources : https://github.com/scipy/scipy/blob/main/scipy/optimize/tests/test__numdiff.py
// (TestApproxDerivativesDense.test_bound_switches)
func TestSwitchBnd(t *testing.T) {

	bnd := []testfunc.Bound{{Lower: -1e-8, Upper: 1e-8}}
	obj := func(x []float64) float64 {
		if math.Abs(x[0]) <= 1e-8 {
			return x[0]
		}
		return math.NaN()
	}

	for _, x0 := range []float64{0, 1e-8} {
		for _, m := range []Method{Forward, Central} {
			grad := []float64{0}
			g := Gradient{Method: m, Bounds: bnd, RelStep: 1e-6}
			if err := g.Diff(obj, grad, []float64{x0}); err != nil {
				t.Fatal("approx switch-bound failed", err)
			}
			if !relativeEqual(grad[0], 1, 1e-6) {
				t.Fatal("unexpected approx switch-bound result")
			}
		}
	}
}

func TestNeverLeavesBounds(t *testing.T) {
	reg := testfunc.Default()

	for _, name := range []string{"rosenbrock_constrained", "rosenbrock_constrained_disk", "mishra_bird_constrained", "bukin"} {
		b := reg.MustGet(name)
		bounds := b.Bounds()

		var outside int
		f := func(x []float64) float64 {
			if !b.Contains(x) {
				outside++
			}
			return b.Eval(x)
		}

		// every corner of the box
		for mask := range 1 << len(bounds) {
			x0 := make([]float64, len(bounds))
			for i, bnd := range bounds {
				if mask&(1<<i) == 0 {
					x0[i] = bnd.Lower
				} else {
					x0[i] = bnd.Upper
				}
			}
			for _, m := range []Method{Forward, Central} {
				g := Gradient{Method: m, Bounds: bounds}
				require.NoError(t, g.Diff(f, make([]float64, len(x0)), x0))
			}
		}
		require.Zero(t, outside, name)
	}
}

func TestGradAdapter(t *testing.T) {
	reg := testfunc.Default()

	sphere := reg.MustGet("sphere")
	g := Gradient{Method: Central, Bounds: sphere.Bounds()}
	grad := make([]float64, 2)
	g.Grad(sphere.Eval)(grad, []float64{1, -2})
	require.InDeltaSlice(t, []float64{2, -4}, grad, 1e-8)

	// outside points are clamped onto the box first
	g.Grad(sphere.Eval)(grad, []float64{10, 0})
	require.InDelta(t, 2*5.12, grad[0], 1e-6)

	booth := reg.MustGet("booth")
	g = Gradient{Method: Forward}
	x := []float64{0.5, -1}
	g.Grad(booth.Eval)(grad, x)
	want := []float64{
		2*(x[0]+2*x[1]-7) + 4*(2*x[0]+x[1]-5),
		4*(x[0]+2*x[1]-7) + 2*(2*x[0]+x[1]-5),
	}
	require.InDeltaSlice(t, want, grad, 1e-5)
	require.Equal(t, []float64{0.5, -1}, x)

	require.Panics(t, func() { g.Grad(booth.Eval)(make([]float64, 3), x) })
}

func TestPinnedBound(t *testing.T) {
	sphere := testfunc.Default().MustGet("sphere")
	bounds := []testfunc.Bound{{Lower: 2, Upper: 2}, {Lower: -5.12, Upper: 5.12}}
	x0 := []float64{2, 1}

	for _, method := range []Method{Forward, Central} {
		g := Gradient{Method: method, Bounds: bounds}
		grad := make([]float64, 2)
		require.NoError(t, g.Diff(sphere.Eval, grad, x0))
		require.Zero(t, grad[0])
		require.InDelta(t, 2, grad[1], 1e-6)
		require.Equal(t, []float64{2, 1}, x0)
	}
}

func relativeEqual[T float64 | []float64](a, b T, tol float64) bool {
	equalWithinRel := func(a, b float64) bool {
		if a == b {
			return true
		}
		delta := math.Abs(a - b)
		return delta/math.Max(math.Abs(a), math.Abs(b)) <= tol
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float64:
		return equalWithinRel(any(a).(float64), any(b).(float64))
	case reflect.Slice:
		a, b := any(a).([]float64), any(b).([]float64)
		if len(a) != len(b) {
			return false
		}
		for i, a := range a {
			if !equalWithinRel(a, b[i]) {
				return false
			}
		}
		return true
	default:
		panic("unknown type")
	}
}
