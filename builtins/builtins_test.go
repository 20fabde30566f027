package builtins

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"achronyme/types"
)

func TestTranscendentalsScalar(t *testing.T) {
	r := NewRegistry()
	sin, ok := r.Lookup("sin")
	if !ok {
		t.Fatal("sin not registered")
	}
	res := sin([]types.Value{types.NewScalar(0)})
	assert.True(t, res.IsNormal())
	assert.InDelta(t, 0.0, res.Val.(types.Scalar).Val, 1e-12)
}

func TestTranscendentalsVector(t *testing.T) {
	r := NewRegistry()
	exp, _ := r.Lookup("exp")
	res := exp([]types.Value{types.NewVector([]float64{0, 1})})
	assert.True(t, res.IsNormal())
	v := res.Val.(types.Vector)
	assert.InDelta(t, 1.0, v.Data[0], 1e-12)
	assert.InDelta(t, math.E, v.Data[1], 1e-12)
}

func TestSqrtNegativeScalarIsNaN(t *testing.T) {
	r := NewRegistry()
	sqrt, _ := r.Lookup("sqrt")
	res := sqrt([]types.Value{types.NewScalar(-4)})
	assert.True(t, res.IsNormal())
	assert.True(t, math.IsNaN(res.Val.(types.Scalar).Val))
}

func TestAbsComplexIsMagnitude(t *testing.T) {
	r := NewRegistry()
	abs, _ := r.Lookup("abs")
	res := abs([]types.Value{types.NewComplex(3, 4)})
	assert.True(t, res.IsNormal())
	assert.InDelta(t, 5.0, res.Val.(types.Scalar).Val, 1e-12)
}

func TestStatisticsReductions(t *testing.T) {
	r := NewRegistry()
	v := types.NewVector([]float64{1, 2, 3, 4, 5})

	sum, _ := r.Lookup("sum")
	assert.InDelta(t, 15.0, sum([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)

	mean, _ := r.Lookup("mean")
	assert.InDelta(t, 3.0, mean([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)

	min, _ := r.Lookup("min")
	assert.InDelta(t, 1.0, min([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)

	max, _ := r.Lookup("max")
	assert.InDelta(t, 5.0, max([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)

	norm, _ := r.Lookup("norm")
	assert.InDelta(t, math.Sqrt(55), norm([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)

	normL1, _ := r.Lookup("norm_l1")
	assert.InDelta(t, 15.0, normL1([]types.Value{v}).Val.(types.Scalar).Val, 1e-12)
}

func TestStdDefaultAndDdof(t *testing.T) {
	r := NewRegistry()
	std, _ := r.Lookup("std")
	v := types.NewVector([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	pop := std([]types.Value{v})
	assert.True(t, pop.IsNormal())
	assert.InDelta(t, 2.0, pop.Val.(types.Scalar).Val, 1e-9)

	sample := std([]types.Value{v, types.NewScalar(1)})
	assert.True(t, sample.IsNormal())
	assert.Greater(t, sample.Val.(types.Scalar).Val, pop.Val.(types.Scalar).Val)
}

func TestStdEmptyVectorIsShapeError(t *testing.T) {
	r := NewRegistry()
	std, _ := r.Lookup("std")
	res := std([]types.Value{types.NewVector(nil)})
	assert.True(t, res.IsError())
	assert.Equal(t, types.ErrShape, res.Err)
}

func TestDotProduct(t *testing.T) {
	r := NewRegistry()
	dot, _ := r.Lookup("dot")
	a := types.NewVector([]float64{1, 2, 3})
	b := types.NewVector([]float64{4, 5, 6})
	res := dot([]types.Value{a, b})
	assert.True(t, res.IsNormal())
	assert.InDelta(t, 32.0, res.Val.(types.Scalar).Val, 1e-12)
}

func TestDotShapeMismatch(t *testing.T) {
	r := NewRegistry()
	dot, _ := r.Lookup("dot")
	res := dot([]types.Value{types.NewVector([]float64{1, 2}), types.NewVector([]float64{1, 2, 3})})
	assert.True(t, res.IsError())
	assert.Equal(t, types.ErrShape, res.Err)
}

func TestWindowFunctions(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want []float64
	}{
		{"hann", 1, []float64{1}},
		{"hamming", 1, []float64{1}},
		{"blackman", 1, []float64{1}},
	}
	r := NewRegistry()
	for _, tt := range tests {
		fn, ok := r.Lookup(tt.name)
		if !ok {
			t.Fatalf("%s not registered", tt.name)
		}
		res := fn([]types.Value{types.NewScalar(tt.n)})
		assert.True(t, res.IsNormal())
		v := res.Val.(types.Vector)
		assert.Equal(t, len(tt.want), len(v.Data))
		for i := range tt.want {
			assert.InDelta(t, tt.want[i], v.Data[i], 1e-12)
		}
	}
}

func TestHannWindowEndpointsAreZero(t *testing.T) {
	r := NewRegistry()
	hann, _ := r.Lookup("hann")
	res := hann([]types.Value{types.NewScalar(8)})
	v := res.Val.(types.Vector)
	assert.InDelta(t, 0.0, v.Data[0], 1e-12)
	assert.InDelta(t, 0.0, v.Data[len(v.Data)-1], 1e-12)
}

func TestArityErrors(t *testing.T) {
	r := NewRegistry()
	sin, _ := r.Lookup("sin")
	res := sin([]types.Value{types.NewScalar(0), types.NewScalar(1)})
	assert.True(t, res.IsError())
	assert.Equal(t, types.ErrArity, res.Err)
}
