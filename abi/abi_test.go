package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"achronyme/arena"
	"achronyme/types"
)

func TestEvalSeedScenarios(t *testing.T) {
	e := NewEngine(nil)

	out, code := e.Eval("2 + 3 * 4")
	assert.Equal(t, types.ErrNone, code)
	assert.Equal(t, "14", out)

	_, code = e.Eval("let sq = n => n ^ 2")
	assert.Equal(t, types.ErrNone, code)
	out, code = e.Eval("sq(5)")
	assert.Equal(t, types.ErrNone, code)
	assert.Equal(t, "25", out)

	out, code = e.Eval("reduce((a,b) => a+b, 0, [1,2,3,4,5])")
	assert.Equal(t, types.ErrNone, code)
	assert.Equal(t, "15", out)

	out, code = e.Eval("filter(n => n > 2, [1,2,3,4])")
	assert.Equal(t, types.ErrNone, code)
	assert.Equal(t, "[3, 4]", out)
}

func TestFastPathFFTMagSeedScenario(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{1, 0, 0, 0})
	mh, code := e.DspFftMag(h)
	assert.Equal(t, types.ErrNone, code)

	v, code := e.GetVector(mh)
	assert.Equal(t, types.ErrNone, code)
	for _, x := range v {
		assert.InDelta(t, 1.0, x, 1e-12)
	}
}

func TestFastPathConvSeedScenario(t *testing.T) {
	e := NewEngine(nil)
	a := e.CreateVector([]float64{1, 2, 3})
	b := e.CreateVector([]float64{1, 1})

	ch, code := e.Conv(a, b)
	assert.Equal(t, types.ErrNone, code)
	v, _ := e.GetVector(ch)
	assert.Equal(t, []float64{1, 3, 5, 3}, v)
}

func TestBindVariableToHandleThenEval(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{10, 20, 30})
	code := e.BindVariableToHandle("v", h)
	assert.Equal(t, types.ErrNone, code)

	out, code := e.Eval("sum(v)")
	assert.Equal(t, types.ErrNone, code)
	assert.Equal(t, "60", out)
}

func TestBindInvalidHandleFails(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{1})
	e.ReleaseHandle(h)

	code := e.BindVariableToHandle("v", h)
	assert.Equal(t, types.ErrInvalidHandle, code)
}

func TestInvalidHandleReported(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{1, 2, 3})
	e.ReleaseHandle(h)

	_, code := e.MathSin(h)
	assert.Equal(t, types.ErrInvalidHandle, code)
}

func TestTypeMismatchReported(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{1, 2, 3})
	_, code := e.Cholesky(h) // cholesky requires a Matrix
	assert.Equal(t, types.ErrType, code)
}

func TestVMulElementwiseNotDotProduct(t *testing.T) {
	e := NewEngine(nil)
	a := e.CreateVector([]float64{1, 2, 3})
	b := e.CreateVector([]float64{10, 20, 30})

	rh, code := e.VMul(a, b)
	assert.Equal(t, types.ErrNone, code)
	v, _ := e.GetVector(rh)
	assert.Equal(t, []float64{10, 40, 90}, v, "fast-path vmul must be element-wise, unlike eval()'s vector*vector dot product")
}

func TestVAddBroadcastScalar(t *testing.T) {
	e := NewEngine(nil)
	a := e.CreateVector([]float64{1, 2, 3})
	scalarAsVector := e.CreateVector([]float64{10})

	rh, code := e.VAdd(a, scalarAsVector)
	assert.Equal(t, types.ErrNone, code)
	v, _ := e.GetVector(rh)
	assert.Equal(t, []float64{11, 12, 13}, v)
}

func TestVAddShapeMismatch(t *testing.T) {
	e := NewEngine(nil)
	a := e.CreateVector([]float64{1, 2, 3})
	b := e.CreateVector([]float64{1, 2})

	_, code := e.VAdd(a, b)
	assert.Equal(t, types.ErrShape, code)
}

func TestResetClearsEverything(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{1, 2, 3})
	e.BindVariableToHandle("v", h)

	e.Reset()
	_, ok := e.Arena.Get(h)
	assert.False(t, ok)

	_, code := e.Eval("v")
	assert.Equal(t, types.ErrName, code)
}

// TestHandleAccountingAcrossFastPath is the handle-accounting testable
// property, driven through the abi layer rather than the bare arena.
func TestHandleAccountingAcrossFastPath(t *testing.T) {
	e := NewEngine(nil)
	var handles []arena.Handle
	for i := 0; i < 5; i++ {
		handles = append(handles, e.CreateVector([]float64{float64(i)}))
	}
	for _, h := range handles[:2] {
		e.ReleaseHandle(h)
	}
	assert.EqualValues(t, 3, e.Arena.Active())
}

func TestLinalgRoundTrip(t *testing.T) {
	e := NewEngine(nil)
	mh, code := e.CreateMatrix([]float64{4, 2, 2, 3}, 2, 2)
	assert.Equal(t, types.ErrNone, code)

	lh, code := e.LU(mh)
	assert.Equal(t, types.ErrNone, code)
	v, ok := e.Arena.Get(lh)
	assert.True(t, ok)
	tup, ok := v.(types.Tuple)
	assert.True(t, ok)
	assert.Len(t, tup.Elems, 3)
}

func TestInverseOfSingularMatrixFails(t *testing.T) {
	e := NewEngine(nil)
	mh, _ := e.CreateMatrix([]float64{1, 2, 2, 4}, 2, 2)
	_, code := e.Inverse(mh)
	assert.Equal(t, types.ErrSingularMatrix, code)
}

func TestDotIsScalarNotHandle(t *testing.T) {
	e := NewEngine(nil)
	a := e.CreateVector([]float64{1, 2, 3})
	b := e.CreateVector([]float64{4, 5, 6})
	got, code := e.Dot(a, b)
	assert.Equal(t, types.ErrNone, code)
	assert.InDelta(t, 32.0, got, 1e-12)
}

func TestStdDefaultDDOF(t *testing.T) {
	e := NewEngine(nil)
	h := e.CreateVector([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	got, code := e.Std(h)
	assert.Equal(t, types.ErrNone, code)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestWindowsLength(t *testing.T) {
	e := NewEngine(nil)
	h := e.HanningWindow(8)
	v, _ := e.GetVector(h)
	assert.Len(t, v, 8)
	assert.InDelta(t, 0.0, v[0], 1e-12)
}
