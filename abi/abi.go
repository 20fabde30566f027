// Package abi implements the flat, C-style external interface: the
// fast-path entry points a host binds directly, operating on arena
// handles instead of re-parsing source text on every call. Everything
// here is pure Go — turning these methods into an actual cgo/WASM
// export table is the binding layer's job and is explicitly out of
// scope.
//
// Every entry point follows the same three-step contract: validate the
// handle(s) and their variant, run the kernel, allocate a result slot.
// On failure nothing is allocated and nothing already allocated is
// touched — the arena is never partially mutated by a failed call.
package abi

import (
	"achronyme/arena"
	"achronyme/config"
	"achronyme/eval"
	"achronyme/trace"
	"achronyme/types"
)

// Engine bundles the handle arena with the evaluator that backs eval()
// and the name-to-handle bindings a host installs with
// BindVariableToHandle. One Engine corresponds to one process image's
// worth of engine state — the arena, root environment, and statistics
// described as "process-wide" in the concurrency model.
type Engine struct {
	Arena     *arena.Arena
	Evaluator *eval.Evaluator
	Limits    *config.Limits
}

// NewEngine constructs an Engine with a fresh arena and evaluator. A nil
// limits argument falls back to config.Default().
func NewEngine(limits *config.Limits) *Engine {
	if limits == nil {
		limits = config.Default()
	}
	return &Engine{
		Arena:     arena.New(limits),
		Evaluator: eval.NewEvaluatorWithLimits(limits),
		Limits:    limits,
	}
}

// Eval is the slow-path entry point: it parses and evaluates src
// against the engine's root environment and returns the result
// stringified, or an error payload. This is the only entry point that
// touches source text; every other method in this package is a
// fast-path handle operation.
func (e *Engine) Eval(src string) (value string, errCode types.ErrorCode) {
	trace.Eval(src)
	e.Arena.RecordSlowPath()
	res := e.Evaluator.EvalSource(src, e.Evaluator.NewContext())
	if res.IsError() {
		trace.Error("eval", res.Err.Message())
		return "", res.Err
	}
	return types.CoerceBoolean(res.Val).String(), types.ErrNone
}

// Reset clears the arena (every slot, binding, and counter) and installs
// a fresh root environment, so a stale eval() binding cannot outlive the
// handles it referenced.
func (e *Engine) Reset() {
	e.Arena.Reset()
	e.Evaluator.Root = types.NewEnvironment()
}

// ReleaseHandle frees h. Idempotent on an already-freed handle, per the
// lifecycle contract.
func (e *Engine) ReleaseHandle(h arena.Handle) {
	e.Arena.Release(h)
}

// BindVariableToHandle installs name -> h in the root environment so
// that a later eval() call can reference h by identifier. It validates
// that h is currently occupied; binding a freed or out-of-range handle
// reports InvalidHandle and installs nothing.
func (e *Engine) BindVariableToHandle(name string, h arena.Handle) types.ErrorCode {
	v, ok := e.Arena.Get(h)
	if !ok {
		return types.ErrInvalidHandle
	}
	e.Arena.Bind(name, h)
	e.Evaluator.Root.Set(name, v)
	return types.ErrNone
}

// alloc stores v and records the call as a fast-path operation,
// emitting a trace record tagged with op and the input handles that
// produced it.
func (e *Engine) alloc(op string, inputs []arena.Handle, v types.Value) arena.Handle {
	h := e.Arena.Alloc(v)
	e.Arena.RecordFastPath()
	handleNums := make([]uint32, len(inputs))
	for i, in := range inputs {
		handleNums[i] = uint32(in)
	}
	trace.FastPath(op, handleNums, uint32(h))
	return h
}

func (e *Engine) fail(op string, code types.ErrorCode) (arena.Handle, types.ErrorCode) {
	trace.Error(op, code.Message())
	return 0, code
}

// get validates h is occupied and returns its value, or InvalidHandle.
func (e *Engine) get(h arena.Handle) (types.Value, types.ErrorCode) {
	v, ok := e.Arena.Get(h)
	if !ok {
		return nil, types.ErrInvalidHandle
	}
	return v, types.ErrNone
}

func (e *Engine) getVector(h arena.Handle) (types.Vector, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return types.Vector{}, code
	}
	vec, ok := v.(types.Vector)
	if !ok {
		return types.Vector{}, types.ErrType
	}
	return vec, types.ErrNone
}

func (e *Engine) getMatrix(h arena.Handle) (types.Matrix, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return types.Matrix{}, code
	}
	m, ok := v.(types.Matrix)
	if !ok {
		return types.Matrix{}, types.ErrType
	}
	return m, types.ErrNone
}

// CreateVector stores a fresh vector built from buf.
func (e *Engine) CreateVector(buf []float64) arena.Handle {
	data := make([]float64, len(buf))
	copy(data, buf)
	return e.alloc("create_vector", nil, types.NewVector(data))
}

// CreateVectorFromBuffer stores a vector whose backing data has already
// been decoded from the host's raw pointer+length into data — the
// pointer-to-slice decoding itself is a binding-layer concern (the host
// owns the memory layout of its linear address space), not something
// this pure-Go core can perform without cgo/unsafe machinery outside
// this package's scope.
func (e *Engine) CreateVectorFromBuffer(data []float64) arena.Handle {
	return e.CreateVector(data)
}

// CreateMatrix stores a fresh rows x cols matrix built from buf, which
// must have exactly rows*cols elements.
func (e *Engine) CreateMatrix(buf []float64, rows, cols int) (arena.Handle, types.ErrorCode) {
	if len(buf) != rows*cols {
		return e.fail("create_matrix", types.ErrShape)
	}
	data := make([]float64, len(buf))
	copy(data, buf)
	return e.alloc("create_matrix", nil, types.NewMatrix(rows, cols, data)), types.ErrNone
}

// GetVector returns a copy of h's backing data.
func (e *Engine) GetVector(h arena.Handle) ([]float64, types.ErrorCode) {
	v, code := e.getVector(h)
	if code != types.ErrNone {
		return nil, code
	}
	return v.Clone().Data, types.ErrNone
}

// GetMatrix returns h's data as one []float64 row per outer element, per
// the "opaque 2-D structure (one row per element of outer vector)"
// contract in the external-interface table.
func (e *Engine) GetMatrix(h arena.Handle) ([][]float64, types.ErrorCode) {
	m, code := e.getMatrix(h)
	if code != types.ErrNone {
		return nil, code
	}
	rows := make([][]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		rows[r] = m.Row(r)
	}
	return rows, types.ErrNone
}

// Linspace stores linspace(a, b, n) as a new vector handle. The
// underlying builtin never fails on well-formed scalar arguments (n<=0
// yields an empty vector rather than an error), so there is no error
// return here.
func (e *Engine) Linspace(a, b float64, n int) arena.Handle {
	linspace, _ := e.Evaluator.Builtins.Lookup("linspace")
	res := linspace([]types.Value{types.NewScalar(a), types.NewScalar(b), types.NewScalar(float64(n))})
	return e.alloc("linspace", nil, res.Val)
}

// Identity stores the n x n identity matrix as a new handle.
func (e *Engine) Identity(n int) arena.Handle {
	return e.alloc("identity", nil, types.NewIdentityMatrix(n))
}

// callBuiltin validates that inputHandles all resolve, looks up name in
// the shared builtins registry, and on success allocates the result
// under a handle tagged with the tracing name op. This is the common
// shape behind every registry-backed fast-path entry point below: the
// registry is the single implementation of the kernel, exercised by
// both eval() call syntax and this handle-based path.
func (e *Engine) callBuiltin(op, name string, inputHandles []arena.Handle) (arena.Handle, types.ErrorCode) {
	args := make([]types.Value, len(inputHandles))
	for i, h := range inputHandles {
		v, code := e.get(h)
		if code != types.ErrNone {
			return e.fail(op, code)
		}
		args[i] = v
	}
	fn, ok := e.Evaluator.Builtins.Lookup(name)
	if !ok {
		return e.fail(op, types.ErrType)
	}
	res := fn(args)
	if res.IsError() {
		return e.fail(op, res.Err)
	}
	return e.alloc(op, inputHandles, res.Val), types.ErrNone
}

// callBuiltinScalar is callBuiltin for the reductions that report a raw
// f64 instead of a new handle (sum, mean, min, max, norm, norm_l1, det).
func (e *Engine) callBuiltinScalar(op, name string, h arena.Handle) (float64, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return 0, code
	}
	fn, _ := e.Evaluator.Builtins.Lookup(name)
	res := fn([]types.Value{v})
	if res.IsError() {
		trace.Error(op, res.Err.Message())
		return 0, res.Err
	}
	e.Arena.RecordFastPath()
	return res.Val.(types.Scalar).Val, types.ErrNone
}

// callBuiltinBool is callBuiltin for the matrix predicates
// (is_symmetric, is_positive_definite).
func (e *Engine) callBuiltinBool(op, name string, h arena.Handle, extra ...types.Value) (bool, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return false, code
	}
	fn, _ := e.Evaluator.Builtins.Lookup(name)
	res := fn(append([]types.Value{v}, extra...))
	if res.IsError() {
		trace.Error(op, res.Err.Message())
		return false, res.Err
	}
	e.Arena.RecordFastPath()
	return res.Val.(types.Boolean).Val, types.ErrNone
}

// Math{Sin,Cos,Tan,Exp,Ln,Sqrt,Abs} apply the corresponding
// transcendental element-wise (scalar or vector), and Abs additionally
// accepts Complex, returning its magnitude.
func (e *Engine) MathSin(h arena.Handle) (arena.Handle, types.ErrorCode)  { return e.callBuiltin("sin", "sin", []arena.Handle{h}) }
func (e *Engine) MathCos(h arena.Handle) (arena.Handle, types.ErrorCode)  { return e.callBuiltin("cos", "cos", []arena.Handle{h}) }
func (e *Engine) MathTan(h arena.Handle) (arena.Handle, types.ErrorCode)  { return e.callBuiltin("tan", "tan", []arena.Handle{h}) }
func (e *Engine) MathExp(h arena.Handle) (arena.Handle, types.ErrorCode)  { return e.callBuiltin("exp", "exp", []arena.Handle{h}) }
func (e *Engine) MathLn(h arena.Handle) (arena.Handle, types.ErrorCode)   { return e.callBuiltin("ln", "ln", []arena.Handle{h}) }
func (e *Engine) MathSqrt(h arena.Handle) (arena.Handle, types.ErrorCode) { return e.callBuiltin("sqrt", "sqrt", []arena.Handle{h}) }
func (e *Engine) MathAbs(h arena.Handle) (arena.Handle, types.ErrorCode)  { return e.callBuiltin("abs", "abs", []arena.Handle{h}) }

// VAdd, VSub, VMul, VDiv are the element-wise kernels operating on two
// handles (vector/vector, or vector/scalar broadcast); see
// builtins.registerElementwise for the shared implementation.
func (e *Engine) VAdd(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("vadd", "vadd", []arena.Handle{h1, h2})
}
func (e *Engine) VSub(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("vsub", "vsub", []arena.Handle{h1, h2})
}
func (e *Engine) VMul(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("vmul", "vmul", []arena.Handle{h1, h2})
}
func (e *Engine) VDiv(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("vdiv", "vdiv", []arena.Handle{h1, h2})
}

// Dot reports the inner product of two equal-length vectors as a raw
// scalar, per the "handle or scalar" output column for this entry.
func (e *Engine) Dot(h1, h2 arena.Handle) (float64, types.ErrorCode) {
	v1, code := e.get(h1)
	if code != types.ErrNone {
		return 0, code
	}
	v2, code := e.get(h2)
	if code != types.ErrNone {
		return 0, code
	}
	fn, _ := e.Evaluator.Builtins.Lookup("dot")
	res := fn([]types.Value{v1, v2})
	if res.IsError() {
		trace.Error("dot", res.Err.Message())
		return 0, res.Err
	}
	e.Arena.RecordFastPath()
	return res.Val.(types.Scalar).Val, types.ErrNone
}

// Norm, NormL1, Sum, Mean, Min, Max report f64 reductions over a
// vector handle.
func (e *Engine) Norm(h arena.Handle) (float64, types.ErrorCode)   { return e.callBuiltinScalar("norm", "norm", h) }
func (e *Engine) NormL1(h arena.Handle) (float64, types.ErrorCode) { return e.callBuiltinScalar("norm_l1", "norm_l1", h) }
func (e *Engine) Sum(h arena.Handle) (float64, types.ErrorCode)    { return e.callBuiltinScalar("sum", "sum", h) }
func (e *Engine) Mean(h arena.Handle) (float64, types.ErrorCode)   { return e.callBuiltinScalar("mean", "mean", h) }
func (e *Engine) Min(h arena.Handle) (float64, types.ErrorCode)    { return e.callBuiltinScalar("min", "min", h) }
func (e *Engine) Max(h arena.Handle) (float64, types.ErrorCode)    { return e.callBuiltinScalar("max", "max", h) }

// Std reports the standard deviation of a vector handle; ddof defaults
// to the engine's configured DefaultStatsDDOF unless overridden.
func (e *Engine) Std(h arena.Handle, ddof ...float64) (float64, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return 0, code
	}
	d := e.Limits.DefaultStatsDDOF
	if len(ddof) > 0 {
		d = ddof[0]
	}
	fn, _ := e.Evaluator.Builtins.Lookup("std")
	res := fn([]types.Value{v, types.NewScalar(d)})
	if res.IsError() {
		trace.Error("std", res.Err.Message())
		return 0, res.Err
	}
	e.Arena.RecordFastPath()
	return res.Val.(types.Scalar).Val, types.ErrNone
}

// DspFft, DspFftMag, Ifft are the FFT subsystem's handle-based entries.
func (e *Engine) DspFft(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("dspFft", "fft", []arena.Handle{h})
}
func (e *Engine) DspFftMag(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("dspFftMag", "fft_mag", []arena.Handle{h})
}
func (e *Engine) Ifft(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("ifft", "ifft", []arena.Handle{h})
}

// Conv and ConvFFT expose direct and FFT-based convolution.
func (e *Engine) Conv(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("conv", "conv", []arena.Handle{h1, h2})
}
func (e *Engine) ConvFFT(h1, h2 arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("conv_fft", "conv_fft", []arena.Handle{h1, h2})
}

// HanningWindow, HammingWindow, BlackmanWindow generate a length-n
// window as a new vector handle.
func (e *Engine) windowBuiltin(op, name string, n int) arena.Handle {
	fn, _ := e.Evaluator.Builtins.Lookup(name)
	res := fn([]types.Value{types.NewScalar(float64(n))})
	return e.alloc(op, nil, res.Val)
}

func (e *Engine) HanningWindow(n int) arena.Handle  { return e.windowBuiltin("hanningWindow", "hann", n) }
func (e *Engine) HammingWindow(n int) arena.Handle  { return e.windowBuiltin("hammingWindow", "hamming", n) }
func (e *Engine) BlackmanWindow(n int) arena.Handle { return e.windowBuiltin("blackmanWindow", "blackman", n) }

// LU, QR, SVD, EigenSymmetric, and PowerIteration are multi-output
// kernels; each stores its outputs as a single types.Tuple under one
// "compound handle". GetMatrix and GetVector report TypeMismatch for
// such a handle; once bound with BindVariableToHandle, eval() syntax
// indexes it with `result[0]`, `result[1]`, ...
func (e *Engine) LU(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("lu", "lu", []arena.Handle{h})
}
func (e *Engine) QR(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("qr", "qr", []arena.Handle{h})
}
func (e *Engine) SVD(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("svd", "svd", []arena.Handle{h})
}
func (e *Engine) Cholesky(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("cholesky", "cholesky", []arena.Handle{h})
}
func (e *Engine) Inverse(h arena.Handle) (arena.Handle, types.ErrorCode) {
	return e.callBuiltin("inverse", "inverse", []arena.Handle{h})
}

// Det reports the determinant as a raw scalar.
func (e *Engine) Det(h arena.Handle) (float64, types.ErrorCode) {
	return e.callBuiltinScalar("det", "det", h)
}

func (e *Engine) iterBuiltin(op, name string, h arena.Handle, maxIter int, tol float64) (arena.Handle, types.ErrorCode) {
	v, code := e.get(h)
	if code != types.ErrNone {
		return e.fail(op, code)
	}
	fn, _ := e.Evaluator.Builtins.Lookup(name)
	res := fn([]types.Value{v, types.NewScalar(float64(maxIter)), types.NewScalar(tol)})
	if res.IsError() {
		return e.fail(op, res.Err)
	}
	return e.alloc(op, []arena.Handle{h}, res.Val), types.ErrNone
}

// PowerIteration returns a compound handle wrapping (lambda, v).
func (e *Engine) PowerIteration(h arena.Handle, maxIter int, tol float64) (arena.Handle, types.ErrorCode) {
	return e.iterBuiltin("powerIteration", "power_iteration", h, maxIter, tol)
}

// QREigenvalues returns a plain vector handle of eigenvalues.
func (e *Engine) QREigenvalues(h arena.Handle, maxIter int, tol float64) (arena.Handle, types.ErrorCode) {
	return e.iterBuiltin("qrEigenvalues", "qr_eigenvalues", h, maxIter, tol)
}

// EigenSymmetric returns a compound handle wrapping (values, vectors).
func (e *Engine) EigenSymmetric(h arena.Handle, maxIter int, tol float64) (arena.Handle, types.ErrorCode) {
	return e.iterBuiltin("eigenSymmetric", "eigen_symmetric", h, maxIter, tol)
}

// IsSymmetric and IsPositiveDefinite are the matrix predicates.
func (e *Engine) IsSymmetric(h arena.Handle, tol float64) (bool, types.ErrorCode) {
	return e.callBuiltinBool("isSymmetric", "is_symmetric", h, types.NewScalar(tol))
}

func (e *Engine) IsPositiveDefinite(h arena.Handle) (bool, types.ErrorCode) {
	return e.callBuiltinBool("isPositiveDefinite", "is_positive_definite", h)
}
