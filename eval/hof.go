package eval

import "achronyme/types"

// flattenOperand reduces a map/filter/reduce operand to a flat slice of
// per-element Values, along with the matrix shape if it had one (rows
// and cols are 0 for a plain vector). Only Vector, ComplexVector, and
// Matrix participate in the higher-order builtins; any other variant is
// a TypeMismatch.
func flattenOperand(v types.Value) (elems []types.Value, rows, cols int, errCode types.ErrorCode) {
	switch t := v.(type) {
	case types.Vector:
		elems = make([]types.Value, len(t.Data))
		for i, x := range t.Data {
			elems[i] = types.Scalar{Val: x}
		}
		return elems, 0, 0, types.ErrNone
	case types.ComplexVector:
		elems = make([]types.Value, len(t.Data))
		for i, x := range t.Data {
			elems[i] = types.FromComplex128(x)
		}
		return elems, 0, 0, types.ErrNone
	case types.Matrix:
		elems = make([]types.Value, len(t.Data))
		for i, x := range t.Data {
			elems[i] = types.Scalar{Val: x}
		}
		return elems, t.Rows, t.Cols, types.ErrNone
	default:
		return nil, 0, 0, types.ErrType
	}
}

// hofMap applies f(v1[i], ..., vk[i]) across index i in [0, n) where
// n = min(len(vj)). The result is a vector unless any input was a
// matrix, in which case the result takes that matrix's shape.
func hofMap(e *Evaluator, args []types.Value, ctx *types.Context) types.Result {
	if len(args) < 2 {
		return types.Err(types.ErrArity)
	}
	fn, ok := args[0].(*types.Function)
	if !ok {
		return types.Err(types.ErrType)
	}
	inputs := args[1:]
	if fn.Arity() != len(inputs) {
		return types.Err(types.ErrArity)
	}

	flattened := make([][]types.Value, len(inputs))
	n := -1
	shapeRows, shapeCols := 0, 0
	for i, in := range inputs {
		elems, rows, cols, errCode := flattenOperand(in)
		if errCode != types.ErrNone {
			return types.Err(errCode)
		}
		flattened[i] = elems
		if n == -1 || len(elems) < n {
			n = len(elems)
		}
		if rows > 0 {
			shapeRows, shapeCols = rows, cols
		}
	}

	results := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		callArgs := make([]types.Value, len(inputs))
		for i := range inputs {
			callArgs[i] = flattened[i][idx]
		}
		res := e.Apply(fn, callArgs, ctx)
		if res.IsError() {
			return res
		}
		s, ok := types.CoerceBoolean(res.Val).(types.Scalar)
		if !ok {
			return types.Err(types.ErrType)
		}
		results[idx] = s.Val
	}

	if shapeRows > 0 {
		return types.Ok(types.NewMatrix(shapeRows, shapeCols, results))
	}
	return types.Ok(types.NewVector(results))
}

// hofFilter returns the elements of v for which pred(x) is truthy.
func hofFilter(e *Evaluator, args []types.Value, ctx *types.Context) types.Result {
	if len(args) != 2 {
		return types.Err(types.ErrArity)
	}
	pred, ok := args[0].(*types.Function)
	if !ok || pred.Arity() != 1 {
		return types.Err(types.ErrType)
	}
	elems, _, _, errCode := flattenOperand(args[1])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}

	kept := make([]float64, 0, len(elems))
	for _, el := range elems {
		res := e.Apply(pred, []types.Value{el}, ctx)
		if res.IsError() {
			return res
		}
		if res.Val.Truthy() {
			s, ok := el.(types.Scalar)
			if !ok {
				return types.Err(types.ErrType)
			}
			kept = append(kept, s.Val)
		}
	}
	return types.Ok(types.NewVector(kept))
}

// hofReduce left-folds f over v starting from init; an empty vector
// returns init unchanged.
func hofReduce(e *Evaluator, args []types.Value, ctx *types.Context) types.Result {
	if len(args) != 3 {
		return types.Err(types.ErrArity)
	}
	fn, ok := args[0].(*types.Function)
	if !ok || fn.Arity() != 2 {
		return types.Err(types.ErrType)
	}
	acc := args[1]
	elems, _, _, errCode := flattenOperand(args[2])
	if errCode != types.ErrNone {
		return types.Err(errCode)
	}

	for _, el := range elems {
		res := e.Apply(fn, []types.Value{acc, el}, ctx)
		if res.IsError() {
			return res
		}
		acc = types.CoerceBoolean(res.Val)
	}
	return types.Ok(acc)
}

// hofPipe threads x through f1, f2, ..., fk in order: fk(...f2(f1(x))).
func hofPipe(e *Evaluator, args []types.Value, ctx *types.Context) types.Result {
	if len(args) < 1 {
		return types.Err(types.ErrArity)
	}
	acc := args[0]
	for _, fv := range args[1:] {
		fn, ok := fv.(*types.Function)
		if !ok || fn.Arity() != 1 {
			return types.Err(types.ErrType)
		}
		res := e.Apply(fn, []types.Value{acc}, ctx)
		if res.IsError() {
			return res
		}
		acc = types.CoerceBoolean(res.Val)
	}
	return types.Ok(acc)
}

// hofCompose returns a Function computing f1(f2(...fk(x))): a native
// closure over the evaluator and the function chain, since composition
// produces a callable value rather than an immediate result.
func hofCompose(e *Evaluator, args []types.Value, ctx *types.Context) types.Result {
	if len(args) < 1 {
		return types.Err(types.ErrArity)
	}
	fns := make([]*types.Function, len(args))
	for i, fv := range args {
		fn, ok := fv.(*types.Function)
		if !ok || fn.Arity() != 1 {
			return types.Err(types.ErrType)
		}
		fns[i] = fn
	}

	native := func(callArgs []types.Value) types.Result {
		acc := callArgs[0]
		for i := len(fns) - 1; i >= 0; i-- {
			res := e.Apply(fns[i], []types.Value{acc}, ctx)
			if res.IsError() {
				return res
			}
			acc = types.CoerceBoolean(res.Val)
		}
		return types.Ok(acc)
	}
	return types.Ok(types.NewNativeFunction(1, native))
}
