package eval

import (
	"achronyme/parser"
	"achronyme/trace"
	"achronyme/types"
)

// hofNames are resolved before environment lookup: they are evaluator
// built-ins, never user-shadowable identifiers.
var hofNames = map[string]func(e *Evaluator, args []types.Value, ctx *types.Context) types.Result{
	"map":     hofMap,
	"filter":  hofFilter,
	"reduce":  hofReduce,
	"pipe":    hofPipe,
	"compose": hofCompose,
}

func (e *Evaluator) evalCall(n *parser.CallExpr, env *types.Environment, ctx *types.Context) types.Result {
	args := make([]types.Value, len(n.Args))
	argStrings := make([]string, len(n.Args))
	for i, a := range n.Args {
		res := e.Eval(a, env, ctx)
		if res.IsError() {
			return res
		}
		v := types.CoerceBoolean(res.Val)
		args[i] = v
		argStrings[i] = v.String()
	}

	if ident, ok := n.Callee.(*parser.IdentifierExpr); ok {
		if hof, ok := hofNames[ident.Name]; ok {
			trace.Call(ident.Name, argStrings)
			return hof(e, args, ctx)
		}

		if v, ok := env.Get(ident.Name); ok {
			fn, ok := v.(*types.Function)
			if !ok {
				return types.Err(types.ErrType)
			}
			trace.Call(ident.Name, argStrings)
			return e.Apply(fn, args, ctx)
		}

		if builtin, ok := e.Builtins.Lookup(ident.Name); ok {
			trace.Call(ident.Name, argStrings)
			return builtin(args)
		}

		return types.Err(types.ErrName)
	}

	calleeRes := e.Eval(n.Callee, env, ctx)
	if calleeRes.IsError() {
		return calleeRes
	}
	fn, ok := calleeRes.Val.(*types.Function)
	if !ok {
		return types.Err(types.ErrType)
	}
	return e.Apply(fn, args, ctx)
}

// Apply invokes fn with args: a Native function is called directly,
// otherwise a child frame of fn.Captured is pushed, parameters are
// bound positionally, and the body is evaluated in that frame.
func (e *Evaluator) Apply(fn *types.Function, args []types.Value, ctx *types.Context) types.Result {
	if fn.Native != nil {
		if len(args) != len(fn.Params) {
			return types.Err(types.ErrArity)
		}
		return fn.Native(args)
	}

	if len(args) != len(fn.Params) {
		return types.Err(types.ErrArity)
	}

	frame := types.NewChildEnvironment(fn.Captured)
	for i, p := range fn.Params {
		frame.Set(p, args[i])
	}
	return e.Eval(fn.Body, frame, ctx)
}
