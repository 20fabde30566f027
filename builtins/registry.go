package builtins

import "achronyme/types"

// Func is a pure-value builtin: it never touches the environment or
// the evaluator, only the values it is handed. Higher-order builtins
// (map, filter, reduce, pipe, compose) need to call back into the
// evaluator to invoke a closure and live in the eval package instead.
type Func func(args []types.Value) types.Result

// Registry holds every name-resolvable pure builtin, shared by eval's
// call dispatch (by name) and by the abi package's fast-path entry points
// (by the same name, bypassing environment lookup entirely).
type Registry struct {
	funcs map[string]Func
}

// NewRegistry builds a Registry with every built-in kernel registered.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.registerTranscendentals()
	r.registerStatistics()
	r.registerWindows()
	r.registerFFT()
	r.registerLinalg()
	r.registerElementwise()
	return r
}

// Register installs fn under name, replacing any previous registration.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Lookup returns the builtin registered under name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}
