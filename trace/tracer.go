package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tracer provides execution tracing for debugging the evaluator and
// fast-path dispatcher. It never affects return values — calling code
// must behave identically whether or not a Tracer is installed.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance.
var globalTracer *Tracer

// Init installs the global tracer. filters are glob patterns matched
// against operation names such as "eval.call" or "fastpath.fft"; an
// empty filter list traces everything.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled reports whether the global tracer is active.
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

func (t *Tracer) matchesFilter(op string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, op); matched {
			return true
		}
	}
	return false
}

// Eval logs a slow-path eval() call with its source text.
func (t *Tracer) Eval(src string) {
	if !t.enabled || !t.matchesFilter("eval") {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] eval %q\n", truncate(src))
}

// Call logs an evaluator function invocation.
func (t *Tracer) Call(name string, args []string) {
	op := "eval.call"
	if !t.enabled || !t.matchesFilter(op) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] call %s(%s)\n", name, strings.Join(args, ", "))
}

// FastPath logs a handle-based fast-path operation.
func (t *Tracer) FastPath(op string, handles []uint32, resultHandle uint32) {
	full := "fastpath." + op
	if !t.enabled || !t.matchesFilter(full) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] fastpath %s(%v) => #%d\n", op, handles, resultHandle)
}

// Error logs a failed operation.
func (t *Tracer) Error(op string, message string) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] error %s: %s\n", op, message)
}

func truncate(s string) string {
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}

// Global convenience functions mirror the Tracer methods, no-op when
// the global tracer has not been installed.

func Eval(src string) {
	if globalTracer != nil {
		globalTracer.Eval(src)
	}
}

func Call(name string, args []string) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

func FastPath(op string, handles []uint32, resultHandle uint32) {
	if globalTracer != nil {
		globalTracer.FastPath(op, handles, resultHandle)
	}
}

func Error(op string, message string) {
	if globalTracer != nil {
		globalTracer.Error(op, message)
	}
}
