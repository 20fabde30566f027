package types

// Context carries the per-call recursion guard through every Eval
// invocation: a depth budget rather than a tick budget, since there are
// no loops or suspendable tasks in this language, only nested calls.
type Context struct {
	depthRemaining int
}

// NewContext creates a Context with the given maximum recursion depth.
func NewContext(maxDepth int) *Context {
	return &Context{depthRemaining: maxDepth}
}

// ConsumeDepth decrements the remaining recursion budget and reports
// whether evaluation may continue. Called once per Eval entry.
func (c *Context) ConsumeDepth() bool {
	c.depthRemaining--
	return c.depthRemaining > 0
}
