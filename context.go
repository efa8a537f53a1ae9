package routekit

import "context"

// Cursor marks a position within the request's path segment sequence.
// It is a cheap value type: alternation combinators snapshot it before trying
// a branch and restore the snapshot when the branch declines. The offset only
// ever moves forward within a single matching attempt.
type Cursor struct {
	segments []string
	pos      int
}

// Pos returns the number of segments consumed so far.
func (c Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unconsumed segments.
func (c Cursor) Remaining() int {
	return len(c.segments) - c.pos
}

// ApplyContext threads the per-request matching state through a chain of
// endpoint Apply calls. It is owned by the driver for the duration of one
// request and borrowed by every nested Apply.
type ApplyContext struct {
	input  *Input
	cursor Cursor
}

// NewApplyContext creates the matching context for one incoming request.
func NewApplyContext(in *Input) *ApplyContext {
	return &ApplyContext{
		input:  in,
		cursor: Cursor{segments: in.Segments()},
	}
}

// Input returns the request metadata.
func (c *ApplyContext) Input() *Input {
	return c.input
}

// Method returns the HTTP method of the request.
func (c *ApplyContext) Method() string {
	return c.input.Method()
}

// Next consumes and returns the next unconsumed path segment.
// Returns false if no segment remains.
func (c *ApplyContext) Next() (string, bool) {
	if c.cursor.pos >= len(c.cursor.segments) {
		return "", false
	}
	s := c.cursor.segments[c.cursor.pos]
	c.cursor.pos++
	return s, true
}

// TakeRemaining consumes and returns all unconsumed path segments,
// leaving the cursor at end-of-segments.
func (c *ApplyContext) TakeRemaining() []string {
	rest := c.cursor.segments[c.cursor.pos:]
	c.cursor.pos = len(c.cursor.segments)
	return rest
}

// AtEnd reports whether every path segment has been consumed.
func (c *ApplyContext) AtEnd() bool {
	return c.cursor.pos >= len(c.cursor.segments)
}

// Cursor returns a snapshot of the current cursor position.
func (c *ApplyContext) Cursor() Cursor {
	return c.cursor
}

// SetCursor restores a previously taken snapshot. Alternation uses this to
// backtrack between branches; rewinding inside a single branch is not
// supported.
func (c *ApplyContext) SetCursor(cur Cursor) {
	c.cursor = cur
}

// TaskContext carries the state available while polling a task: the request
// input (for deferred body consumption) and the request-scoped context.
type TaskContext struct {
	ctx   context.Context
	input *Input
}

// NewTaskContext creates the polling context for a matched request.
func NewTaskContext(ctx context.Context, in *Input) *TaskContext {
	return &TaskContext{ctx: ctx, input: in}
}

// Context returns the request-scoped context.
func (tc *TaskContext) Context() context.Context {
	return tc.ctx
}

// Input returns the request metadata and body handle.
func (tc *TaskContext) Input() *Input {
	return tc.input
}
