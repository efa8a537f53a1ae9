package routekit

// Pair is the combined output of And: both operands' outputs in declaration
// order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the flat combined output of Join3.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is the flat combined output of Join4.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Either is the tagged output of Or: exactly one branch's value, discovered
// at runtime.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func newLeft[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func newRight[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Left returns the left branch's value and whether the left branch matched.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right branch's value and whether the right branch
// matched.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// IsRight reports whether the right branch produced this value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}
