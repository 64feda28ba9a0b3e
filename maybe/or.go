package maybe

// Or holds exactly one of two values, a left value of type L or a right value of type R.
// Create values with Left or Right, the zero value holds neither and is not valid.
type Or[L any, R any] struct {
	left  Maybe[L]
	right Maybe[R]
}

func Left[L any, R any](v L) Or[L, R] {
	return Or[L, R]{left: WithValue(v)}
}

func Right[L any, R any](v R) Or[L, R] {
	return Or[L, R]{right: WithValue(v)}
}

func (o Or[L, R]) Left() Maybe[L] {
	return o.left
}

func (o Or[L, R]) Right() Maybe[R] {
	return o.right
}

func (o Or[L, R]) IsLeft() bool {
	return o.left.HasValue()
}

func (o Or[L, R]) IsRight() bool {
	return o.right.HasValue()
}

// IsValid reports whether o holds a value, false for the zero value.
func (o Or[L, R]) IsValid() bool {
	return o.IsLeft() || o.IsRight()
}

// Or3 holds exactly one of three values.
// Create values with First, Middle or Last, the zero value holds none and is not valid.
type Or3[A any, B any, C any] struct {
	first  Maybe[A]
	middle Maybe[B]
	last   Maybe[C]
}

func First[A any, B any, C any](v A) Or3[A, B, C] {
	return Or3[A, B, C]{first: WithValue(v)}
}

func Middle[A any, B any, C any](v B) Or3[A, B, C] {
	return Or3[A, B, C]{middle: WithValue(v)}
}

func Last[A any, B any, C any](v C) Or3[A, B, C] {
	return Or3[A, B, C]{last: WithValue(v)}
}

func (o Or3[A, B, C]) First() Maybe[A] {
	return o.first
}

func (o Or3[A, B, C]) Middle() Maybe[B] {
	return o.middle
}

func (o Or3[A, B, C]) Last() Maybe[C] {
	return o.last
}

func (o Or3[A, B, C]) IsFirst() bool {
	return o.first.HasValue()
}

func (o Or3[A, B, C]) IsMiddle() bool {
	return o.middle.HasValue()
}

func (o Or3[A, B, C]) IsLast() bool {
	return o.last.HasValue()
}

// IsValid reports whether o holds a value, false for the zero value.
func (o Or3[A, B, C]) IsValid() bool {
	return o.IsFirst() || o.IsMiddle() || o.IsLast()
}
