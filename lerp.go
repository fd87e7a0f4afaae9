// Package lerp provides linear interpolation and extrapolation primitives.
//
// Types implement interpolation with a value-receiver method:
//
//	func (p Point) Lerp(other Point, t float64) Point
//
// At t == 0 the result equals the receiver, at t == 1 it equals other, and every
// other t mixes the two proportionally. t is unbounded, so extrapolation works.
//
// Struct types do not need to write that method by hand. Annotate them and run
// lerpgen (see cmd/lerpgen), which interpolates each field independently:
//
//	//go:generate go run github.com/teranos/lerp/cmd/lerpgen --type Particle
//
//	type Particle struct {
//		Pos   Vec2    // Vec2 has its own Lerp(Vec2, float64) Vec2
//		Mass  float32 `lerp:"skip"`
//		Alpha float64
//	}
package lerp

import "golang.org/x/exp/constraints"

// Float is the set of floating-point types an interpolation parameter may have.
type Float interface {
	constraints.Float
}

// Interpolator is implemented by types that can interpolate towards another
// value of the same type using a parameter of type F.
type Interpolator[T any, F Float] interface {
	Lerp(other T, t F) T
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp[F Float](a, b, t F) F {
	return a*(1-t) + b*t
}

// Bounded is Lerp with t clamped to [0, 1].
func Bounded[F Float](a, b, t F) F {
	return Lerp(a, b, Clamp01(t))
}

// Clamp01 restricts t to the inclusive range [0, 1].
func Clamp01[F Float](t F) F {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// LerpBounded calls a.Lerp(b, t) with t clamped to [0, 1].
func LerpBounded[T Interpolator[T, F], F Float](a, b T, t F) T {
	return a.Lerp(b, Clamp01(t))
}
