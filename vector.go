package lerp

// Vector is implemented by types closed under addition and scaling, such as
// complex numbers or geometric vectors.
type Vector[T any, F Float] interface {
	Add(T) T
	Scale(F) T
}

// Linear interpolates any Vector as a*(1-t) + b*t. A type can implement
// Interpolator by forwarding to it:
//
//	func (v Vec2) Lerp(w Vec2, t float64) Vec2 { return lerp.Linear(v, w, t) }
func Linear[T Vector[T, F], F Float](a, b T, t F) T {
	return a.Scale(1 - t).Add(b.Scale(t))
}
