package lerp

import "iter"

// Iter yields steps values from a towards b. The sequence is half-open: it
// starts at a and never reaches b. Each call of the returned sequence starts
// over.
func Iter[T Interpolator[T, float64]](a, b T, steps int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < steps; i++ {
			if !yield(a.Lerp(b, float64(i)/float64(steps))) {
				return
			}
		}
	}
}

// IterClosed yields steps values from a to b, both endpoints included. With a
// single step only b is yielded.
func IterClosed[T Interpolator[T, float64]](a, b T, steps int) iter.Seq[T] {
	return closed(Iter(a, b, steps-1), b, steps)
}

// Range is Iter for bare scalars.
func Range[F Float](a, b F, steps int) iter.Seq[F] {
	return func(yield func(F) bool) {
		for i := 0; i < steps; i++ {
			if !yield(Lerp(a, b, F(i)/F(steps))) {
				return
			}
		}
	}
}

// RangeClosed is IterClosed for bare scalars.
func RangeClosed[F Float](a, b F, steps int) iter.Seq[F] {
	return closed(Range(a, b, steps-1), b, steps)
}

func closed[T any](head iter.Seq[T], last T, steps int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if steps <= 0 {
			return
		}
		for v := range head {
			if !yield(v) {
				return
			}
		}
		yield(last)
	}
}
