package lerp

// Ref interpolates the values behind two pointers with fn and returns a pointer
// to a new value. If either pointer is nil, a is returned unchanged.
func Ref[T any](a, b *T, fn func(T, T) T) *T {
	if a == nil || b == nil {
		return a
	}
	v := fn(*a, *b)
	return &v
}
