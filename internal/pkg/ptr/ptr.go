package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the zero value for a nil pointer.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Coalesce picks the patched value when present, the current one otherwise.
func Coalesce[T any](patched *T, current T) T {
	if patched != nil {
		return *patched
	}
	return current
}
