package typecast

// ToPtr converts an input value of any type to a pointer.
func ToPtr[T any](v T) *T {
	return &v
}

// FromPtr returns the value behind the pointer or zero value of T when it's nil.
func FromPtr[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
