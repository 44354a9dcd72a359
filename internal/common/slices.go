package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Filter returns the elements of s for which keep returns true, in order.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var out S

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
