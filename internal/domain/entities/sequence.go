package entities

// EqualSlices reports whether one and other hold equal elements at every
// position, using itemEquals to compare elements. A nil itemEquals falls back
// to ==. Two slices sharing the same backing array and length are equal
// without looking at the elements.
func EqualSlices[T comparable](one, other []T, itemEquals func(a, b T) bool) bool {
	if len(one) != len(other) {
		return false
	}
	if len(one) == 0 || &one[0] == &other[0] {
		return true
	}

	if itemEquals == nil {
		itemEquals = func(a, b T) bool { return a == b }
	}
	for i := range one {
		if !itemEquals(one[i], other[i]) {
			return false
		}
	}

	return true
}
