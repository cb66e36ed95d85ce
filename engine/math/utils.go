package math

import "golang.org/x/exp/constraints"

// InRange reports whether low <= f <= high.
func InRange[T constraints.Ordered](f, low, high T) bool {
	return f >= low && f <= high
}

// Vec4InUnitRange reports whether every component of v lies in [0, 1].
func Vec4InUnitRange(v Vec4) bool {
	for _, c := range v.Components() {
		if !InRange(c, 0, 1) {
			return false
		}
	}
	return true
}
