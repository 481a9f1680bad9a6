package picker

// ShufflePrefix returns the first k elements of a Fisher-Yates permutation of
// items driven by rand. items is copied first and never modified.
//
// The full shuffle always runs, so exactly len(items)-1 values are drawn from
// rand whatever k is. k is clamped to [0, len(items)].
func ShufflePrefix[T any](items []T, k int, rand func() float64) []T {
	list := make([]T, len(items))
	copy(list, items)

	for i := len(list) - 1; i > 0; i-- {
		j := int(rand() * float64(i+1))
		list[i], list[j] = list[j], list[i]
	}

	switch {
	case k < 0:
		k = 0
	case k > len(list):
		k = len(list)
	}
	return list[:k:k]
}
