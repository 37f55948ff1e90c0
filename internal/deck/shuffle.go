package deck

import "math/rand"

// Shuffle permutes items in place with a Fisher-Yates walk from the last
// index down to 1. Empty and single-element slices are left untouched.
func Shuffle[T any](rnd *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
