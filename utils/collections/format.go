package collections

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same pairs.
func Equal[K comparable, V comparable](a, b Map[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	equal := true
	err := ForEach(a, func(k K, v V) bool {
		if !b.HasKey(k) {
			equal = false
			return false
		}
		w, err := b.Value(k)
		if err != nil || w != v {
			equal = false
			return false
		}
		return true
	})
	return err == nil && equal
}

// Format renders m as {k→v, ...} with the pairs sorted by their text, so
// maps holding the same pairs format identically.
func Format[K comparable, V any](m Map[K, V]) string {
	pairs := make([]string, 0, m.Size())
	_ = ForEach(m, func(k K, v V) bool {
		pairs = append(pairs, fmt.Sprintf("%v→%v", k, v))
		return true
	})
	slices.Sort(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
