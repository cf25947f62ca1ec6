package hash

import "golang.org/x/exp/constraints"

// Func maps a key to a deterministic integer. Keys that are equal must hash
// equally; the result may be negative.
type Func[K any] func(K) int

// Hashable is implemented by key types that carry their own hash code.
type Hashable interface {
	comparable
	HashCode() int
}

// String is the 31-polynomial string hash computed in 32-bit signed
// arithmetic, so long strings wrap into negative values.
func String(s string) int {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return int(h)
}

func Integer[T constraints.Integer](v T) int {
	return int(v)
}

func Of[K Hashable](k K) int {
	return k.HashCode()
}
