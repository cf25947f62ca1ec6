package collections

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is a fixed-length, 0-indexed sequence. Out of range access panics.
type Array[V any] struct {
	entries []V
}

func NewArray[V any](n int) *Array[V] {
	if n <= 0 {
		panic(errors.Wrapf(ErrInvalidTableSize, "array length %d", n))
	}
	return &Array[V]{
		entries: make([]V, n),
	}
}

func (a *Array[V]) Len() int {
	return len(a.entries)
}

func (a *Array[V]) Get(i int) V {
	a.checkIndex(i)
	return a.entries[i]
}

func (a *Array[V]) Set(i int, v V) {
	a.checkIndex(i)
	a.entries[i] = v
}

func (a *Array[V]) checkIndex(i int) {
	if i < 0 || i >= len(a.entries) {
		panic(fmt.Sprintf("array index %d out of range [0, %d)", i, len(a.entries)))
	}
}

func (a Array[V]) String() string {
	return fmt.Sprint(a.entries)
}
