package collections

import "fmt"

type Pair[K any, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Key, p.Value)
}

// Map is the capability set shared by the chained hash map and its buckets.
type Map[K comparable, V any] interface {
	Add(k K, v V) error
	Remove(k K) (Pair[K, V], error)
	RemoveAny() (Pair[K, V], error)
	Value(k K) (V, error)
	HasKey(k K) bool
	Size() int
	Iterator() Iterator[K, V]
	Clear()
	// NewInstance returns an empty map of the same concrete type and
	// configuration as the receiver.
	NewInstance() Map[K, V]
	// TransferFrom moves the content of source into the receiver and leaves
	// source empty.
	TransferFrom(source Map[K, V]) error
}

type Iterator[K any, V any] interface {
	HasNext() bool
	Next() (Pair[K, V], error)
	Remove() error
}

// ForEach calls f for every pair of m until f returns false.
func ForEach[K comparable, V any](m Map[K, V], f func(k K, v V) bool) error {
	it := m.Iterator()
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			return err
		}
		if !f(p.Key, p.Value) {
			return nil
		}
	}
	return nil
}
