package collections

import (
	"github.com/tuannh982/bucket-map/utils/hash"
)

// hashSet stores its members as the keys of a ChainedHashMap.
type hashSet[V comparable] struct {
	entries *ChainedHashMap[V, struct{}]
}

func NewHashSet[V comparable](f hash.Func[V], opts ...Option) Set[V] {
	return &hashSet[V]{
		entries: NewChainedHashMap[V, struct{}](f, opts...),
	}
}

func (s *hashSet[V]) Contains(v V) bool {
	return s.entries.HasKey(v)
}

func (s *hashSet[V]) Add(v V) error {
	return s.entries.Add(v, struct{}{})
}

func (s *hashSet[V]) Remove(v V) error {
	_, err := s.entries.Remove(v)
	return err
}

func (s *hashSet[V]) Size() int {
	return s.entries.Size()
}

func (s *hashSet[V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	_ = ForEach[V, struct{}](s.entries, func(v V, _ struct{}) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

func (s *hashSet[V]) Clear() {
	s.entries.Clear()
}
