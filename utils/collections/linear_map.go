package collections

import "github.com/pkg/errors"

// linearMap keeps its pairs in a slice and finds keys by linear search. It
// is meant for small maps, e.g. the buckets of a ChainedHashMap.
type linearMap[K comparable, V any] struct {
	entries []Pair[K, V]
}

func NewLinearMap[K comparable, V any]() Map[K, V] {
	return &linearMap[K, V]{
		entries: make([]Pair[K, V], 0),
	}
}

func (m *linearMap[K, V]) lookup(k K) int {
	for i := range m.entries {
		if m.entries[i].Key == k {
			return i
		}
	}
	return -1
}

func (m *linearMap[K, V]) Add(k K, v V) error {
	if isNil(k) {
		return ErrNilKey
	}
	if isNil(v) {
		return ErrNilValue
	}
	if m.lookup(k) >= 0 {
		return errors.Wrapf(ErrValueExisted, "key %v", k)
	}
	m.entries = append(m.entries, Pair[K, V]{Key: k, Value: v})
	return nil
}

func (m *linearMap[K, V]) Remove(k K) (p Pair[K, V], err error) {
	i := m.lookup(k)
	if i < 0 {
		return p, errors.Wrapf(ErrValueNotExisted, "key %v", k)
	}
	p = m.entries[i]
	last := len(m.entries) - 1
	m.entries[i] = m.entries[last]
	m.entries[last] = Pair[K, V]{}
	m.entries = m.entries[:last]
	return p, nil
}

func (m *linearMap[K, V]) RemoveAny() (p Pair[K, V], err error) {
	n := len(m.entries)
	if n == 0 {
		return p, ErrEmpty
	}
	p = m.entries[n-1]
	m.entries[n-1] = Pair[K, V]{}
	m.entries = m.entries[:n-1]
	return p, nil
}

func (m *linearMap[K, V]) Value(k K) (v V, err error) {
	i := m.lookup(k)
	if i < 0 {
		return v, errors.Wrapf(ErrValueNotExisted, "key %v", k)
	}
	return m.entries[i].Value, nil
}

func (m *linearMap[K, V]) HasKey(k K) bool {
	return m.lookup(k) >= 0
}

func (m *linearMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *linearMap[K, V]) Clear() {
	m.entries = make([]Pair[K, V], 0)
}

func (m *linearMap[K, V]) NewInstance() Map[K, V] {
	return NewLinearMap[K, V]()
}

func (m *linearMap[K, V]) TransferFrom(source Map[K, V]) error {
	if source == nil {
		return ErrNilSource
	}
	src, ok := source.(*linearMap[K, V])
	if !ok {
		return errors.Wrapf(ErrIncompatibleType, "%T", source)
	}
	if src == nil {
		return ErrNilSource
	}
	if src == m {
		return ErrSelfTransfer
	}
	m.entries = src.entries
	src.Clear()
	return nil
}

func (m *linearMap[K, V]) Iterator() Iterator[K, V] {
	return &linearMapIterator[K, V]{m: m}
}

func (m *linearMap[K, V]) String() string {
	return Format[K, V](m)
}

type linearMapIterator[K comparable, V any] struct {
	m   *linearMap[K, V]
	pos int
}

func (it *linearMapIterator[K, V]) HasNext() bool {
	return it.pos < len(it.m.entries)
}

func (it *linearMapIterator[K, V]) Next() (p Pair[K, V], err error) {
	if !it.HasNext() {
		return p, ErrNoSuchElement
	}
	p = it.m.entries[it.pos]
	it.pos++
	return p, nil
}

func (it *linearMapIterator[K, V]) Remove() error {
	return ErrUnsupportedOperation
}

var _ Map[string, int] = (*linearMap[string, int])(nil)
