package collections

// chainedHashMapIterator walks the buckets in index order and each bucket in
// its own iteration order. It stops after m.size pairs, which guarantees the
// last pair is found without probing past the last bucket.
type chainedHashMapIterator[K comparable, V any] struct {
	m              *ChainedHashMap[K, V]
	buckets        *Array[Map[K, V]]
	modCount       int
	numberSeen     int
	currentBucket  int
	bucketIterator Iterator[K, V]
}

// Iterator returns a single-pass iterator over all pairs. Any structural
// change to the map invalidates it: the next call to Next fails with
// ErrConcurrentModification.
func (m *ChainedHashMap[K, V]) Iterator() Iterator[K, V] {
	return &chainedHashMapIterator[K, V]{
		m:              m,
		buckets:        m.buckets,
		modCount:       m.modCount,
		bucketIterator: m.buckets.Get(0).Iterator(),
	}
}

// HasNext also reports true once the map was modified, so that the caller's
// next call to Next surfaces ErrConcurrentModification.
func (it *chainedHashMapIterator[K, V]) HasNext() bool {
	return it.modCount != it.m.modCount || it.numberSeen < it.m.size
}

func (it *chainedHashMapIterator[K, V]) Next() (p Pair[K, V], err error) {
	if it.modCount != it.m.modCount {
		return p, ErrConcurrentModification
	}
	if !it.HasNext() {
		return p, ErrNoSuchElement
	}
	for !it.bucketIterator.HasNext() {
		it.currentBucket++
		if it.currentBucket >= it.buckets.Len() {
			return p, ErrNoSuchElement
		}
		it.bucketIterator = it.buckets.Get(it.currentBucket).Iterator()
	}
	p, err = it.bucketIterator.Next()
	if err != nil {
		return p, err
	}
	it.numberSeen++
	return p, nil
}

func (it *chainedHashMapIterator[K, V]) Remove() error {
	return ErrUnsupportedOperation
}
