package collections

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/bucket-map/utils/hash"
	"github.com/tuannh982/bucket-map/utils/math"
)

// ChainedHashMap is a Map backed by a fixed number of buckets, each of which
// is a smaller Map holding the keys whose hash falls into it. The table is
// never resized.
//
// ChainedHashMap is not safe for concurrent use.
type ChainedHashMap[K comparable, V any] struct {
	buckets   *Array[Map[K, V]]
	size      int
	modCount  int
	hashFunc  hash.Func[K]
	newBucket func() Map[K, V]
	logger    log.FieldLogger
}

// NewChainedHashMap creates a map with linear buckets. It panics if the
// table size option is not positive.
func NewChainedHashMap[K comparable, V any](hashFunc hash.Func[K], opts ...Option) *ChainedHashMap[K, V] {
	return NewChainedHashMapWithBuckets[K, V](hashFunc, NewLinearMap[K, V], opts...)
}

func NewChainedHashMapWithBuckets[K comparable, V any](hashFunc hash.Func[K], newBucket func() Map[K, V], opts ...Option) *ChainedHashMap[K, V] {
	o := newOptions(opts...)
	m := &ChainedHashMap[K, V]{
		hashFunc:  hashFunc,
		newBucket: newBucket,
		logger:    o.logger,
	}
	m.createNewRep(o.tableSize)
	return m
}

func (m *ChainedHashMap[K, V]) logEntry() *log.Entry {
	return m.logger.WithFields(log.Fields{
		"component":  "chained_hash_map",
		"size":       m.size,
		"table_size": m.buckets.Len(),
	})
}

func (m *ChainedHashMap[K, V]) createNewRep(tableSize int) {
	if tableSize <= 0 {
		panic(errors.Wrapf(ErrInvalidTableSize, "table size %d", tableSize))
	}
	buckets := NewArray[Map[K, V]](tableSize)
	for i := 0; i < tableSize; i++ {
		buckets.Set(i, m.newBucket())
	}
	m.buckets = buckets
	m.size = 0
	m.modCount++
}

func (m *ChainedHashMap[K, V]) bucketIndex(k K) int {
	return math.Mod(m.hashFunc(k), m.buckets.Len())
}

func (m *ChainedHashMap[K, V]) bucketOf(k K) Map[K, V] {
	return m.buckets.Get(m.bucketIndex(k))
}

func (m *ChainedHashMap[K, V]) Add(k K, v V) error {
	if isNil(k) {
		return ErrNilKey
	}
	if isNil(v) {
		return ErrNilValue
	}
	b := m.bucketOf(k)
	if b.HasKey(k) {
		return errors.Wrapf(ErrValueExisted, "key %v", k)
	}
	if err := b.Add(k, v); err != nil {
		return err
	}
	m.size++
	m.modCount++
	return nil
}

func (m *ChainedHashMap[K, V]) Remove(k K) (p Pair[K, V], err error) {
	b := m.bucketOf(k)
	if !b.HasKey(k) {
		return p, errors.Wrapf(ErrValueNotExisted, "key %v", k)
	}
	p, err = b.Remove(k)
	if err != nil {
		return p, err
	}
	m.size--
	m.modCount++
	return p, nil
}

// RemoveAny removes a pair from the lowest-indexed non-empty bucket. The
// scan starts at bucket 0 on every call, so it costs O(TableSize) when the
// low buckets are empty.
func (m *ChainedHashMap[K, V]) RemoveAny() (p Pair[K, V], err error) {
	if m.size == 0 {
		return p, ErrEmpty
	}
	i := 0
	for m.buckets.Get(i).Size() == 0 {
		i++
	}
	p, err = m.buckets.Get(i).RemoveAny()
	if err != nil {
		return p, err
	}
	m.size--
	m.modCount++
	return p, nil
}

func (m *ChainedHashMap[K, V]) Value(k K) (v V, err error) {
	b := m.bucketOf(k)
	if !b.HasKey(k) {
		return v, errors.Wrapf(ErrValueNotExisted, "key %v", k)
	}
	return b.Value(k)
}

func (m *ChainedHashMap[K, V]) HasKey(k K) bool {
	return m.bucketOf(k).HasKey(k)
}

func (m *ChainedHashMap[K, V]) Size() int {
	return m.size
}

func (m *ChainedHashMap[K, V]) TableSize() int {
	return m.buckets.Len()
}

// Clear empties the map and resets the table to DefaultTableSize.
func (m *ChainedHashMap[K, V]) Clear() {
	m.logEntry().Debug("clear")
	m.createNewRep(DefaultTableSize)
}

func (m *ChainedHashMap[K, V]) NewInstance() Map[K, V] {
	return NewChainedHashMapWithBuckets[K, V](m.hashFunc, m.newBucket, WithTableSize(DefaultTableSize), WithLogger(m.logger))
}

// TransferFrom takes over the buckets of source, which must be another
// *ChainedHashMap of the same type, and resets source to a fresh
// default-sized map.
func (m *ChainedHashMap[K, V]) TransferFrom(source Map[K, V]) error {
	if source == nil {
		return ErrNilSource
	}
	src, ok := source.(*ChainedHashMap[K, V])
	if !ok {
		return errors.Wrapf(ErrIncompatibleType, "%T", source)
	}
	if src == nil {
		return ErrNilSource
	}
	if src == m {
		return ErrSelfTransfer
	}
	src.logEntry().Debug("transfer")
	m.buckets = src.buckets
	m.size = src.size
	m.modCount++
	src.createNewRep(DefaultTableSize)
	return nil
}

func (m *ChainedHashMap[K, V]) String() string {
	return Format[K, V](m)
}

var _ Map[string, int] = (*ChainedHashMap[string, int])(nil)
