package collections

import (
	"fmt"

	"github.com/tuannh982/bucket-map/utils/math"
)

type Stats struct {
	TableSize       int
	Size            int
	NonEmptyBuckets int
	LongestChain    int
	// AverageChain is the mean size of the non-empty buckets, rounded up.
	AverageChain int
	LoadFactor   float64
}

func (m *ChainedHashMap[K, V]) Stats() Stats {
	s := Stats{
		TableSize:  m.buckets.Len(),
		Size:       m.size,
		LoadFactor: float64(m.size) / float64(m.buckets.Len()),
	}
	for i := 0; i < m.buckets.Len(); i++ {
		n := m.buckets.Get(i).Size()
		if n == 0 {
			continue
		}
		s.NonEmptyBuckets++
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	if s.NonEmptyBuckets > 0 {
		s.AverageChain = math.DivCeil(s.Size, s.NonEmptyBuckets)
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("(table=%d,size=%d,non_empty=%d,longest=%d,avg=%d,load=%.2f)",
		s.TableSize, s.Size, s.NonEmptyBuckets, s.LongestChain, s.AverageChain, s.LoadFactor)
}
