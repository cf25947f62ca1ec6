package workload

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/bucket-map/config"
	"github.com/tuannh982/bucket-map/utils/collections"
	"github.com/tuannh982/bucket-map/utils/hash"
)

// chainedBucketTableSize is the table size of each bucket when buckets are
// themselves chained hash maps.
const chainedBucketTableSize = 7

var ErrMismatch = errors.New("map state mismatch")

type Report struct {
	Added      int
	Iterated   int
	Removed    int
	RemovedAny int
	Stats      collections.Stats
}

type Workload struct {
	cfg *config.Config
	log *log.Entry
}

func New(cfg *config.Config, logger *log.Entry) *Workload {
	return &Workload{
		cfg: cfg,
		log: logger,
	}
}

func (w *Workload) newMap() *collections.ChainedHashMap[string, int] {
	opts := []collections.Option{
		collections.WithTableSize(w.cfg.TableSize),
		collections.WithLogger(w.log),
	}
	if w.cfg.Buckets == config.BucketsChained {
		newBucket := func() collections.Map[string, int] {
			return collections.NewChainedHashMap[string, int](hash.String, collections.WithTableSize(chainedBucketTableSize), collections.WithLogger(w.log))
		}
		return collections.NewChainedHashMapWithBuckets[string, int](hash.String, newBucket, opts...)
	}
	return collections.NewChainedHashMap[string, int](hash.String, opts...)
}

func key(i int) string {
	return fmt.Sprintf("key-%d", i)
}

// Run adds cfg.Keys pairs, checks them through lookup and iteration, removes
// half by key, moves the rest into a new map and drains it with RemoveAny.
func (w *Workload) Run() (*Report, error) {
	report := &Report{}
	m := w.newMap()
	for i := 0; i < w.cfg.Keys; i++ {
		if err := m.Add(key(i), i); err != nil {
			return report, errors.Wrap(err, "add")
		}
		report.Added++
	}
	for i := 0; i < w.cfg.Keys; i++ {
		v, err := m.Value(key(i))
		if err != nil {
			return report, errors.Wrap(err, "value")
		}
		if v != i {
			return report, errors.Wrapf(ErrMismatch, "value of %s is %d, want %d", key(i), v, i)
		}
	}
	report.Stats = m.Stats()
	w.log.WithFields(log.Fields{"stats": report.Stats}).Info("pairs added")

	err := collections.ForEach[string, int](m, func(k string, v int) bool {
		report.Iterated++
		return true
	})
	if err != nil {
		return report, errors.Wrap(err, "iterate")
	}
	if report.Iterated != m.Size() {
		return report, errors.Wrapf(ErrMismatch, "iterated %d pairs, size %d", report.Iterated, m.Size())
	}

	for i := 0; i < w.cfg.Keys; i += 2 {
		p, err := m.Remove(key(i))
		if err != nil {
			return report, errors.Wrap(err, "remove")
		}
		if p.Value != i {
			return report, errors.Wrapf(ErrMismatch, "removed %v, want value %d", p, i)
		}
		report.Removed++
	}
	w.log.WithFields(log.Fields{"size": m.Size()}).Info("pairs removed by key")

	moved := m.NewInstance()
	if err := moved.TransferFrom(m); err != nil {
		return report, errors.Wrap(err, "transfer")
	}
	if m.Size() != 0 || moved.Size() != report.Added-report.Removed {
		return report, errors.Wrapf(ErrMismatch, "after transfer source=%d destination=%d", m.Size(), moved.Size())
	}

	for moved.Size() > 0 {
		p, err := moved.RemoveAny()
		if err != nil {
			return report, errors.Wrap(err, "remove any")
		}
		if p.Value%2 == 0 {
			return report, errors.Wrapf(ErrMismatch, "%v should have been removed already", p)
		}
		report.RemovedAny++
	}
	moved.Clear()
	w.log.WithFields(log.Fields{
		"added":       report.Added,
		"removed":     report.Removed,
		"removed_any": report.RemovedAny,
	}).Info("workload done")
	return report, nil
}
