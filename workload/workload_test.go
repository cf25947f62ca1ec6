package workload

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/bucket-map/config"
)

func TestRun(t *testing.T) {
	for _, buckets := range []string{config.BucketsLinear, config.BucketsChained} {
		cfg := config.Default()
		cfg.TableSize = 13
		cfg.Keys = 101
		cfg.Buckets = buckets
		logger, hook := test.NewNullLogger()
		report, err := New(cfg, log.NewEntry(logger)).Run()
		require.Nil(t, err, buckets)
		require.Equal(t, 101, report.Added)
		require.Equal(t, 101, report.Iterated)
		require.Equal(t, 51, report.Removed)
		require.Equal(t, 50, report.RemovedAny)
		require.Equal(t, 13, report.Stats.TableSize)
		require.Equal(t, 101, report.Stats.Size)
		require.Equal(t, "workload done", hook.LastEntry().Message)
	}
}

func TestRunSingleBucket(t *testing.T) {
	cfg := config.Default()
	cfg.TableSize = 1
	cfg.Keys = 10
	logger, _ := test.NewNullLogger()
	report, err := New(cfg, log.NewEntry(logger)).Run()
	require.Nil(t, err)
	require.Equal(t, 1, report.Stats.NonEmptyBuckets)
	require.Equal(t, 10, report.Stats.LongestChain)
	require.Equal(t, 5, report.RemovedAny)
}
