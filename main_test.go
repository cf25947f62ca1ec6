package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/bucket-map/config"
)

func TestRun(t *testing.T) {
	report, err := run("config/example.toml")
	require.Nil(t, err)
	require.Equal(t, 1000, report.Added)
	require.Equal(t, 101, report.Stats.TableSize)

	_, err = run("config/missing.toml")
	require.NotNil(t, err)
}

func TestRunRejectsBadLevel(t *testing.T) {
	path := t.TempDir() + "/bad.toml"
	require.Nil(t, afero.WriteFile(afero.NewOsFs(), path, []byte("log-level = \"loud\"\n"), 0644))
	_, err := run(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
