package config

import (
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func loadString(t *testing.T, content string) (*Config, error) {
	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/etc/bucket-map.toml", []byte(content), 0644))
	return LoadFs(fs, "/etc/bucket-map.toml")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Nil(t, cfg.Validate())
	require.Equal(t, 101, cfg.TableSize)
	require.Equal(t, BucketsLinear, cfg.Buckets)
	level, err := cfg.Level()
	require.Nil(t, err)
	require.Equal(t, log.InfoLevel, level)
}

func TestLoad(t *testing.T) {
	cfg, err := loadString(t, `
table-size = 7
log-level = "debug"
buckets = "chained"
`)
	require.Nil(t, err)
	require.Equal(t, 7, cfg.TableSize)
	require.Equal(t, 1000, cfg.Keys)
	require.Equal(t, BucketsChained, cfg.Buckets)
	level, err := cfg.Level()
	require.Nil(t, err)
	require.Equal(t, log.DebugLevel, level)
}

func TestLoadExample(t *testing.T) {
	cfg, err := Load("example.toml")
	require.Nil(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	_, err := loadString(t, "table-size = 0\n")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = loadString(t, "keys = -1\n")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = loadString(t, "log-level = \"loud\"\n")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = loadString(t, "buckets = \"tree\"\n")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = loadString(t, "table-size = \"big\"\n")
	require.NotNil(t, err)
	_, err = LoadFs(afero.NewMemMapFs(), "/missing.toml")
	require.NotNil(t, err)
}

func TestLevelKeepsCause(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	_, parseErr := log.ParseLevel("loud")
	require.NotNil(t, parseErr)
	_, err := cfg.Level()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Equal(t, parseErr, errors.Cause(errors.Unwrap(err)))
	require.Contains(t, err.Error(), "log-level")
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
