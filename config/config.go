package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/tuannh982/bucket-map/utils/collections"
)

const (
	BucketsLinear  = "linear"
	BucketsChained = "chained"
)

var ErrInvalidConfig = errors.New("invalid config")

// invalidConfigError matches ErrInvalidConfig while keeping the underlying
// cause in the unwrap chain.
type invalidConfigError struct {
	err error
}

func (e *invalidConfigError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.err.Error()
}

func (e *invalidConfigError) Unwrap() error {
	return e.err
}

func (e *invalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

type Config struct {
	// TableSize is the bucket count of the map under test.
	TableSize int `toml:"table-size"`
	// Keys is the number of pairs the workload inserts.
	Keys     int    `toml:"keys"`
	LogLevel string `toml:"log-level"`
	// Buckets selects the bucket implementation, "linear" or "chained".
	Buckets string `toml:"buckets"`
}

func Default() *Config {
	return &Config{
		TableSize: collections.DefaultTableSize,
		Keys:      1000,
		LogLevel:  log.InfoLevel.String(),
		Buckets:   BucketsLinear,
	}
}

// Load reads path from the OS filesystem on top of the defaults. Keys
// missing from the file keep their default value.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

func LoadFs(fs afero.Fs, path string) (*Config, error) {
	bt, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	if _, err := toml.Decode(string(bt), cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TableSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "table-size must be positive, got %d", c.TableSize)
	}
	if c.Keys <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "keys must be positive, got %d", c.Keys)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Buckets {
	case BucketsLinear, BucketsChained:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown buckets %q", c.Buckets)
	}
	return nil
}

func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return level, &invalidConfigError{err: errors.Wrap(err, "log-level")}
	}
	return level, nil
}
