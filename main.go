package main

import (
	"flag"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/bucket-map/config"
	"github.com/tuannh982/bucket-map/workload"
)

func main() {
	configFile := flag.String("config", "", "path to a TOML config file")
	flag.Parse()
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	report, err := run(*configFile)
	if err != nil {
		log.WithError(err).Fatal("bucket-map failed")
	}
	log.WithFields(log.Fields{"stats": report.Stats}).Info("done")
}

func run(configFile string) (*workload.Report, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not load config")
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	logger := log.WithFields(log.Fields{
		"table_size": cfg.TableSize,
		"buckets":    cfg.Buckets,
	})
	report, err := workload.New(cfg, logger).Run()
	if err != nil {
		return report, errors.Wrap(err, "workload failed")
	}
	return report, nil
}
