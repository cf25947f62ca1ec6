package collections

import (
	log "github.com/sirupsen/logrus"
)

// DefaultTableSize is the bucket count used by default and after Clear.
const DefaultTableSize = 101

type options struct {
	tableSize int
	logger    log.FieldLogger
}

type Option func(*options)

func WithTableSize(n int) Option {
	return func(o *options) {
		o.tableSize = n
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		tableSize: DefaultTableSize,
		logger:    log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
