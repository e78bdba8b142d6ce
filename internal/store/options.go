package store

import (
	"time"

	"github.com/MKhiriev/go-event-keeper/internal/utils"
)

// IDGenerator produces identifiers for new users and records.
type IDGenerator interface {
	Generate() string
}

// Option configures repositories built by [NewStorages] and the repository
// constructors.
type Option func(*options)

type options struct {
	ids IDGenerator
	now func() time.Time
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithClock replaces the wall clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{
		ids: utils.NewUUIDGenerator(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// timestamp normalizes t to UTC with microsecond precision, the precision
// PostgreSQL keeps.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
