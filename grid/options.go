package grid

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Defaults.
const (
	// DefaultSize is the lattice size along each axis.
	DefaultSize = 21
)

const (
	panicSizeInvalid    = "grid: WithSize: dimensions must be >= 1"
	panicWorkersInvalid = "grid: WithWorkers: workers must be >= 1"
)

// Option configures Sample.
type Option func(*Options)

// Options holds the effective sampler configuration.
type Options struct {
	nRe, nIm int
	workers  int
	logger   logrus.FieldLogger
}

// WithSize sets the number of samples along the real and imaginary axes.
func WithSize(nRe, nIm int) Option {
	if nRe < 1 || nIm < 1 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.nRe, o.nIm = nRe, nIm }
}

// WithWorkers bounds the number of rows evaluated concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger receives per-row debug entries and a summary line.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		nRe:     DefaultSize,
		nIm:     DefaultSize,
		workers: runtime.GOMAXPROCS(0),
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
