package search

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Infinity is the initial pruning bound.
const Infinity int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrNilInput indicates a nil network or oracle.
	ErrNilInput = errors.New("search: network and oracle must be non-nil")

	// ErrOracleMismatch indicates an oracle built for a different target set.
	ErrOracleMismatch = errors.New("search: oracle size differs from network size")

	// ErrNoTour indicates that no root branch produced a complete tour.
	ErrNoTour = errors.New("search: no tour observes every intersection")

	// ErrRescueExhausted indicates that Rescue found no unwatched
	// intersection although the caller knew one remained.
	ErrRescueExhausted = errors.New("search: rescue found no unwatched intersection")
)

// Stats reports counters from a single Search run.
type Stats struct {
	Nodes        int // recursive calls
	Rescues      int // rescue jumps taken
	Improvements int // incumbents recorded
}

// Result is the best tour found.
type Result struct {
	// Path lists intersection indices in visiting order; the tour starts
	// and ends at the start cell, which is not listed.
	Path []int
	// Cost is the final pruning bound: the sum of view-edge costs along
	// Path plus the oracle distance of its last intersection.
	Cost  int64
	Stats Stats
}

// Options configures Search.
type Options struct {
	// Logger receives Debug events for incumbents and rescues and an Info
	// summary. Defaults to a logger that discards everything.
	Logger logrus.FieldLogger

	// OnImprove, if non-nil, is called with every new incumbent. path is
	// only valid for the duration of the call.
	OnImprove func(cost int64, path []int)
}

// Option is a functional option for Search.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnImprove installs a hook called on every new incumbent.
func WithOnImprove(fn func(cost int64, path []int)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// DefaultOptions returns Options with a silent logger and no hook.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}
