package patrol

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citypatrol/dijkstra"
	"github.com/katalvlaran/citypatrol/grid"
	"github.com/katalvlaran/citypatrol/intersection"
	"github.com/katalvlaran/citypatrol/route"
	"github.com/katalvlaran/citypatrol/search"
)

var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("patrol: grid is nil")
	// ErrOpenTour indicates a tour that does not return to its start.
	ErrOpenTour = errors.New("patrol: tour does not return to start")
	// ErrMissedStop indicates a tour that skips one of its planned stops.
	ErrMissedStop = errors.New("patrol: tour misses a planned stop")
)

// Tour is a solved patrol.
type Tour struct {
	// Moves is the output string over {U, D, L, R}.
	Moves string
	// Cost is the search's final bound for this tour.
	Cost int64
	// Stops are the intersections visited in order (start excluded).
	Stops []grid.Point
	// Path holds the intersection indices of Stops.
	Path  []int
	Stats search.Stats
}

// Options configures Solve and Run.
type Options struct {
	Logger    logrus.FieldLogger
	OnImprove func(cost int64, path []int)
	// Verify replays the tour and checks it is closed and hits every stop.
	Verify bool
}

// Option is a functional option.
type Option func(*Options)

// WithLogger sets the logger used by every stage.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnImprove forwards a hook to search.WithOnImprove.
func WithOnImprove(fn func(cost int64, path []int)) Option {
	return func(o *Options) { o.OnImprove = fn }
}

// WithVerify toggles the replay check. It is on by default.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}

// DefaultOptions returns a silent logger and Verify on.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l, Verify: true}
}

// Solve runs the full pipeline on g from start.
func Solve(g *grid.Grid, start grid.Point, opts ...Option) (*Tour, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	log := cfg.Logger

	// 1) Classify and build the view graph.
	net := intersection.Build(g)
	log.WithField("intersections", net.Len()).Debug("network built")

	// 2) Distances and return paths from start.
	oracle, err := dijkstra.FromStart(g, start, net.Points)
	if err != nil {
		return nil, err
	}

	// 3) Search.
	res, err := search.Search(net, oracle, start,
		search.WithLogger(log),
		search.WithOnImprove(cfg.OnImprove),
	)
	if err != nil {
		return nil, err
	}

	// 4) Serialise.
	stops := make([]grid.Point, len(res.Path))
	for i, idx := range res.Path {
		stops[i] = net.Points[idx]
	}
	var ret string
	if n := len(res.Path); n > 0 {
		ret = oracle.ReturnPath(res.Path[n-1])
	}
	moves, err := route.Moves(start, stops, ret)
	if err != nil {
		return nil, err
	}

	tour := &Tour{Moves: moves, Cost: res.Cost, Stops: stops, Path: res.Path, Stats: res.Stats}
	if cfg.Verify {
		if err := verify(g, start, tour); err != nil {
			return nil, err
		}
	}

	return tour, nil
}

// verify replays the tour and checks it closes at start after passing
// every stop in order.
func verify(g *grid.Grid, start grid.Point, t *Tour) error {
	tr, err := route.Replay(g, start, t.Moves)
	if err != nil {
		return err
	}
	if tr.End() != start {
		return fmt.Errorf("%w: ends at %v", ErrOpenTour, tr.End())
	}
	next := 0
	for _, c := range tr.Cells {
		if next < len(t.Stops) && c == t.Stops[next] {
			next++
		}
	}
	if next != len(t.Stops) {
		return fmt.Errorf("%w: %v", ErrMissedStop, t.Stops[next])
	}

	return nil
}

// Run reads a city from r, solves it and writes the move string and a
// newline to w.
func Run(r io.Reader, w io.Writer, opts ...Option) error {
	g, start, err := grid.Parse(r)
	if err != nil {
		return err
	}
	tour, err := Solve(g, start, opts...)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, tour.Moves); err != nil {
		return err
	}

	return bw.Flush()
}
