package escape

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/willbeason/quantum-fractal/pkg/transforms"
)

var ErrNegativeIterations = errors.New("max iterations must not be negative")

// Grid holds one iteration count per pixel, indexed [y][x].
type Grid [][]int

// Params are the fractal parameters shared by every pixel of a run.
type Params struct {
	C       complex128
	MaxIter int
	HBar    float64
	Effect  transforms.Effect
}

// Request is the full argument list of a Compute call.
type Request struct {
	Width, Height int

	XMin, XMax float64
	YMin, YMax float64

	CReal, CImag float64
	MaxIter      int
	HBar         float64

	// Effect names the transformation. Phase is required by "phase_shift"
	// and ignored otherwise.
	Effect string
	Phase  *float64
}

func (r Request) Viewport() Viewport {
	return Viewport{
		Width:  r.Width,
		Height: r.Height,
		XMin:   r.XMin,
		XMax:   r.XMax,
		YMin:   r.YMin,
		YMax:   r.YMax,
	}
}

// Option configures a Compute or Run call.
type Option func(*options)

type options struct {
	workers  int
	progress ProgressFunc
	strict   bool
}

func defaultOptions() options {
	return options{
		workers: runtime.NumCPU(),
	}
}

// WithWorkers sets the number of worker goroutines. Values below one select
// the default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithProgress registers fn to receive roughly ReportSteps progress updates.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithStrictEffects rejects effect names outside the catalog instead of
// falling back to the quadratic map.
func WithStrictEffects() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Compute validates req, resolves its effect and computes the full grid.
// On error no grid is returned and no work has been started.
func Compute(req Request, opts ...Option) (Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := req.Viewport()
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIter < 0 {
		return nil, ErrNegativeIterations
	}

	resolve := transforms.Resolve
	if o.strict {
		resolve = transforms.ResolveStrict
	}

	effect, err := resolve(req.Effect, req.Phase)
	if err != nil {
		return nil, fmt.Errorf("resolving effect: %w", err)
	}

	p := Params{
		C:       complex(req.CReal, req.CImag),
		MaxIter: req.MaxIter,
		HBar:    req.HBar,
		Effect:  effect,
	}

	return run(v, p, o), nil
}

// Run computes the grid for an already resolved effect. Effect options such
// as WithStrictEffects have no meaning here and are ignored.
func Run(v Viewport, p Params, opts ...Option) (Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	if p.MaxIter < 0 {
		return nil, ErrNegativeIterations
	}

	return run(v, p, o), nil
}

func run(v Viewport, p Params, o options) Grid {
	start := time.Now()

	parallel := min(o.workers, v.Height)
	Logger().Debug("computing grid",
		"width", v.Width,
		"height", v.Height,
		"effect", p.Effect.Kind,
		"max_iter", p.MaxIter,
		"workers", parallel)

	step := p.Effect.Bind(p.C, p.HBar)
	reporter := NewReporter(v.Pixels(), o.progress)

	// Every row is allocated up front and written by exactly one worker.
	grid := make(Grid, v.Height)
	for y := range grid {
		grid[y] = make([]int, v.Width)
	}

	yChannel := make(chan int)

	go func() {
		for y := 0; y < v.Height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for y := range yChannel {
				row := grid[y]
				for x := range row {
					row[x] = Iterate(v.Point(x, y), step, p.MaxIter)
					reporter.Done()
				}
			}
			ywg.Done()
		}()
	}

	ywg.Wait()

	Logger().Debug("computed grid",
		"pixels", reporter.Processed(),
		"elapsed", time.Since(start))

	return grid
}
