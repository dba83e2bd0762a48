package escape

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ProgressFunc is notified of the number of processed pixels out of total.
// Calls never overlap. A returned error is logged and otherwise ignored.
type ProgressFunc func(processed, total int) error

// ReportSteps is the approximate number of notifications over one run.
const ReportSteps = 10

// Reporter counts processed pixels across workers and forwards throttled
// updates to a ProgressFunc.
type Reporter struct {
	total int
	step  int
	fn    ProgressFunc

	processed atomic.Int64

	// mu serializes calls to fn and guards last.
	mu   sync.Mutex
	last int
}

// NewReporter creates a Reporter for total pixels. fn may be nil, in which
// case only the counter is maintained.
func NewReporter(total int, fn ProgressFunc) *Reporter {
	// Grids of fewer than ReportSteps pixels report every pixel.
	step := max(total/ReportSteps, 1)

	return &Reporter{
		total: total,
		step:  step,
		fn:    fn,
	}
}

// Done records one processed pixel, notifying fn when a threshold is crossed.
func (r *Reporter) Done() {
	n := int(r.processed.Add(1))
	if r.fn == nil {
		return
	}

	if n%r.step == 0 || n == r.total {
		r.report(n)
	}
}

// Processed returns the number of pixels recorded so far.
func (r *Reporter) Processed() int {
	return int(r.processed.Load())
}

func (r *Reporter) report(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A worker that crossed an earlier threshold may reach the lock after one
	// that crossed a later one. Dropping its update keeps reports increasing.
	if n <= r.last {
		return
	}
	r.last = n

	if err := r.call(n); err != nil {
		Logger().Warn("progress callback failed",
			"processed", n,
			"total", r.total,
			"err", err)
	}
}

func (r *Reporter) call(n int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return r.fn(n, r.total)
}
