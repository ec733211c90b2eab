// Package animation drives a single scalar back and forth across a range.
//
// The Driver is a plain state machine: Step moves the position by a fixed speed and
// reflects it at the boundaries. It never starts timers or goroutines. Frames come from a
// host through the Scheduler contract, which mirrors a display's frame callback: the host
// calls back once per frame, and the driver asks for the next frame from inside that callback.
//
// FrameQueue is a Scheduler the host pumps explicitly, typically from its render loop or a
// time.Ticker.
package animation

import "time"

// Scheduler delivers frame callbacks. RequestFrame registers fn to run once on the next
// frame and returns a function that cancels the request if it has not run yet. Calling
// the cancel function more than once, or after fn ran, has no effect.
type Scheduler interface {
	RequestFrame(fn func(dt time.Duration)) (cancel func())
}

type frameRequest struct {
	fn       func(dt time.Duration)
	canceled bool
}

// FrameQueue is a Scheduler driven by explicit Tick calls. Requests made while a tick is
// running are delivered on the following tick, so a callback that re-requests itself runs
// exactly once per Tick.
//
// A FrameQueue is not safe for concurrent use; the host must call Tick from the same
// goroutine that uses the drivers attached to it.
type FrameQueue struct {
	pending []*frameRequest
}

var _ Scheduler = (*FrameQueue)(nil)

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(dt time.Duration)) func() {
	req := &frameRequest{fn: fn}
	q.pending = append(q.pending, req)

	return func() { req.canceled = true }
}

// Tick runs every request pending at the time of the call with the elapsed frame time dt
// and returns how many callbacks ran.
func (q *FrameQueue) Tick(dt time.Duration) int {
	batch := q.pending
	q.pending = nil

	ran := 0
	for _, req := range batch {
		if req.canceled {
			continue
		}
		req.canceled = true
		req.fn(dt)
		ran++
	}

	return ran
}

// Pending returns the number of requests that will run on the next Tick.
func (q *FrameQueue) Pending() int {
	n := 0
	for _, req := range q.pending {
		if !req.canceled {
			n++
		}
	}

	return n
}
