// Package loop runs a per-frame callback at a target rate until it is
// told to stop.
package loop

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends a loop without error when returned from a frame callback.
var ErrStop = errors.New("loop: stop")

// MaxDt caps the time step handed to a frame, so a stall does not turn
// into one huge jump.
const MaxDt = 0.1

// Clock is the loop's source of time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// WallClock is the real clock.
var WallClock Clock = wallClock{}

// Frame describes the frame being run.
type Frame struct {
	// Dt is seconds since the previous frame, at most MaxDt. The first
	// frame has Dt 0.
	Dt float64
	// Elapsed is the sum of every Dt so far.
	Elapsed float64
	// Count is the number of frames before this one.
	Count int
}

// Loop calls a function once per frame.
type Loop struct {
	FPS   int
	Clock Clock
}

// New creates a loop on the wall clock. A non-positive fps runs frames
// back to back.
func New(fps int) *Loop {
	return &Loop{FPS: fps, Clock: WallClock}
}

// Run calls fn every frame until ctx is done or fn returns an error. Both
// cancellation and ErrStop end the loop with a nil error; any other error
// from fn is returned.
func (l *Loop) Run(ctx context.Context, fn func(Frame) error) error {
	clock := l.Clock
	if clock == nil {
		clock = WallClock
	}
	var target time.Duration
	if l.FPS > 0 {
		target = time.Second / time.Duration(l.FPS)
	}

	var f Frame
	last := clock.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := clock.Now()
		if f.Count > 0 {
			f.Dt = min(now.Sub(last).Seconds(), MaxDt)
			f.Elapsed += f.Dt
		}
		last = now

		if err := fn(f); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		f.Count++

		if spent := clock.Now().Sub(now); spent < target {
			clock.Sleep(target - spent)
		}
	}
}
