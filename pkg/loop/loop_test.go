package loop

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manualLoop(fps int) (*Loop, *ManualClock) {
	clock := NewManualClock(time.Unix(0, 0))
	return &Loop{FPS: fps, Clock: clock}, clock
}

func TestRunPacesFrames(t *testing.T) {
	l, _ := manualLoop(50)

	var frames []Frame
	err := l.Run(context.Background(), func(f Frame) error {
		frames = append(frames, f)
		if len(frames) == 5 {
			return ErrStop
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 5)

	assert.Equal(t, 0.0, frames[0].Dt)
	for i, f := range frames {
		assert.Equal(t, i, f.Count)
		if i > 0 {
			assert.InDelta(t, 0.02, f.Dt, 1e-12)
		}
	}
	assert.InDelta(t, 0.08, frames[4].Elapsed, 1e-12)
}

func TestRunClampsDt(t *testing.T) {
	l, clock := manualLoop(60)

	var dts []float64
	err := l.Run(context.Background(), func(f Frame) error {
		dts = append(dts, f.Dt)
		if f.Count == 2 {
			return ErrStop
		}
		clock.Advance(3 * time.Second)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, MaxDt, MaxDt}, dts)
}

func TestRunStopsOnCancel(t *testing.T) {
	l, _ := manualLoop(60)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	err := l.Run(ctx, func(f Frame) error {
		calls++
		if f.Count == 2 {
			cancel()
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunReturnsFrameError(t *testing.T) {
	l, _ := manualLoop(60)
	boom := errors.New("boom")

	err := l.Run(context.Background(), func(Frame) error {
		return fmt.Errorf("draw: %w", boom)
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunWrappedStop(t *testing.T) {
	l, _ := manualLoop(0)
	err := l.Run(context.Background(), func(Frame) error {
		return fmt.Errorf("done: %w", ErrStop)
	})
	assert.NoError(t, err)
}

func TestNewUsesWallClock(t *testing.T) {
	l := New(30)
	assert.Equal(t, WallClock, l.Clock)
	assert.Equal(t, 30, l.FPS)
}
