package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.New(800, 600, field.DefaultConfig(), field.WithSeed(1))
	require.NoError(t, err)
	return f
}

type StepSystem struct {
	ExecuteCount int
}

func (s *StepSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	frame.Field.Step()
}

type PointerWatcher struct {
	Seen []field.Pointer
}

func (s *PointerWatcher) Execute(frame *loop.UpdateFrame) {
	s.Seen = append(s.Seen, frame.Field.Pointer())
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))

		var order []string
		scheduler.RegisterFunc("first", func(*loop.UpdateFrame) { order = append(order, "first") })
		scheduler.RegisterFunc("second", func(*loop.UpdateFrame) { order = append(order, "second") })

		require.NoError(t, scheduler.Once(1.0/60))
		require.NoError(t, scheduler.Once(1.0/60))

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		f := newField(t)
		scheduler := loop.NewScheduler(f)
		step := &StepSystem{}
		scheduler.Register(step)

		before := f.Nodes()[0]
		for i := 0; i < 3; i++ {
			require.NoError(t, scheduler.Once(1.0/60))
		}

		assert.Equal(t, 3, step.ExecuteCount)
		assert.NotEqual(t, before, f.Nodes()[0])
	})

	t.Run("delta time is passed through", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))
		var got float64
		scheduler.RegisterFunc("delta", func(frame *loop.UpdateFrame) { got = frame.DeltaTime })

		require.NoError(t, scheduler.Once(0.25))
		assert.Equal(t, 0.25, got)
	})

	t.Run("queued input lands before the next frame", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))
		watcher := &PointerWatcher{}
		scheduler.Register(watcher)

		scheduler.Commands().MovePointer(10, 20)
		require.NoError(t, scheduler.Once(0))

		require.Len(t, watcher.Seen, 1)
		assert.Equal(t, 10.0, watcher.Seen[0].X)
		assert.Equal(t, 20.0, watcher.Seen[0].Y)
	})

	t.Run("input queued mid-frame waits a frame", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))

		queued := false
		scheduler.RegisterFunc("emitter", func(frame *loop.UpdateFrame) {
			if !queued {
				frame.Commands.MovePointer(1, 2)
				queued = true
			}
		})
		watcher := &PointerWatcher{}
		scheduler.Register(watcher)

		require.NoError(t, scheduler.Once(0))
		require.NoError(t, scheduler.Once(0))

		require.Len(t, watcher.Seen, 2)
		assert.Equal(t, 400.0, watcher.Seen[0].X, "same frame must not see the move")
		assert.Equal(t, 1.0, watcher.Seen[1].X)
		assert.Equal(t, 2.0, watcher.Seen[1].Y)
	})

	t.Run("flush error still runs systems", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))
		step := &StepSystem{}
		scheduler.Register(step)

		scheduler.Commands().Resize(-1, 10)
		err := scheduler.Once(0)

		assert.ErrorIs(t, err, field.ErrInvalidSize)
		assert.Equal(t, 1, step.ExecuteCount)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))
		step := &StepSystem{}
		scheduler.Register(step)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond, nil)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}

		assert.Greater(t, step.ExecuteCount, 0)
	})

	t.Run("run reports flush errors", func(t *testing.T) {
		scheduler := loop.NewScheduler(newField(t))
		scheduler.Commands().Resize(0, 0)

		ctx, cancel := context.WithCancel(context.Background())
		errs := make(chan error, 1)
		go scheduler.Run(ctx, time.Millisecond, func(err error) {
			select {
			case errs <- err:
			default:
			}
		})
		defer cancel()

		select {
		case err := <-errs:
			assert.ErrorIs(t, err, field.ErrInvalidSize)
		case <-time.After(time.Second):
			t.Fatal("no error reported")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(newField(t))
	scheduler.Register(&StepSystem{})
	scheduler.RegisterFunc("Sleeper", func(*loop.UpdateFrame) { time.Sleep(time.Millisecond) })

	stats := scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Zero(t, stats.FrameCount)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for i := 0; i < 5; i++ {
		require.NoError(t, scheduler.Once(0))
	}

	stats = scheduler.Stats()
	assert.Equal(t, int64(5), stats.FrameCount)
	require.Len(t, stats.Systems, 2)

	assert.Equal(t, "StepSystem", stats.Systems[0].Name)
	assert.Equal(t, "Sleeper", stats.Systems[1].Name)

	sleeper := stats.Systems[1]
	assert.Equal(t, int64(5), sleeper.ExecutionCount)
	assert.GreaterOrEqual(t, sleeper.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, sleeper.MaxDuration, sleeper.MinDuration)
	assert.GreaterOrEqual(t, sleeper.AvgDuration, sleeper.MinDuration)
	assert.LessOrEqual(t, sleeper.AvgDuration, sleeper.MaxDuration)
	assert.Equal(t, sleeper.TotalDuration/5, sleeper.AvgDuration)
}
