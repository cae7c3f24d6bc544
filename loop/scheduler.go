// Package loop drives a node field frame by frame: queued input is applied,
// then every registered System runs in order.
package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/nodefield/field"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	FrameCount  int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order against one field.
type Scheduler struct {
	field       *field.Field
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates a new scheduler for the given field.
func NewScheduler(f *field.Field) *Scheduler {
	return &Scheduler{
		field:    f,
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// Field returns the field the scheduler drives.
func (s *Scheduler) Field() *field.Field {
	return s.field
}

// Commands returns the input buffer flushed at the start of every frame.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Register adds a system to the scheduler. Its stats are reported under the
// system's type name.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.register(systemType.Name(), system)
}

// RegisterFunc adds fn as a system reported under name.
func (s *Scheduler) RegisterFunc(name string, fn func(frame *UpdateFrame)) {
	s.register(name, SystemFunc(fn))
}

func (s *Scheduler) register(name string, system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs one frame: queued commands are flushed into the field, then all
// registered systems execute with the given delta time. Systems still run
// when the flush fails; the flush error is returned.
func (s *Scheduler) Once(dt float64) error {
	err := s.commands.Flush(s.field)
	frame := newUpdateFrame(dt, s.field, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.frames++
	return err
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled. Flush errors are passed to onErr when it is not nil.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, onErr func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil && onErr != nil {
				onErr(err)
			}
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
