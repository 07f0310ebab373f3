package session

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// ErrGameOver is returned by Scheduler.Run when the session tops out.
var ErrGameOver = errors.New("game over")

// SchedulerStats describes the frames a scheduler has run.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	// IdleFrames started while the session was paused or over.
	IdleFrames int64
	// LockFrames ended with at least one more piece locked than they started with.
	LockFrames   int64
	FrameTime    time.Duration
	AvgFrameTime time.Duration
	Systems      []SystemStats
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

// systemTimer accumulates the run times of one registered system.
type systemTimer struct {
	name  string
	runs  int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

func newSystemTimer(system System) *systemTimer {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return &systemTimer{name: systemType.Name()}
}

func (t *systemTimer) observe(d time.Duration) {
	if t.runs == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.last = d
	t.total += d
	t.runs++
}

func (t *systemTimer) snapshot() SystemStats {
	out := SystemStats{
		Name:           t.name,
		ExecutionCount: t.runs,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.runs > 0 {
		out.AvgDuration = t.total / time.Duration(t.runs)
	}
	return out
}

// Scheduler runs the registered systems against one session, once per frame.
type Scheduler struct {
	session *Session
	systems []System
	timers  []*systemTimer

	frames     int64
	idleFrames int64
	lockFrames int64
	frameTime  time.Duration
}

// NewScheduler creates a scheduler with no systems.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session: session,
		systems: make([]System, 0),
	}
}

// NewDefaultScheduler creates a scheduler running the standard frame:
// input, then gravity, then spawning.
func NewDefaultScheduler(session *Session) *Scheduler {
	s := NewScheduler(session)
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	s.Register(&SpawnSystem{})
	return s
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.timers = append(s.timers, newSystemTimer(system))
}

// Session returns the session the scheduler drives.
func (s *Scheduler) Session() *Session {
	return s.session
}

// Once runs one frame: every system in order with dt in seconds, then the
// deferred commands. It reports whether the session can keep playing, which is
// false once a spawn has been rejected.
func (s *Scheduler) Once(dt float64) bool {
	frame := newUpdateFrame(dt, s.session)
	if !s.session.active() {
		s.idleFrames++
	}
	locks := s.session.stats.locks

	frameStart := time.Now()
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timers[i].observe(time.Since(start))
	}
	frame.Commands.Flush()
	s.frameTime += time.Since(frameStart)

	s.frames++
	if s.session.stats.locks != locks {
		s.lockFrames++
	}
	return !s.session.GameOver()
}

// Run executes frames at the given interval until the context is cancelled or the
// session tops out. It returns ctx.Err() or ErrGameOver respectively.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if !s.Once(dt) {
				return ErrGameOver
			}
		}
	}
}

// GetStats returns frame accounting and per-system timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		IdleFrames:  s.idleFrames,
		LockFrames:  s.lockFrames,
		FrameTime:   s.frameTime,
		Systems:     make([]SystemStats, 0, len(s.timers)),
	}
	if s.frames > 0 {
		stats.AvgFrameTime = s.frameTime / time.Duration(s.frames)
	}

	for _, timer := range s.timers {
		stats.Systems = append(stats.Systems, timer.snapshot())
		stats.TotalExecutions += timer.runs
	}
	return stats
}
