package engine

import "time"

// TaskKind selects how a task reschedules after firing
type TaskKind uint8

const (
	// TaskInterval fires repeatedly on a fixed period
	TaskInterval TaskKind = iota
	// TaskTimeout fires once after its delay
	TaskTimeout
	// TaskFrame fires on every scheduler update
	TaskFrame
)

// Task is one scheduled unit of work. Lifecycle is explicit: a task does
// nothing until Start, can be stopped and restarted, and is dead after
// Dispose. All task callbacks run on the frame loop goroutine.
type Task struct {
	sched    *Scheduler
	fn       func(now time.Time)
	kind     TaskKind
	interval time.Duration
	deadline time.Time
	active   bool
	disposed bool
}

// Start arms the task against the scheduler clock. Returns the task so
// construction and start can chain. Starting an active task resets its
// deadline; starting a disposed task is a no-op.
func (t *Task) Start() *Task {
	if t.disposed {
		return t
	}
	t.active = true
	if t.kind != TaskFrame {
		t.deadline = t.sched.clock.Now().Add(t.interval)
	}
	return t
}

// Stop disarms the task without removing it; Start re-arms
func (t *Task) Stop() {
	t.active = false
}

// Dispose stops the task permanently; the scheduler drops it on the next update
func (t *Task) Dispose() {
	t.active = false
	t.disposed = true
}

// Active reports whether the task will fire
func (t *Task) Active() bool {
	return t.active && !t.disposed
}

// Scheduler owns every recurring and one-shot task in the app and fires the
// due ones once per frame. It replaces per-coordinator ad hoc timers so
// lifecycle is uniform and deterministic under a ManualClock.
type Scheduler struct {
	clock Clock
	tasks []*Task
}

// NewScheduler creates a scheduler on the given clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make([]*Task, 0, 16),
	}
}

// Every registers a repeating task with period d. Not started.
func (s *Scheduler) Every(d time.Duration, fn func(now time.Time)) *Task {
	return s.add(&Task{sched: s, fn: fn, kind: TaskInterval, interval: d})
}

// After registers a one-shot task firing d after Start. Not started.
func (s *Scheduler) After(d time.Duration, fn func(now time.Time)) *Task {
	return s.add(&Task{sched: s, fn: fn, kind: TaskTimeout, interval: d})
}

// EachFrame registers a task firing on every update. Not started.
func (s *Scheduler) EachFrame(fn func(now time.Time)) *Task {
	return s.add(&Task{sched: s, fn: fn, kind: TaskFrame})
}

func (s *Scheduler) add(t *Task) *Task {
	s.tasks = append(s.tasks, t)
	return t
}

// Update fires every due task at most once and sweeps disposed ones.
// Callbacks may register or dispose tasks; additions fire from the next
// update onward.
func (s *Scheduler) Update(now time.Time) {
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if !t.active || t.disposed {
			continue
		}
		switch t.kind {
		case TaskFrame:
			t.fn(now)
		case TaskTimeout:
			if !now.Before(t.deadline) {
				t.active = false
				t.fn(now)
			}
		case TaskInterval:
			if !now.Before(t.deadline) {
				t.deadline = t.deadline.Add(t.interval)
				// Resync rather than burst-fire after a long stall
				if now.Sub(t.deadline) > t.interval {
					t.deadline = now.Add(t.interval)
				}
				t.fn(now)
			}
		}
	}
	s.sweep()
}

// sweep compacts the task list, dropping disposed tasks
func (s *Scheduler) sweep() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.disposed {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Dispose permanently stops every task. Called on app teardown so nothing
// outlives the page.
func (s *Scheduler) Dispose() {
	for _, t := range s.tasks {
		t.active = false
		t.disposed = true
	}
	s.tasks = s.tasks[:0]
}

// Len reports the live task count
func (s *Scheduler) Len() int {
	return len(s.tasks)
}
