package core

import "time"

// Task is a cooperative unit of work advanced once per tick.
// Step returns true when the task is finished.
type Task interface {
	Step(dt time.Duration) bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func(dt time.Duration) bool

// Step calls f.
func (f TaskFunc) Step(dt time.Duration) bool {
	return f(dt)
}

// TaskID identifies a scheduled task.
type TaskID uint64

type taskEntry struct {
	id   TaskID
	task Task
	done bool
}

// Scheduler runs tasks in insertion order on the caller's tick.
// Tasks added during Step first run on the next Step.
type Scheduler struct {
	nextID TaskID
	tasks  []*taskEntry
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add schedules a task and returns its ID. IDs are never zero.
func (s *Scheduler) Add(t Task) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &taskEntry{id: s.nextID, task: t})
	return s.nextID
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	remaining := delay
	return s.Add(TaskFunc(func(dt time.Duration) bool {
		remaining -= dt
		if remaining > 0 {
			return false
		}
		fn()
		return true
	}))
}

// Cancel stops a task. It returns false if the task is unknown or
// already finished.
func (s *Scheduler) Cancel(id TaskID) bool {
	for _, e := range s.tasks {
		if e.id == id && !e.done {
			e.done = true
			return true
		}
	}
	return false
}

// Active returns true if the task is scheduled and not finished.
func (s *Scheduler) Active(id TaskID) bool {
	for _, e := range s.tasks {
		if e.id == id {
			return !e.done
		}
	}
	return false
}

// Len returns the number of active tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.tasks {
		if !e.done {
			n++
		}
	}
	return n
}

// Step advances every active task by dt.
func (s *Scheduler) Step(dt time.Duration) {
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		e := s.tasks[i]
		if e.done {
			continue
		}
		if e.task.Step(dt) {
			e.done = true
		}
	}

	live := s.tasks[:0]
	for _, e := range s.tasks {
		if !e.done {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
