package engine

import (
	"sort"
	"time"
)

// RunID identifies one run; bumped on every start so deferred work can tell it is stale
type RunID uint64

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

type task struct {
	id  TaskID
	run RunID
	due time.Time
	fn  func()
}

// Scheduler holds deferred cosmetic tasks tied to a run
// Owned by the tick goroutine: tasks execute only inside Poll, never from timers
type Scheduler struct {
	tasks  []task
	nextID TaskID
	due    []task // Reused by Poll
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers fn to run at or after due while run is current
func (s *Scheduler) Schedule(run RunID, due time.Time, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, run: run, due: due, fn: fn})
	return s.nextID
}

// Cancel drops a pending task; returns false if it already ran or never existed
func (s *Scheduler) Cancel(id TaskID) bool {
	for i := range s.tasks {
		if s.tasks[i].id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelRun drops every task belonging to run, returning how many were dropped
func (s *Scheduler) CancelRun(run RunID) int {
	kept := s.tasks[:0]
	dropped := 0
	for _, t := range s.tasks {
		if t.run == run {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return dropped
}

// Poll runs due tasks of the current run in due order and discards tasks of any other run
// Tasks scheduled by a running task are kept for a later Poll
func (s *Scheduler) Poll(now time.Time, current RunID) (ran, dropped int) {
	s.due = s.due[:0]
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.run != current:
			dropped++
		case !now.Before(t.due):
			s.due = append(s.due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.SliceStable(s.due, func(i, j int) bool {
		return s.due[i].due.Before(s.due[j].due)
	})
	for _, t := range s.due {
		t.fn()
		ran++
	}
	return ran, dropped
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
