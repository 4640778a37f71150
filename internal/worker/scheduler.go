package worker

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// Scheduler runs one-shot delayed tasks keyed by an owner identifier, usually
// a session token. Each owner's tasks are independently cancellable so a
// logout can revoke its pending simulated pushes without touching other
// sessions' timers.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]map[uuid.UUID]*time.Timer // owner id -> task id -> timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[uuid.UUID]map[uuid.UUID]*time.Timer)}
}

// Schedule arms a one-shot task for the given owner and returns its id. The
// task deregisters itself before running, so a fired task never lingers in
// the owner's set.
func (s *Scheduler) Schedule(ownerID uuid.UUID, delay time.Duration, fn func()) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	taskID := uuid.New()

	timer := time.AfterFunc(delay, func() {
		s.mu.Lock()
		if tasks, ok := s.timers[ownerID]; ok {
			delete(tasks, taskID)
			if len(tasks) == 0 {
				delete(s.timers, ownerID)
			}
		}
		s.mu.Unlock()

		fn()
	})

	if s.timers[ownerID] == nil {
		s.timers[ownerID] = make(map[uuid.UUID]*time.Timer)
	}
	s.timers[ownerID][taskID] = timer

	return taskID
}

// Cancel stops a single pending task. Cancelling a task that already fired or
// was cancelled is a no-op.
func (s *Scheduler) Cancel(ownerID, taskID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.timers[ownerID]
	if !ok {
		return
	}

	if timer, ok := tasks[taskID]; ok {
		timer.Stop()
		delete(tasks, taskID)
		if len(tasks) == 0 {
			delete(s.timers, ownerID)
		}
	}
}

// CancelAll stops every pending task for the given owner. Called on logout so
// timers never leak across sessions.
func (s *Scheduler) CancelAll(ownerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.timers[ownerID]
	if !ok {
		return
	}

	for taskID, timer := range tasks {
		timer.Stop()
		delete(tasks, taskID)
	}
	delete(s.timers, ownerID)
}

// Pending returns the number of tasks still armed for the given owner.
func (s *Scheduler) Pending(ownerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers[ownerID])
}

// Stop cancels every pending task. Called once on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for ownerID, tasks := range s.timers {
		for _, timer := range tasks {
			timer.Stop()
			n++
		}
		delete(s.timers, ownerID)
	}

	if n > 0 {
		zlog.Logger.Info().Int("cancelled", n).Msg("scheduler stopped")
	}
}
