package scheduler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jmhodges/clock"
)

// ErrPastTime is returned by Schedule when a job's fire time has already
// passed. The time resolver should make this impossible; the check is a
// guard against callers bypassing it.
var ErrPastTime = errors.New("fire time is in the past")

const defaultTick = time.Second

// Job is a one-shot scheduled reminder delivery.
type Job struct {
	ID       string
	FireAt   time.Time
	Task     string
	SenderID string
}

// Dispatcher delivers a fired job's payload to the notification channels.
type Dispatcher interface {
	Dispatch(ctx context.Context, task, senderID string)
}

// Scheduler owns the table of pending jobs and fires each at (or after) its
// FireAt instant. Jobs fire at most once; a job lost to a process restart is
// gone, there is no durable job log.
type Scheduler struct {
	dispatcher Dispatcher
	clk        clock.Clock
	tick       time.Duration

	mu      sync.Mutex
	pending map[string]Job
}

// New creates a Scheduler sweeping at the given tick interval. clk may be
// nil, in which case wall-clock time is used.
func New(dispatcher Dispatcher, clk clock.Clock, tick time.Duration) *Scheduler {
	if clk == nil {
		clk = clock.New()
	}
	if tick <= 0 {
		tick = defaultTick
	}
	return &Scheduler{
		dispatcher: dispatcher,
		clk:        clk,
		tick:       tick,
		pending:    make(map[string]Job),
	}
}

// Schedule inserts the job keyed by its id, replacing any pending job with
// the same id. Replacement is legal (identical raw time + task prefix) but
// logged, since it can also mean two distinct reminders collided.
func (s *Scheduler) Schedule(job Job) error {
	if job.FireAt.Before(s.clk.Now()) {
		return ErrPastTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.pending[job.ID]; ok {
		log.Printf("[scheduler] job %s replaces pending job firing at %s", job.ID, old.FireAt)
	}
	s.pending[job.ID] = job

	return nil
}

// PendingCount returns the number of jobs waiting to fire.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Run blocks, sweeping for due jobs on every tick. It exits when ctx is
// cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Printf("[scheduler] Started. Tick: %s", s.tick)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[scheduler] Shutting down...")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep removes every due job from the pending table and dispatches each in
// its own goroutine, so one slow or failing delivery never delays another.
func (s *Scheduler) sweep(ctx context.Context) {
	now := s.clk.Now()

	s.mu.Lock()
	var due []Job
	for id, job := range s.pending {
		if !job.FireAt.After(now) {
			due = append(due, job)
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	for _, job := range due {
		log.Printf("[scheduler] firing job %s", job.ID)
		go s.dispatcher.Dispatch(ctx, job.Task, job.SenderID)
	}
}
