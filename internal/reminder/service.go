package reminder

import (
	"fmt"
	"log"

	"github.com/jmhodges/clock"

	"remindagent/internal/scheduler"
)

// Saver is the slice of the store the service needs.
type Saver interface {
	Add(message, remindTime string, important bool) (int64, error)
}

// Registrar registers one-shot jobs for future delivery.
type Registrar interface {
	Schedule(job scheduler.Job) error
}

// Service orchestrates acceptance of a parsed reminder: persist the record,
// resolve the fire time, register the scheduler job and build the reply text.
type Service struct {
	store Saver
	sched Registrar
	clk   clock.Clock
}

// NewService creates a Service. clk may be nil, in which case wall-clock
// time is used.
func NewService(store Saver, sched Registrar, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.New()
	}
	return &Service{store: store, sched: sched, clk: clk}
}

// Accept runs the full acceptance flow for one parsed reminder and returns
// the user-facing reply. Every failure is converted into a reply string;
// Accept never returns an error to the transport.
//
// Ordering matters: the record is persisted before the job is registered,
// and a storage failure means no job is ever scheduled.
func (s *Service) Accept(p Parsed, senderID string) string {
	if p.DateTime == "" {
		return "⚠️ Could not parse date/time"
	}

	raw, err := ParseLocal(p.DateTime)
	if err != nil {
		log.Printf("[service] bad datetime %q from parser: %v", p.DateTime, err)
		return fmt.Sprintf("⚠️ Error scheduling reminder: %v", err)
	}

	if _, err := s.store.Add(p.Task, p.DateTime, p.Important); err != nil {
		log.Printf("[service] failed to store reminder: %v", err)
		return fmt.Sprintf("⚠️ Error scheduling reminder: %v", err)
	}

	now := s.clk.Now()
	fireAt := Resolve(raw, now)

	job := scheduler.Job{
		ID:       JobID(p.DateTime, p.Task),
		FireAt:   fireAt,
		Task:     p.Task,
		SenderID: senderID,
	}

	if err := s.sched.Schedule(job); err != nil {
		log.Printf("[service] failed to schedule job %s: %v", job.ID, err)
		return fmt.Sprintf("⚠️ Error scheduling reminder: %v", err)
	}

	log.Printf("[service] scheduled %s for %s", job.ID, fireAt.Format(ISOLayout))

	totalSeconds := int(fireAt.Sub(now).Seconds())
	hours := totalSeconds / 3600
	minutes := totalSeconds % 3600 / 60

	return fmt.Sprintf("✅ Reminder set for %s\n⏰ In %dh %dm\n📝 Task: %s",
		fireAt.Format("2006-01-02 03:04 PM"), hours, minutes, p.Task)
}
