package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"eon-tracker.com/eon-tracker/internal/clock"
)

// Job fires once per day at Hour:Minute local time.
type Job struct {
	Name   string
	Hour   int
	Minute int
	Run    func(ctx context.Context) error
}

// Scheduler runs daily jobs in background goroutines for the lifetime of
// the process. It is an explicitly constructed value: tests build their own
// instance with fake jobs rather than sharing a singleton.
type Scheduler struct {
	clock clock.Clock
	jobs  []Job
	stop  chan struct{}
	wg    sync.WaitGroup
}

func New(clk clock.Clock) *Scheduler {
	return &Scheduler{
		clock: clk,
		stop:  make(chan struct{}),
	}
}

func (s *Scheduler) AddJob(job Job) {
	s.jobs = append(s.jobs, job)
}

func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runLoop(job)
	}
}

func (s *Scheduler) runLoop(job Job) {
	defer s.wg.Done()

	log.Printf("job %s scheduled daily at %02d:%02d", job.Name, job.Hour, job.Minute)

	for {
		now := s.clock.Now()
		timer := time.NewTimer(NextRun(now, job.Hour, job.Minute).Sub(now))

		select {
		case <-timer.C:
			s.runJob(job)
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// runJob swallows errors and panics: a failed firing must not take down the
// scheduler or the next day's run.
func (s *Scheduler) runJob(job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("job %s panicked: %v", job.Name, r)
		}
	}()

	if err := job.Run(context.Background()); err != nil {
		log.Printf("job %s failed: %v", job.Name, err)
		return
	}

	log.Printf("job %s completed", job.Name)
}

func (s *Scheduler) Shutdown() {
	close(s.stop)
	s.wg.Wait()
}

// NextRun returns the next occurrence of hour:minute strictly after now, in
// now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
