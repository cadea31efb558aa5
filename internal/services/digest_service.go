package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"eon-tracker.com/eon-tracker/internal/clock"
	"eon-tracker.com/eon-tracker/internal/digest"
	"eon-tracker.com/eon-tracker/internal/mail"
)

const (
	morningSubject = "Morning: Pending tasks"
	morningHeader  = "Pending tasks summary:"
	eveningSubject = "Evening: Task update request"
	eveningHeader  = "Please update these tasks today:"
	noLogsYet      = "No logs yet"

	morningJobName = "morning"
	eveningJobName = "evening"
)

// DigestService composes the two daily digests. It reads only through the
// TaskService, never the store directly.
type DigestService struct {
	tasks      *TaskService
	mailer     mail.Mailer
	marker     digest.Marker
	recipients []string
	clock      clock.Clock
}

// NewDigestService wires the digest jobs. marker may be nil, which disables
// the once-per-day guard.
func NewDigestService(
	tasks *TaskService,
	mailer mail.Mailer,
	marker digest.Marker,
	recipients []string,
	clk clock.Clock,
) *DigestService {
	return &DigestService{
		tasks:      tasks,
		mailer:     mailer,
		marker:     marker,
		recipients: recipients,
		clock:      clk,
	}
}

// MorningDigest mails a summary of pending tasks. With nothing pending it
// sends nothing at all.
func (s *DigestService) MorningDigest(ctx context.Context) error {
	if s.sentToday(ctx, morningJobName) {
		return nil
	}

	tasks, err := s.tasks.ListTasks(ctx, true)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(tasks))
	for _, t := range tasks {
		last := noLogsYet
		lg, err := s.tasks.LastLog(ctx, t.ID)
		if err != nil {
			return err
		}
		if lg != nil {
			last = fmt.Sprintf("%s - %s", lg.Timestamp, lg.Log)
		}

		blocks = append(blocks, fmt.Sprintf(
			"Task #%d: %s\nStatus: %s\nSubmit by: %s\nLast log: %s\n",
			t.ID, t.Title, t.Status, t.SubmitAt, last,
		))
	}

	body := morningHeader + "\n\n" + strings.Join(blocks, "\n")
	return s.mailer.Send(morningSubject, body, s.recipients)
}

// EveningDigest mails one line per task, and goes out even when there are
// no tasks at all.
func (s *DigestService) EveningDigest(ctx context.Context) error {
	if s.sentToday(ctx, eveningJobName) {
		return nil
	}

	tasks, err := s.tasks.ListTasks(ctx, false)
	if err != nil {
		return err
	}

	lines := []string{eveningHeader + "\n"}
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("#%d %s (Status: %s)", t.ID, t.Title, t.Status))
	}

	return s.mailer.Send(eveningSubject, strings.Join(lines, "\n"), s.recipients)
}

// sentToday claims today's firing with the marker. Marker failures fail
// open: a duplicate digest beats a lost one for a personal tracker.
func (s *DigestService) sentToday(ctx context.Context, job string) bool {
	if s.marker == nil {
		return false
	}

	day := s.clock.Now().Format("2006-01-02")
	claimed, err := s.marker.MarkSent(ctx, job, day)
	if err != nil {
		log.Printf("digest marker unavailable for job %s: %v", job, err)
		return false
	}

	return !claimed
}
